package chat

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ppiankov/footbot/internal/client"
	"github.com/ppiankov/footbot/internal/health"
	"github.com/ppiankov/footbot/internal/resolver"
)

// Reply is an answer ready for display
type Reply struct {
	Text   string
	Cached bool
}

// Answerer is one strategy for answering a user message
type Answerer interface {
	// Answer returns the display text for question
	Answer(ctx context.Context, question string) (Reply, error)

	// FailureMessage renders an Answer error for the thread
	FailureMessage(err error) string
}

const mockFailureMessage = "Desculpe, houve um erro ao processar sua pergunta. Tente novamente."

// sleepFunc waits d or until ctx is done. Tests replace it.
var sleepFunc = func(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// MockAnswerer answers locally from the keyword tables after a simulated delay
type MockAnswerer struct {
	resolver *resolver.Resolver
	minDelay time.Duration
	maxDelay time.Duration
}

// NewMockAnswerer creates a mock answerer. Each reply waits a random duration
// in [minDelay, maxDelay]; zero disables the delay.
func NewMockAnswerer(r *resolver.Resolver, minDelay, maxDelay time.Duration) *MockAnswerer {
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &MockAnswerer{resolver: r, minDelay: minDelay, maxDelay: maxDelay}
}

// Answer implements Answerer
func (a *MockAnswerer) Answer(ctx context.Context, question string) (Reply, error) {
	delay := a.minDelay
	if spread := a.maxDelay - a.minDelay; spread > 0 {
		delay += time.Duration(rand.Int63n(int64(spread)))
	}
	if err := sleepFunc(ctx, delay); err != nil {
		return Reply{}, err
	}
	return Reply{Text: a.resolver.Resolve(question)}, nil
}

// FailureMessage implements Answerer
func (a *MockAnswerer) FailureMessage(err error) string {
	return mockFailureMessage
}

// RemoteAnswerer forwards questions to the backend and feeds the outcome to
// the connectivity monitor
type RemoteAnswerer struct {
	client  *client.Client
	monitor *health.Monitor
}

// NewRemoteAnswerer creates a remote answerer. monitor may be nil.
func NewRemoteAnswerer(c *client.Client, monitor *health.Monitor) *RemoteAnswerer {
	return &RemoteAnswerer{client: c, monitor: monitor}
}

// Answer implements Answerer
func (a *RemoteAnswerer) Answer(ctx context.Context, question string) (Reply, error) {
	result, err := a.client.SendQuery(ctx, question)
	if a.monitor != nil && !client.IsCanceled(err) {
		a.monitor.Observe(err)
	}
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: Frame(result.Answer, result.Cached), Cached: result.Cached}, nil
}

// FailureMessage implements Answerer
func (a *RemoteAnswerer) FailureMessage(err error) string {
	return fmt.Sprintf("❌ **Erro na API**: %s. Verifique se o servidor está rodando em %s", err, a.client.Endpoint())
}

// Frame prefixes a backend answer with how it was produced
func Frame(answer string, cached bool) string {
	if cached {
		return "⚡ **Resposta Rápida**: " + answer
	}
	return "🤖 **Resposta via modelo**: " + answer
}

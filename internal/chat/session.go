// Package chat keeps a conversation thread and routes messages to an answerer.
package chat

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/ppiankov/footbot/internal/client"
	"github.com/ppiankov/footbot/internal/logger"
	"github.com/ppiankov/footbot/internal/model"
)

// Session is one conversation. It is safe for concurrent use, though replies
// are appended in completion order.
type Session struct {
	answerer Answerer
	logger   *zap.Logger

	mu       sync.Mutex
	messages []model.Message
	pending  atomic.Int32
}

// NewSession creates an empty session
func NewSession(answerer Answerer, l *zap.Logger) *Session {
	return &Session{answerer: answerer, logger: logger.OrNop(l)}
}

// Send appends content as a user message, waits for the answer and appends
// the bot reply, which is also returned.
//
// Blank input is ignored and yields (nil, nil). Answer failures become an
// error message in the thread; only cancellation of ctx is returned as an
// error, and then no reply is appended.
func (s *Session) Send(ctx context.Context, content string) (*model.Message, error) {
	text := Normalize(content)
	if text == "" {
		return nil, nil
	}

	s.append(model.NewMessage(model.RoleUser, text))

	s.pending.Add(1)
	defer s.pending.Add(-1)

	reply, err := s.answerer.Answer(ctx, text)
	if err != nil {
		if ctx.Err() != nil || client.IsCanceled(err) || errors.Is(err, context.Canceled) {
			return nil, err
		}
		s.logger.Warn("answer failed", zap.Stringer("kind", client.KindOf(err)), zap.Error(err))
		msg := model.NewMessage(model.RoleBot, s.answerer.FailureMessage(err))
		msg.IsError = true
		s.append(msg)
		return &msg, nil
	}

	msg := model.NewMessage(model.RoleBot, reply.Text)
	s.append(msg)
	return &msg, nil
}

// Messages returns a copy of the thread
func (s *Session) Messages() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Typing reports whether a reply is pending
func (s *Session) Typing() bool {
	return s.pending.Load() > 0
}

// Reset clears the thread
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

func (s *Session) append(m model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
}

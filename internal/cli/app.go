package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ppiankov/footbot/internal/chat"
	"github.com/ppiankov/footbot/internal/client"
	"github.com/ppiankov/footbot/internal/health"
	"github.com/ppiankov/footbot/internal/knowledge"
	"github.com/ppiankov/footbot/internal/model"
	"github.com/ppiankov/footbot/internal/resolver"
	"github.com/ppiankov/footbot/internal/worker"
)

// app holds the components shared by the chat-facing commands
type app struct {
	cfg      *model.Config
	logger   *zap.Logger
	resolver *resolver.Resolver
	client   *client.Client  // nil in mock mode
	monitor  *health.Monitor // nil in mock mode
	answerer chat.Answerer
}

// newApp loads config and knowledge and builds the answerer for the
// configured mode. limiter may be nil.
func newApp(limiter *worker.Limiter, monitorOpts ...health.Option) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := newLogger(cfg)

	res, err := newResolver(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: log, resolver: res}

	if cfg.Mode == model.ModeMock {
		a.answerer = chat.NewMockAnswerer(res, cfg.Mock.MinDelay, cfg.Mock.MaxDelay)
		return a, nil
	}

	a.client = newClient(cfg, log, limiter)
	opts := append([]health.Option{
		health.WithLogger(log),
		health.WithProbeTimeout(cfg.Health.Timeout),
	}, monitorOpts...)
	a.monitor = health.NewMonitor(a.client, cfg.Health.Interval, opts...)
	a.answerer = chat.NewRemoteAnswerer(a.client, a.monitor)
	return a, nil
}

func newResolver(cfg *model.Config) (*resolver.Resolver, error) {
	base, err := knowledge.Load(cfg.Knowledge.File)
	if err != nil {
		return nil, fmt.Errorf("load knowledge: %w", err)
	}
	return resolverFor(cfg, base), nil
}

func resolverFor(cfg *model.Config, base *knowledge.Base) *resolver.Resolver {
	if cfg.Mock.Seed != 0 {
		return resolver.WithSeed(base, cfg.Mock.Seed)
	}
	return resolver.New(base, nil)
}

func newClient(cfg *model.Config, log *zap.Logger, limiter *worker.Limiter) *client.Client {
	return client.New(client.Config{
		Endpoint:   cfg.Backend.Endpoint,
		Timeout:    cfg.Backend.Timeout,
		HTTPProxy:  cfg.Backend.HTTPProxy,
		HTTPSProxy: cfg.Backend.HTTPSProxy,
		NoProxy:    cfg.Backend.NoProxy,
		Limiter:    limiter,
		Logger:     log,
	})
}

// statusLabel renders a connectivity state for the terminal
func statusLabel(status model.HealthStatus) string {
	switch status {
	case model.HealthHealthy:
		return "🟢 Online"
	case model.HealthUnhealthy:
		return "🔴 Offline"
	default:
		return "🟡 Verificando conexão..."
	}
}

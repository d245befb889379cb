package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ppiankov/footbot/internal/cache"
	"github.com/ppiankov/footbot/internal/knowledge"
	"github.com/ppiankov/footbot/internal/llm"
	"github.com/ppiankov/footbot/internal/logger"
	"github.com/ppiankov/footbot/internal/model"
	"github.com/ppiankov/footbot/internal/server"
)

var (
	serveAddr     string
	serveProvider string
	serveLogLevel string
	serveNoCache  bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a FootBot backend",
	Long: `Serve the chat API used in remote mode:

  POST /chat     answer a question
  GET  /health   service health
  GET  /         service metadata
  GET  /status   detailed status
  GET  /metrics  Prometheus metrics

Answers come from quick answers, the answer cache, the configured LLM
(grounded on the embedded World Cup dataset) or, with no LLM, the local
keyword table.

Example:
  footbot serve
  GROQ_API_KEY=gsk_... footbot serve --llm-provider groq --addr :8000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: server.addr)")
	serveCmd.Flags().StringVar(&serveProvider, "llm-provider", "", "LLM provider: groq, openai, anthropic, ollama (default: llm.provider)")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "log level")
	serveCmd.Flags().BoolVar(&serveNoCache, "no-cache", false, "disable the answer cache")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if serveProvider != "" {
		cfg.LLM.Provider = serveProvider
	}
	if serveNoCache {
		cfg.Cache.Enabled = false
	}

	level := serveLogLevel
	if verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	base, err := knowledge.Load(cfg.Knowledge.File)
	if err != nil {
		return fmt.Errorf("load knowledge: %w", err)
	}
	res := resolverFor(cfg, base)

	editions, err := knowledge.WorldCups()
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	opts := []server.Option{
		server.WithLogger(log),
		server.WithDataset(editions),
	}

	provider, err := newProvider(cfg, log)
	if err != nil {
		return err
	}
	if provider != nil {
		opts = append(opts, server.WithProvider(provider))
		if cfg.Cache.Enabled {
			opts = append(opts, server.WithAnswerCache(newAnswerCache(cfg.Cache)))
		}
	} else {
		log.Warn("no LLM provider configured, answering from the keyword table")
	}

	if cfg.Server.Metrics {
		opts = append(opts, server.WithMetrics(server.NewMetrics()))
	}

	srv := server.New(server.Config{
		Addr:        cfg.Server.Addr,
		CORSOrigins: cfg.Server.CORSOrigins,
		ReadTimeout: cfg.Server.ReadTimeout,
	}, base, res, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "⚽ FootBot API em %s\n", cfg.Server.Addr)
	return srv.ListenAndServe(ctx)
}

func newProvider(cfg *model.Config, log *zap.Logger) (llm.Provider, error) {
	llmCfg := llm.ConfigFromModel(cfg.LLM)
	llmCfg.HTTPProxy = cfg.Backend.HTTPProxy
	llmCfg.HTTPSProxy = cfg.Backend.HTTPSProxy
	llmCfg.NoProxy = cfg.Backend.NoProxy
	llmCfg.Logger = log

	provider, err := llm.NewProvider(llmCfg)
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}
	return provider, nil
}

func newAnswerCache(cfg model.CacheConfig) *cache.AnswerCache {
	var store cache.Cache
	if cfg.Dir != "" {
		store = cache.NewLayeredCache(cfg.TTL, cfg.Dir)
	} else {
		store = cache.NewMemoryCache(cfg.TTL, 10*time.Minute)
	}
	return cache.NewAnswerCache(store, cfg.TTL)
}

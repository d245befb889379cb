package model

import (
	"fmt"
	"strings"
	"time"
)

// Answer modes
const (
	ModeMock   = "mock"   // In-process keyword table
	ModeRemote = "remote" // HTTP backend
)

// DefaultQueryTimeout is the single request timeout used for every build profile.
const DefaultQueryTimeout = 150 * time.Second

// DefaultEndpoint is the backend base URL used when none is configured
const DefaultEndpoint = "http://localhost:8000"

// Config holds the complete FootBot configuration
type Config struct {
	Mode      string          `yaml:"mode" mapstructure:"mode"`
	Backend   BackendConfig   `yaml:"backend" mapstructure:"backend"`
	Health    HealthConfig    `yaml:"health" mapstructure:"health"`
	Mock      MockConfig      `yaml:"mock" mapstructure:"mock"`
	Knowledge KnowledgeConfig `yaml:"knowledge" mapstructure:"knowledge"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	LLM       LLMConfig       `yaml:"llm" mapstructure:"llm"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Batch     BatchConfig     `yaml:"batch" mapstructure:"batch"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// BackendConfig selects the remote backend deployment
type BackendConfig struct {
	Endpoint   string        `yaml:"endpoint" mapstructure:"endpoint"`       // Base URL, e.g. http://localhost:8000
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout"`         // Per-query timeout
	HTTPProxy  string        `yaml:"http_proxy" mapstructure:"http_proxy"`   // Overrides HTTP_PROXY
	HTTPSProxy string        `yaml:"https_proxy" mapstructure:"https_proxy"` // Overrides HTTPS_PROXY
	NoProxy    string        `yaml:"no_proxy" mapstructure:"no_proxy"`       // Overrides NO_PROXY
}

// HealthConfig controls connectivity polling
type HealthConfig struct {
	Interval time.Duration `yaml:"interval" mapstructure:"interval"` // Poll interval
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`   // Per-probe timeout
}

// MockConfig controls the simulated latency of mock mode
type MockConfig struct {
	MinDelay time.Duration `yaml:"min_delay" mapstructure:"min_delay"`
	MaxDelay time.Duration `yaml:"max_delay" mapstructure:"max_delay"`
	Seed     int64         `yaml:"seed" mapstructure:"seed"` // 0 = time-based
}

// KnowledgeConfig points at an optional knowledge override file
type KnowledgeConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

// ServerConfig configures `footbot serve`
type ServerConfig struct {
	Addr        string        `yaml:"addr" mapstructure:"addr"`
	CORSOrigins []string      `yaml:"cors_origins" mapstructure:"cors_origins"`
	Metrics     bool          `yaml:"metrics" mapstructure:"metrics"`
	ReadTimeout time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
}

// LLMConfig configures the model behind the local backend
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // "groq", "openai", "anthropic", "ollama", "" (keyword fallback)
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`

	// Per-host throttle for model calls; 0 disables it
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// CacheConfig configures the backend answer cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
	Dir     string        `yaml:"dir" mapstructure:"dir"` // Empty disables the disk layer
}

// BatchConfig configures `footbot batch`
type BatchConfig struct {
	Concurrency       int     `yaml:"concurrency" mapstructure:"concurrency"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// LogConfig configures structured logging
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Mode: ModeRemote,
		Backend: BackendConfig{
			Endpoint: DefaultEndpoint,
			Timeout:  DefaultQueryTimeout,
		},
		Health: HealthConfig{
			Interval: 30 * time.Second,
			Timeout:  10 * time.Second,
		},
		Mock: MockConfig{
			MinDelay: 0,
			MaxDelay: 0,
		},
		Server: ServerConfig{
			Addr:        ":8000",
			CORSOrigins: []string{"http://localhost:5173", "http://127.0.0.1:5173"},
			Metrics:     true,
			ReadTimeout: 30 * time.Second,
		},
		LLM: LLMConfig{
			Provider:          "",
			Model:             "", // Provider default
			Timeout:           60,
			MaxTokens:         1000,
			RequestsPerSecond: 1,
			Burst:             3,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     24 * time.Hour,
		},
		Batch: BatchConfig{
			Concurrency:       4,
			RequestsPerSecond: 2,
			Burst:             2,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks the configuration for values the components cannot work with
func (c *Config) Validate() error {
	switch strings.ToLower(c.Mode) {
	case ModeMock, ModeRemote:
	default:
		return fmt.Errorf("invalid mode %q (supported: %s, %s)", c.Mode, ModeMock, ModeRemote)
	}
	if strings.EqualFold(c.Mode, ModeRemote) && c.Backend.Endpoint == "" {
		return fmt.Errorf("backend.endpoint cannot be empty in remote mode")
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend.timeout must be > 0")
	}
	if c.Health.Interval <= 0 {
		return fmt.Errorf("health.interval must be > 0")
	}
	if c.Health.Timeout <= 0 {
		return fmt.Errorf("health.timeout must be > 0")
	}
	if c.Mock.MaxDelay < c.Mock.MinDelay {
		return fmt.Errorf("mock.max_delay must be >= mock.min_delay")
	}
	return nil
}

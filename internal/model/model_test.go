package model

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to be valid, got %v", err)
	}
	if cfg.Backend.Timeout != 150*time.Second {
		t.Errorf("expected 150s timeout, got %v", cfg.Backend.Timeout)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown mode", func(c *Config) { c.Mode = "offline" }, "invalid mode"},
		{"mode is case-insensitive", func(c *Config) { c.Mode = "MOCK" }, ""},
		{"remote without endpoint", func(c *Config) { c.Backend.Endpoint = "" }, "backend.endpoint"},
		{"mock without endpoint", func(c *Config) { c.Mode = ModeMock; c.Backend.Endpoint = "" }, ""},
		{"zero timeout", func(c *Config) { c.Backend.Timeout = 0 }, "backend.timeout"},
		{"zero health interval", func(c *Config) { c.Health.Interval = 0 }, "health.interval"},
		{"zero health timeout", func(c *Config) { c.Health.Timeout = 0 }, "health.timeout"},
		{"negative health timeout", func(c *Config) { c.Health.Timeout = -time.Second }, "health.timeout"},
		{"inverted delays", func(c *Config) { c.Mock.MinDelay = 3 * time.Second; c.Mock.MaxDelay = time.Second }, "mock.max_delay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewMessage(t *testing.T) {
	before := time.Now()
	a := NewMessage(RoleUser, "messi")
	b := NewMessage(RoleBot, "resposta")

	if a.ID == uuid.Nil || a.ID == b.ID {
		t.Errorf("expected distinct non-nil IDs, got %s and %s", a.ID, b.ID)
	}
	if a.Role != RoleUser || a.Content != "messi" || a.IsError {
		t.Errorf("unexpected message: %+v", a)
	}
	if a.Timestamp.Before(before) {
		t.Error("expected timestamp at creation time")
	}
}

package util

import (
	"net/http"
	"testing"
)

func TestNewProxyFunc(t *testing.T) {
	proxy := NewProxyFunc("http://proxy.internal:3128", "http://secure.internal:3128", "api.groq.com")

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"http", "http://backend.example.com/chat", "http://proxy.internal:3128"},
		{"https", "https://backend.example.com/chat", "http://secure.internal:3128"},
		{"no proxy", "https://api.groq.com/openai/v1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, tt.url, nil)
			if err != nil {
				t.Fatalf("new request: %v", err)
			}
			got, err := proxy(req)
			if err != nil {
				t.Fatalf("proxy func failed: %v", err)
			}
			gotStr := ""
			if got != nil {
				gotStr = got.String()
			}
			if gotStr != tt.want {
				t.Errorf("expected proxy %q, got %q", tt.want, gotStr)
			}
		})
	}
}

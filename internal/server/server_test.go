package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ppiankov/footbot/internal/cache"
	"github.com/ppiankov/footbot/internal/client"
	"github.com/ppiankov/footbot/internal/knowledge"
	"github.com/ppiankov/footbot/internal/llm"
	"github.com/ppiankov/footbot/internal/model"
	"github.com/ppiankov/footbot/internal/resolver"
)

type fakeProvider struct {
	answer    string
	err       error
	available bool
	calls     atomic.Int32

	mu      sync.Mutex
	lastReq llm.AnswerRequest
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Answer(ctx context.Context, req llm.AnswerRequest) (*llm.AnswerResponse, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.lastReq = req
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &llm.AnswerResponse{Answer: f.answer, Model: "fake-1", TokensUsed: 42}, nil
}

func (f *fakeProvider) IsAvailable(ctx context.Context) bool { return f.available }

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	base := knowledge.Default()
	s := New(Config{CORSOrigins: []string{"http://localhost:5173"}}, base, resolver.WithSeed(base, 1), opts...)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postChat(t *testing.T, url, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(url+"/chat", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /chat failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, out
}

func TestChat_EmptyMessage(t *testing.T) {
	ts := newTestServer(t)

	for _, body := range []string{`{"message":""}`, `{"message":"   "}`} {
		status, out := postChat(t, ts.URL, body)
		if status != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", status)
		}
		if out["detail"] != "Pergunta não pode estar vazia" {
			t.Errorf("unexpected detail: %v", out["detail"])
		}
	}
}

func TestChat_InvalidBody(t *testing.T) {
	ts := newTestServer(t)

	status, out := postChat(t, ts.URL, `not json`)
	if status != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", status)
	}
	if out["detail"] == nil {
		t.Error("expected detail in error response")
	}
}

func TestChat_QuickAnswer(t *testing.T) {
	provider := &fakeProvider{answer: "unused", available: true}
	ts := newTestServer(t, WithProvider(provider))

	status, out := postChat(t, ts.URL, `{"message":"  Quem ganhou a Copa de 1970 "}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if out["message"] != noteQuick || out["cached"] != true {
		t.Errorf("expected quick cached answer, got %v", out)
	}
	if !strings.Contains(out["answer"].(string), "Brasil") {
		t.Errorf("unexpected answer: %v", out["answer"])
	}
	if provider.calls.Load() != 0 {
		t.Errorf("expected no model call, got %d", provider.calls.Load())
	}
}

func TestChat_KeywordFallback(t *testing.T) {
	ts := newTestServer(t)

	status, out := postChat(t, ts.URL, `{"message":"qual a capital da frança?"}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if out["message"] != noteKeyword || out["cached"] != false {
		t.Errorf("unexpected response: %v", out)
	}
	if out["answer"] != knowledge.Default().OutOfDomain {
		t.Errorf("expected out-of-domain message, got %v", out["answer"])
	}
}

func TestChat_LLMAndCache(t *testing.T) {
	provider := &fakeProvider{answer: "A Itália venceu em 1982.", available: true}
	answers := cache.NewAnswerCache(cache.NewMemoryCache(time.Hour, time.Hour), time.Hour)
	editions, err := knowledge.WorldCups()
	if err != nil {
		t.Fatalf("WorldCups failed: %v", err)
	}
	ts := newTestServer(t, WithProvider(provider), WithAnswerCache(answers), WithDataset(editions))

	status, out := postChat(t, ts.URL, `{"message":"Quem venceu em 1982?"}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if out["message"] != "Resposta processada com fake" || out["cached"] != false {
		t.Errorf("unexpected first response: %v", out)
	}
	provider.mu.Lock()
	dataset := provider.lastReq.Dataset
	provider.mu.Unlock()
	if !strings.Contains(dataset, "1982|Spain|Italy") {
		t.Error("expected dataset to be sent with the question")
	}

	// Normalized question hits the cache.
	status, out = postChat(t, ts.URL, `{"message":"quem venceu em 1982?"}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if out["message"] != noteCache || out["cached"] != true {
		t.Errorf("expected cache hit, got %v", out)
	}
	if out["answer"] != "A Itália venceu em 1982." {
		t.Errorf("unexpected cached answer: %v", out["answer"])
	}
	if provider.calls.Load() != 1 {
		t.Errorf("expected 1 model call, got %d", provider.calls.Load())
	}
}

func TestChat_LLMError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("rate limited"), available: true}
	ts := newTestServer(t, WithProvider(provider))

	status, out := postChat(t, ts.URL, `{"message":"quem foi o artilheiro de 2014?"}`)
	if status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", status)
	}
	if out["detail"] != "Erro interno: rate limited" {
		t.Errorf("unexpected detail: %v", out["detail"])
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
		want     string
	}{
		{"keyword mode", nil, "healthy"},
		{"provider available", &fakeProvider{available: true}, "healthy"},
		{"provider down", &fakeProvider{available: false}, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.provider != nil {
				opts = append(opts, WithProvider(tt.provider))
			}
			ts := newTestServer(t, opts...)

			resp, err := http.Get(ts.URL + "/health")
			if err != nil {
				t.Fatalf("GET /health failed: %v", err)
			}
			defer func() { _ = resp.Body.Close() }()

			var out healthResponse
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if out.Status != tt.want {
				t.Errorf("expected %s, got %s", tt.want, out.Status)
			}
			if out.Message == "" {
				t.Error("expected message")
			}
		})
	}
}

func TestClientRoundTrip(t *testing.T) {
	ts := newTestServer(t, WithProvider(&fakeProvider{answer: "Pelé.", available: true}))
	c := client.New(client.Config{Endpoint: ts.URL, Timeout: 5 * time.Second})
	ctx := context.Background()

	quick, err := c.SendQuery(ctx, "oi")
	if err != nil {
		t.Fatalf("SendQuery failed: %v", err)
	}
	if !quick.Cached || !quick.Succeeded {
		t.Errorf("expected cached quick answer, got %+v", quick)
	}

	answered, err := c.SendQuery(ctx, "quem é o rei do futebol?")
	if err != nil {
		t.Fatalf("SendQuery failed: %v", err)
	}
	if answered.Cached || answered.Answer != "Pelé." {
		t.Errorf("unexpected model answer: %+v", answered)
	}

	_, err = c.SendQuery(ctx, "  ")
	if !client.IsServerRejected(err) || err.Error() != "Pergunta não pode estar vazia" {
		t.Errorf("expected server rejection, got %v", err)
	}

	if report := c.CheckHealth(ctx); report.Status != model.HealthHealthy {
		t.Errorf("expected healthy, got %+v", report)
	}

	info := c.GetInfo(ctx)
	if info == nil || info["version"] != Version {
		t.Errorf("unexpected info: %v", info)
	}

	status := c.GetStatus(ctx)
	if status == nil || status["llm_ready"] != true {
		t.Errorf("unexpected status: %v", status)
	}
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		origin string
		want   string
	}{
		{"http://localhost:5173", "http://localhost:5173"},
		{"http://evil.example", ""},
	}

	for _, tt := range tests {
		req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/chat", nil)
		req.Header.Set("Origin", tt.origin)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("OPTIONS failed: %v", err)
		}
		_ = resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected 200 preflight, got %d", resp.StatusCode)
		}
		if got := resp.Header.Get("Access-Control-Allow-Origin"); got != tt.want {
			t.Errorf("origin %s: expected %q, got %q", tt.origin, tt.want, got)
		}
	}
}

func TestMetrics(t *testing.T) {
	ts := newTestServer(t, WithMetrics(NewMetrics()))

	postChat(t, ts.URL, `{"message":"oi"}`)
	postChat(t, ts.URL, `{"message":""}`)

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	for _, want := range []string{
		`footbot_chat_requests_total{outcome="quick"} 1`,
		`footbot_chat_requests_total{outcome="rejected"} 1`,
		`footbot_chat_duration_seconds_count{outcome="quick"} 1`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("expected metrics to contain %q", want)
		}
	}
}

func TestMetricsDisabled(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ppiankov/footbot/internal/llm"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Answer  string `json:"answer"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Cached  bool   `json:"cached"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Status notes returned in the "message" field
const (
	noteQuick   = "Resposta rápida"
	noteCache   = "Resposta do cache"
	noteKeyword = "Resposta local baseada em palavra-chave"
	noteLLM     = "Resposta processada com "
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil {
		s.metrics.observeChat(outcomeRejected, started)
		writeError(w, http.StatusUnprocessableEntity, "Requisição inválida: campo message obrigatório")
		return
	}

	question := strings.TrimSpace(req.Message)
	if question == "" {
		s.metrics.observeChat(outcomeRejected, started)
		writeError(w, http.StatusBadRequest, "Pergunta não pode estar vazia")
		return
	}

	if answer, ok := s.knowledge.QuickAnswer(question); ok {
		s.metrics.observeChat(outcomeQuick, started)
		writeJSON(w, http.StatusOK, chatResponse{Answer: answer, Success: true, Message: noteQuick, Cached: true})
		return
	}

	if s.provider == nil {
		answer, source := s.resolver.ResolveWithSource(question)
		s.logger.Debug("keyword answer", zap.String("source", string(source)))
		s.metrics.observeChat(outcomeKeyword, started)
		writeJSON(w, http.StatusOK, chatResponse{Answer: answer, Success: true, Message: noteKeyword})
		return
	}

	if s.answers != nil {
		if cached, ok := s.answers.Get(question); ok {
			s.metrics.observeChat(outcomeCache, started)
			writeJSON(w, http.StatusOK, chatResponse{Answer: cached.Text, Success: true, Message: noteCache, Cached: true})
			return
		}
	}

	resp, err := s.provider.Answer(r.Context(), llm.AnswerRequest{Question: question, Dataset: s.dataset})
	if err != nil {
		s.logger.Error("llm answer failed", zap.String("provider", s.provider.Name()), zap.Error(err))
		s.metrics.observeChat(outcomeError, started)
		writeError(w, http.StatusInternalServerError, "Erro interno: "+err.Error())
		return
	}

	if s.answers != nil {
		if err := s.answers.Put(question, resp.Answer, s.provider.Name()); err != nil {
			s.logger.Warn("cache answer failed", zap.Error(err))
		}
	}

	s.logger.Debug("llm answer",
		zap.String("model", resp.Model),
		zap.Int("tokens", resp.TokensUsed),
		zap.Duration("elapsed", time.Since(started)))
	s.metrics.observeChat(outcomeLLM, started)
	writeJSON(w, http.StatusOK, chatResponse{Answer: resp.Answer, Success: true, Message: noteLLM + s.provider.Name()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "healthy", Message: "API funcionando corretamente com respostas por palavra-chave"}

	if s.provider != nil {
		if s.provider.IsAvailable(r.Context()) {
			resp.Message = "API funcionando corretamente com " + s.provider.Name()
		} else {
			resp = healthResponse{Status: "unhealthy", Message: "Provedor " + s.provider.Name() + " indisponível"}
		}
	}

	s.metrics.observeHealth(resp.Status)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "FootBot API",
		"version":     Version,
		"description": "Chatbot especializado em futebol e Copa do Mundo FIFA",
		"provider":    s.providerName(),
		"endpoints": map[string]string{
			"health": "/health",
			"chat":   "/chat",
			"status": "/status",
		},
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"system":          "FootBot API",
		"llm_ready":       s.provider != nil,
		"provider":        s.providerName(),
		"datasets_loaded": s.editions > 0,
		"editions":        s.editions,
		"template_size":   len(s.dataset),
		"cache_enabled":   s.answers != nil,
		"keywords":        len(s.knowledge.Keywords),
		"faq":             len(s.knowledge.FAQ),
		"uptime_seconds":  int(time.Since(s.started).Seconds()),
		"language":        "Portuguese",
	})
}

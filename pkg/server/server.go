package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/m-mizutani/duamind/pkg/adapter"
	"github.com/m-mizutani/duamind/pkg/utils/logging"
	"google.golang.org/genai"
)

// Server exposes the generation proxy endpoint. It holds the provider
// credential so the client never sees it.
type Server struct {
	gemini adapter.Gemini
	mux    *http.ServeMux
}

// New creates a Server. gemini may be nil when no provider credential is
// configured; generation requests then fail with a 500.
func New(gemini adapter.Gemini) *Server {
	s := &Server{
		gemini: gemini,
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("POST /api/generate", s.handleGenerate)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, body adapter.GenerateResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.From(ctx).With("request_id", uuid.NewString())

	var req adapter.GenerateRequest
	// Malformed JSON is treated the same as a missing prompt: the client
	// sent an unusable request, so both get the 400.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserPrompt == "" {
		writeJSON(w, http.StatusBadRequest, adapter.GenerateResponse{Error: "User prompt is required"})
		return
	}

	if s.gemini == nil {
		logger.Error("generation requested but no API key is configured")
		writeJSON(w, http.StatusInternalServerError, adapter.GenerateResponse{Error: "API key not configured on server"})
		return
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: req.UserPrompt}},
		},
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemInstruction}},
		},
	}

	resp, err := s.gemini.GenerateContent(ctx, contents, config)
	if err != nil {
		// Provider detail stays in the server log; the client gets a
		// generic message.
		logger.Error("provider call failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, adapter.GenerateResponse{Error: "Failed to generate content"})
		return
	}

	text := resp.Text()
	if text == "" {
		logger.Error("provider returned an empty response")
		writeJSON(w, http.StatusInternalServerError, adapter.GenerateResponse{Error: "Failed to generate content"})
		return
	}

	logger.Info("generated dua", "prompt_len", len(req.UserPrompt), "text_len", len(text))
	writeJSON(w, http.StatusOK, adapter.GenerateResponse{Text: text})
}

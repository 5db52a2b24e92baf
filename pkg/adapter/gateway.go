package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/duamind/pkg/model"
	"github.com/m-mizutani/duamind/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Gateway sends a built prompt to the generation proxy and returns the
// generated text. Implementations make at most one attempt per call.
type Gateway interface {
	Generate(ctx context.Context, instruction, content string) (string, error)
}

// GenerateRequest is the wire format of the proxy endpoint.
type GenerateRequest struct {
	UserPrompt        string `json:"userPrompt"`
	SystemInstruction string `json:"systemInstruction"`
}

// GenerateResponse is the proxy's success body; Error is set on failure
// responses instead.
type GenerateResponse struct {
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

type GatewayClient struct {
	baseURL    string
	httpClient *http.Client
}

type GatewayOption func(*GatewayClient)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(c *http.Client) GatewayOption {
	return func(g *GatewayClient) {
		g.httpClient = c
	}
}

// NewGateway creates a gateway client for the proxy at baseURL.
func NewGateway(baseURL string, opts ...GatewayOption) (*GatewayClient, error) {
	if baseURL == "" {
		return nil, goerr.New("server URL is required")
	}

	g := &GatewayClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate forwards (instruction, content) to the proxy. Transport
// failures, non-success statuses and malformed bodies all collapse into
// model.ErrGeneration; the underlying detail is logged, never surfaced.
func (g *GatewayClient) Generate(ctx context.Context, instruction, content string) (string, error) {
	body, err := json.Marshal(GenerateRequest{
		UserPrompt:        content,
		SystemInstruction: instruction,
	})
	if err != nil {
		return "", goerr.Wrap(model.ErrGeneration, "failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", goerr.Wrap(model.ErrGeneration, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		logging.From(ctx).Warn("generation request failed", "error", err)
		return "", model.ErrGeneration
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.From(ctx).Warn("failed to read generation response", "error", err)
		return "", model.ErrGeneration
	}

	var result GenerateResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		logging.From(ctx).Warn("malformed generation response",
			"status", resp.StatusCode, "error", err)
		return "", model.ErrGeneration
	}

	if resp.StatusCode != http.StatusOK || result.Text == "" {
		logging.From(ctx).Warn("generation rejected by server",
			"status", resp.StatusCode, "server_error", result.Error)
		return "", model.ErrGeneration
	}

	return result.Text, nil
}

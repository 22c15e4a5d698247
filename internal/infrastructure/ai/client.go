package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/MightyBhargava/LegalChain-sub001/internal/config"
)

// Outcome is the pre-classified result of one question. Transport failures,
// non-2xx responses, unsuccessful answers and empty replies all collapse to
// Success=false; callers choose a mutation from the outcome alone and never
// retry or interpret lower-level causes.
type Outcome struct {
	Success bool
	Reply   string
}

// Client asks the AI legal-insights endpoint a free-text question.
type Client interface {
	Ask(ctx context.Context, question string) Outcome
}

type client struct {
	http     *http.Client
	endpoint string
	apiKey   string
}

func NewClient(cfg *config.Config) Client {
	return &client{
		http:     &http.Client{Timeout: cfg.AITimeout},
		endpoint: cfg.AIEndpointURL,
		apiKey:   cfg.AIAPIKey,
	}
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply"`
}

func (c *client) Ask(ctx context.Context, question string) Outcome {
	body, err := json.Marshal(askRequest{Question: question})
	if err != nil {
		return Outcome{}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Outcome{}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Warn("ai endpoint unreachable", "err", err)
		return Outcome{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("ai endpoint returned error status", "status", resp.StatusCode)
		return Outcome{}
	}

	var out askResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		slog.Warn("ai endpoint returned malformed body", "err", err)
		return Outcome{}
	}
	if !out.Success || out.Reply == "" {
		return Outcome{}
	}
	return Outcome{Success: true, Reply: out.Reply}
}

// Package openai implements port.Advisor on top of the OpenAI chat
// completions API.
package openai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"adsight/internal/config/configs"
	"adsight/internal/core/domain"
	"adsight/internal/core/port"
)

const (
	opChat     = "chat"
	opInsights = "insights"

	chatMaxTokens     = 1000
	insightsMaxTokens = 800

	// maxResponseBytes caps how much of a provider response is read.
	maxResponseBytes = 1 << 20
)

var errEmptyCompletion = errors.New("openai: empty completion")

// Client talks to the chat completions endpoint. Calls go through a
// circuit breaker so a failing provider is short-circuited until the
// cooldown elapses. Callers bound each call with their context.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	org     string
	model   string
	breaker *gobreaker.CircuitBreaker[[]byte]
	logger  *slog.Logger
}

// NewClient builds a Client from cfg. A nil httpClient uses a default one.
func NewClient(cfg configs.Advisor, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	c := &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		org:     cfg.Org,
		model:   cfg.Model,
		logger:  logger,
	}
	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "openai",
		Timeout: cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("advisor circuit state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})
	return c
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionRequest struct {
	Model               string         `json:"model"`
	Messages            []message      `json:"messages"`
	ResponseFormat      responseFormat `json:"response_format"`
	MaxCompletionTokens int            `json:"max_completion_tokens,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Chat answers a free-form question. The model replies with a JSON
// object holding the answer text and optional structured insights.
func (c *Client) Chat(ctx context.Context, req port.AdvisorRequest) (*port.AdvisorReply, error) {
	content, err := c.complete(ctx, opChat, chatSystemPrompt, chatUserPrompt(req), chatMaxTokens)
	if err != nil {
		return nil, err
	}
	var parsed struct {
		Response string          `json:"response"`
		Insights json.RawMessage `json:"insights"`
	}
	if err = json.Unmarshal(content, &parsed); err != nil {
		return nil, fmt.Errorf("decode chat reply: %w", err)
	}
	if parsed.Response == "" {
		return nil, errEmptyCompletion
	}
	reply := &port.AdvisorReply{Response: parsed.Response}
	if len(parsed.Insights) > 0 && string(parsed.Insights) != "null" {
		reply.Insights = []byte(parsed.Insights)
	}
	return reply, nil
}

// Insights asks for a list of recommendations on the given campaigns.
func (c *Client) Insights(ctx context.Context, campaigns []port.CampaignSnapshot) ([]domain.Insight, error) {
	content, err := c.complete(ctx, opInsights, insightsSystemPrompt, insightsUserPrompt(campaigns), insightsMaxTokens)
	if err != nil {
		return nil, err
	}
	var parsed struct {
		Insights []domain.Insight `json:"insights"`
	}
	if err = json.Unmarshal(content, &parsed); err != nil {
		return nil, fmt.Errorf("decode insights: %w", err)
	}
	if parsed.Insights == nil {
		parsed.Insights = []domain.Insight{}
	}
	return parsed.Insights, nil
}

// complete runs one completion through the breaker and returns the
// message content of the first choice.
func (c *Client) complete(ctx context.Context, op, system, user string, maxTokens int) ([]byte, error) {
	start := time.Now()
	content, err := c.breaker.Execute(func() ([]byte, error) {
		return c.post(ctx, completionRequest{
			Model: c.model,
			Messages: []message{
				{Role: "system", Content: system},
				{Role: "user", Content: user},
			},
			ResponseFormat:      responseFormat{Type: "json_object"},
			MaxCompletionTokens: maxTokens,
		})
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		advisorRequests.WithLabelValues(op, "circuit_open").Inc()
		return nil, fmt.Errorf("openai %s: %w", op, err)
	case err != nil:
		advisorRequests.WithLabelValues(op, "error").Inc()
		return nil, fmt.Errorf("openai %s: %w", op, err)
	}
	advisorRequests.WithLabelValues(op, "success").Inc()
	advisorDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	return content, nil
}

func (c *Client) post(ctx context.Context, body completionRequest) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.org != "" {
		req.Header.Set("OpenAI-Organization", c.org)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var out completionResponse
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return nil, errEmptyCompletion
	}
	return []byte(out.Choices[0].Message.Content), nil
}

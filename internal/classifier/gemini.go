// Package classifier wraps the external text-classification capability.
// Classify never fails: every failure mode (unavailable service, timeout,
// malformed output) collapses into the fixed default result, logged and
// counted but not surfaced to the caller.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/generative-ai-go/genai"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/api/option"

	"oceanwatch/internal/domain"
)

var errUnavailable = errors.New("classifier unavailable: no API key configured")

type Config struct {
	APIKey string
	Model  string // default "gemini-2.0-flash"
}

type Client struct {
	client   *genai.Client
	logger   *slog.Logger
	requests prometheus.Counter
	fallback prometheus.Counter

	// generate performs one model call. Swapped out in tests.
	generate func(ctx context.Context, prompt string) (string, error)
}

// NewClient builds the Gemini-backed classifier. With an empty API key the
// client still works: every call resolves to the default classification.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger, requests, fallback prometheus.Counter) (*Client, error) {
	c := &Client{
		logger:   logger,
		requests: requests,
		fallback: fallback,
	}

	if cfg.APIKey == "" {
		logger.Warn("classifier API key is empty, every report will get the default classification")
		c.generate = func(context.Context, string) (string, error) {
			return "", errUnavailable
		}
		return c, nil
	}

	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}
	model.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.3),
		MaxOutputTokens:  genai.Ptr[int32](500),
	}

	c.client = client
	c.generate = func(ctx context.Context, prompt string) (string, error) {
		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return "", err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return "", errors.New("empty model response")
		}
		text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
		if !ok {
			return "", errors.New("unexpected response part type")
		}
		return string(text), nil
	}

	logger.Info("classifier initialized", slog.String("model", cfg.Model))
	return c, nil
}

// Classify scores one report description. Single attempt, no retry; the
// first failure goes straight to the fallback result.
func (c *Client) Classify(ctx context.Context, description, hazardType string) domain.Classification {
	c.requests.Inc()

	raw, err := c.generate(ctx, buildPrompt(hazardType, description))
	if err != nil {
		c.logger.Warn("classification call failed, applying defaults",
			slog.String("hazard_type", hazardType),
			slog.Any("error", err),
		)
		c.fallback.Inc()
		return Fallback(hazardType)
	}

	result, err := parseClassification(raw, hazardType)
	if err != nil {
		c.logger.Warn("classification response unparsable, applying defaults",
			slog.String("hazard_type", hazardType),
			slog.String("response", raw),
			slog.Any("error", err),
		)
		c.fallback.Inc()
		return Fallback(hazardType)
	}

	return result
}

func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

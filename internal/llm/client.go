// Package llm generates roast content through an OpenAI-compatible chat
// model. Anything that goes wrong here, from transport errors to a
// response that fails validation, surfaces as a ProviderError so the
// caller can fall back to the template engine.
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"github.com/gnomegl/gitroast/internal/models"
	"github.com/gnomegl/gitroast/internal/retry"
)

const DefaultModel = openai.GPT4oMini

// ProviderError wraps any generation failure with the stage it died in.
type ProviderError struct {
	Reason string
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm provider: %s: %v", e.Reason, e.Err)
	}
	return "llm provider: " + e.Reason
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Generator produces roast content from a chat completion model.
type Generator struct {
	client *openai.Client
	logger *logrus.Logger
	model  string
}

// NewGenerator builds a generator for the given API key. An empty model
// selects the default.
func NewGenerator(apiKey, model string, logger *logrus.Logger) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{
		client: openai.NewClient(apiKey),
		logger: logger,
		model:  model,
	}
}

// Generate asks the model for a full content bundle and validates it.
// Transport calls are retried; an unparseable or incomplete response is
// not, since resending the same prompt is unlikely to fix the model's
// formatting.
func (g *Generator) Generate(ctx context.Context, analysis *models.Analysis) (*models.ContentBundle, error) {
	userPrompt, err := buildPrompt(analysis)
	if err != nil {
		return nil, &ProviderError{Reason: "building prompt", Err: err}
	}

	g.logger.WithField("model", g.model).Debug("requesting generated roast")

	text, err := retry.Do(ctx, func() (string, error) {
		return g.complete(ctx, userPrompt)
	}, retry.WithInitialDelay(4*time.Second))
	if err != nil {
		return nil, &ProviderError{Reason: "completion request", Err: err}
	}

	bundle, err := parseBundle(text)
	if err != nil {
		g.logger.WithError(err).Debug("generated response failed validation")
		return nil, err
	}

	g.logger.WithFields(logrus.Fields{
		"roasts":       len(bundle.Roasts),
		"achievements": len(bundle.Achievements),
	}).Debug("generated roast accepted")
	return bundle, nil
}

func (g *Generator) complete(ctx context.Context, userPrompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
		Temperature: 0.9,
		MaxTokens:   2000,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

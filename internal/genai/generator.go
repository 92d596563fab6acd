// File path: internal/genai/generator.go
package genai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/dkoushik/prepwell/internal/common"
	"github.com/dkoushik/prepwell/internal/question"
	"github.com/dkoushik/prepwell/internal/recommend"
)

// Completer abstracts the single chat-completion round trip so tests can
// substitute the network call.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator produces practice questions similar to a source question via an
// external text-generation endpoint. Generate never returns an error: every
// failure path (disabled, timeout, malformed payload, nothing valid) resolves
// to an empty slice, logged internally, so callers need not distinguish
// "generation failed" from "generation had nothing to add".
type Generator struct {
	cfg       Config
	cache     *recommend.Cache
	completer Completer
}

// Option customizes a Generator.
type Option func(*Generator)

// WithCompleter injects a transport implementation, replacing the default
// OpenAI-backed one.
func WithCompleter(c Completer) Option {
	return func(g *Generator) {
		g.completer = c
	}
}

// WithCache injects a shared generation cache instance.
func WithCache(c *recommend.Cache) Option {
	return func(g *Generator) {
		g.cache = c
	}
}

// New constructs a Generator from configuration. When the config is active
// and no completer override is supplied, an OpenAI chat-completions client is
// wired in.
func New(cfg Config, opts ...Option) *Generator {
	g := &Generator{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	if g.cache == nil {
		g.cache = recommend.NewCache(cfg.CacheTTL)
	}
	if g.completer == nil && cfg.Active() {
		g.completer = newChatCompleter(cfg)
	}
	return g
}

// Generate returns up to count validated questions similar to the source.
// Exactly one external round trip is made per cache miss; there are no
// retries, keeping the latency of the user-facing request bounded.
func (g *Generator) Generate(ctx context.Context, source question.Question, count int, subjectOverride string) []question.Question {
	logger := common.Logger()
	if count <= 0 {
		return nil
	}
	if !g.cfg.Active() || g.completer == nil {
		logger.Debug("genai: generation disabled", "source", source.ID)
		return nil
	}
	if g.cfg.CacheEnabled {
		if cached, ok := g.cache.Get(source.ID, count); ok {
			logger.Debug("genai: cache hit", "source", source.ID, "count", count)
			return cached
		}
	}

	prompt := buildPrompt(source, count, subjectOverride)
	callCtx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()
	started := time.Now()
	raw, err := g.completer.Complete(callCtx, prompt)
	if err != nil {
		logger.Warn("genai: generation call failed",
			"source", source.ID, "dur", time.Since(started), "error", err)
		return nil
	}

	candidates, err := parseCandidates(raw)
	if err != nil {
		logger.Warn("genai: unusable generation payload", "source", source.ID, "error", err)
		return nil
	}
	questions := enrich(source, candidates, time.Now().UTC())
	if len(questions) == 0 {
		logger.Warn("genai: no candidates survived validation", "source", source.ID)
		return nil
	}
	if g.cfg.CacheEnabled {
		g.cache.Put(source.ID, count, questions)
	}
	logger.Info("genai: questions generated",
		"source", source.ID, "requested", count, "produced", len(questions),
		"dur", time.Since(started))
	return questions
}

type chatCompleter struct {
	client      openai.Client
	model       string
	maxTokens   int64
	temperature float64
}

func newChatCompleter(cfg Config) *chatCompleter {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	return &chatCompleter{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

func (c *chatCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(c.maxTokens),
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

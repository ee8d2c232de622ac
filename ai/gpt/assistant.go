package gpt

import (
	"PharmaCS/entity"
	"PharmaCS/internal/config"
	"PharmaCS/internal/lib/sl"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Assistant wraps a single-shot chat completion against OpenAI. When no
// credential is configured the client stays nil and every Ask reports
// ModelUnavailable, letting the composer degrade to templates.
type Assistant struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
	log         *slog.Logger
}

func NewAssistant(conf *config.Config, logger *slog.Logger) *Assistant {
	ass := &Assistant{
		model:       conf.OpenAI.Model,
		maxTokens:   conf.OpenAI.MaxTokens,
		temperature: conf.OpenAI.Temperature,
		timeout:     time.Duration(conf.OpenAI.TimeoutSec) * time.Second,
		log:         logger.With(sl.Module("gpt")),
	}
	if conf.OpenAI.ApiKey != "" {
		ass.client = openai.NewClient(conf.OpenAI.ApiKey)
	}
	return ass
}

func (a *Assistant) Configured() bool {
	return a.client != nil
}

// Ask issues one chat completion, single attempt, bounded timeout. Every
// failure mode is folded into the tagged result; Ask never returns an error.
func (a *Assistant) Ask(ctx context.Context, systemMsg, userMsg string) entity.ModelResult {
	if a.client == nil {
		return entity.ModelResult{State: entity.ModelUnavailable}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		MaxTokens:   a.maxTokens,
		Temperature: a.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: userMsg},
		},
	})
	if err != nil {
		a.log.With(
			slog.String("model", a.model),
			sl.Err(err),
		).Error("chat completion")
		return entity.ModelResult{State: entity.ModelError, Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		err = fmt.Errorf("empty completion")
		a.log.With(
			slog.String("model", a.model),
			sl.Err(err),
		).Error("chat completion")
		return entity.ModelResult{State: entity.ModelError, Err: err}
	}

	return entity.ModelResult{State: entity.ModelSuccess, Text: resp.Choices[0].Message.Content}
}

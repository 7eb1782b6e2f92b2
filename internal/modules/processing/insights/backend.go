package insights

import (
	"context"
	"errors"
	"strings"

	anthropicclient "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	jetai "go.jetify.com/ai"
	jetapi "go.jetify.com/ai/api"
	jetanthropic "go.jetify.com/ai/provider/anthropic"
)

const (
	temperature              = 0.7
	anthropicMaxOutputTokens = 4096
)

// Backend sends one system prompt and one user message to an LLM and returns
// the reply text. An empty reply with a nil error means the model produced no
// content.
type Backend interface {
	Complete(ctx context.Context, systemPrompt, content string) (string, error)
}

// OpenAIBackend uses the chat completions API of OpenAI or any compatible host.
type OpenAIBackend struct {
	client openaiclient.Client
	model  string
}

// NewOpenAIBackend builds a backend; baseURL may be empty for the default host.
func NewOpenAIBackend(apiKey, baseURL, model string, opts ...openaioption.RequestOption) *OpenAIBackend {
	reqOpts := []openaioption.RequestOption{
		openaioption.WithAPIKey(apiKey),
		openaioption.WithMaxRetries(0),
	}
	if base := strings.TrimSpace(baseURL); base != "" {
		reqOpts = append(reqOpts, openaioption.WithBaseURL(base))
	}
	reqOpts = append(reqOpts, opts...)

	return &OpenAIBackend{client: openaiclient.NewClient(reqOpts...), model: model}
}

func (b *OpenAIBackend) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	completion, err := b.client.Chat.Completions.New(ctx, openaiclient.ChatCompletionNewParams{
		Messages: []openaiclient.ChatCompletionMessageParamUnion{
			openaiclient.SystemMessage(systemPrompt),
			openaiclient.UserMessage(content),
		},
		Model:       openaiclient.ChatModel(b.model),
		Temperature: openaiclient.Float(temperature),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty response from AI")
	}
	return completion.Choices[0].Message.Content, nil
}

// AnthropicBackend routes the same request through the Anthropic messages API.
type AnthropicBackend struct {
	model jetapi.LanguageModel
}

func NewAnthropicBackend(apiKey, model string, opts ...anthropicoption.RequestOption) *AnthropicBackend {
	reqOpts := []anthropicoption.RequestOption{
		anthropicoption.WithAPIKey(apiKey),
		anthropicoption.WithMaxRetries(0),
	}
	reqOpts = append(reqOpts, opts...)

	client := anthropicclient.NewClient(reqOpts...)
	return &AnthropicBackend{model: jetanthropic.NewLanguageModel(model, jetanthropic.WithClient(client))}
}

func (b *AnthropicBackend) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	messages := []jetapi.Message{
		&jetapi.SystemMessage{Content: systemPrompt},
		&jetapi.UserMessage{Content: jetapi.ContentFromText(content)},
	}
	resp, err := jetai.GenerateText(ctx, messages,
		jetai.WithModel(b.model),
		jetai.WithTemperature(temperature),
		jetai.WithMaxOutputTokens(anthropicMaxOutputTokens),
	)
	if err != nil {
		return "", err
	}

	var full strings.Builder
	for _, block := range resp.Content {
		if textBlock, ok := block.(*jetapi.TextBlock); ok {
			full.WriteString(textBlock.Text)
		}
	}
	return full.String(), nil
}

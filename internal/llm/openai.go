package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

var openaiModels = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
	"gpt-5":       "gpt-5",
}

// OpenAIProvider implements Provider on the chat completions API.
// OpenRouter and other OpenAI-compatible APIs are reached via BaseURL.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	if len(cfg.Headers) > 0 {
		config.HTTPClient = headerDoer{client: http.DefaultClient, headers: cfg.Headers}
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  resolveModel(cfg.Model, openaiModels),
	}, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	chatReq, err := p.chatRequest(req)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &ErrInvalidResponse{Err: errors.New("no choices in OpenAI response")}
	}

	choice := resp.Choices[0]
	stop := mapOpenAIStopReason(choice.FinishReason)
	content, err := finishContent(req, json.RawMessage(choice.Message.Content), stop)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content: content,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
		Model:      resp.Model,
		StopReason: stop,
	}, nil
}

func (p *OpenAIProvider) ModelID() string {
	return p.model
}

func (p *OpenAIProvider) chatRequest(req Request) (openai.ChatCompletionRequest, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:               p.model,
		Messages:            make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1),
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
	}
	if req.System != "" {
		chatReq.Messages = append(chatReq.Messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		chatReq.Messages = append(chatReq.Messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	if req.Schema != nil {
		schema, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			return chatReq, fmt.Errorf("marshal schema %s: %w", req.Schema.Name, err)
		}
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.Schema.Name,
				Schema: json.RawMessage(schema),
				Strict: true,
			},
		}
	}
	return chatReq, nil
}

func mapOpenAIStopReason(reason openai.FinishReason) string {
	if reason == openai.FinishReasonLength {
		return "max_tokens"
	}
	return "end"
}

// mapOpenAIError classifies both error shapes the SDK returns: a decoded
// API error body and a bare HTTP failure.
func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(err, apiErr.HTTPStatusCode, nil)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(err, reqErr.HTTPStatusCode, nil)
	}
	return classifyStatus(err, 0, nil)
}

// headerDoer adds fixed headers to every request.
type headerDoer struct {
	client  *http.Client
	headers map[string]string
}

func (d headerDoer) Do(req *http.Request) (*http.Response, error) {
	for k, v := range d.headers {
		req.Header.Set(k, v)
	}
	return d.client.Do(req)
}

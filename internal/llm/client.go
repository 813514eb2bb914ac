// Package llm is the transport client: it sends one chat-completion
// request and returns the response text or an error. No retries, no
// streaming; blocking until the response or the configured timeout.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"aiadvent/internal/proto"
)

type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	// Timeout bounds a single request; zero means the SDK default.
	Timeout time.Duration
	// HTTPClient overrides the underlying client, used by tests.
	HTTPClient *http.Client
}

type Client struct {
	client openai.Client
	opts   Options
}

func NewClient(opts Options) *Client {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithBaseURL(opts.BaseURL),
		// The SDK retries twice by default; a failed call must surface
		// as a single error instead.
		option.WithMaxRetries(0),
	}
	if opts.Timeout > 0 {
		reqOpts = append(reqOpts, option.WithRequestTimeout(opts.Timeout))
	}
	if opts.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(opts.HTTPClient))
	}
	return &Client{
		client: openai.NewClient(reqOpts...),
		opts:   opts,
	}
}

// Complete issues one blocking chat-completion call and extracts
// choices[0].message.content.
func (c *Client) Complete(ctx context.Context, req proto.Request) (string, error) {
	params := openai.ChatCompletionNewParams{
		Messages: req.Messages,
		Model:    c.opts.Model,
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.MaxTokens != nil {
		params.MaxTokens = openai.Int(*req.MaxTokens)
	}
	if req.Stop != nil {
		params.Stop = openai.ChatCompletionNewParamsStopUnion{
			OfString: openai.String(*req.Stop),
		}
	}
	if req.JSONOnly {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty response from model")
	}
	return completion.Choices[0].Message.Content, nil
}

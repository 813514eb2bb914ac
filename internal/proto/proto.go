package proto

import "github.com/openai/openai-go/v3"

// Request describes one chat-completion call. Optional fields are nil
// pointers; an unset field must not reach the wire.
type Request struct {
	Messages    []openai.ChatCompletionMessageParamUnion
	Temperature *float64
	MaxTokens   *int64
	Stop        *string
	// JSONOnly asks the endpoint for a structured JSON object response.
	JSONOnly bool
}

// Flags selects which optional request parameters are active for one
// trial of the matrix command.
type Flags struct {
	UseFormat    bool
	UseMaxTokens bool
	UseStop      bool
}


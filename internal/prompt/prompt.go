// Package prompt builds the messages and request parameters sent to the
// completion endpoint. Everything here is a pure function of the config
// and the active flags.
package prompt

import (
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"

	"aiadvent/internal/config"
	"aiadvent/internal/proto"
)

// Fixed prompts of the cat command.
const (
	CatSystemPrompt = `Ты художник ASCII-графики. Твоя задача создавать красивые, детальные и выразительные ASCII-изображения.
Используй различные символы для создания теней, текстур и деталей.
Максимизируй использование доступного пространства для создания максимально подробного и эстетичного изображения.`

	CatUserPrompt = `Нарисуй максимально красивый и подробный ASCII графикой котика, который говорит "Привет, Мир!".
Сделай его милым, детализированным и выразительным. Используй разнообразные символы для создания текстуры шерсти, глаз, усов и других деталей.`
)

const catTemperature = 0.7

// BuildCatRequest assembles the single fixed request of the cat command.
func BuildCatRequest(cfg *config.CatConfig) proto.Request {
	temperature := catTemperature
	maxTokens := cfg.MaxTokens
	return proto.Request{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(CatSystemPrompt),
			openai.UserMessage(CatUserPrompt),
		},
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	}
}

// SystemInstruction joins the instructions for the active flags with
// single spaces, in the fixed order format, max-tokens, stop. With no
// flags set it returns the empty string.
func SystemInstruction(req config.RequestSection, f proto.Flags) string {
	var instructions []string
	if f.UseFormat {
		instructions = append(instructions, fmt.Sprintf("Ответ должен быть в формате %s.", req.ResponseFormat))
	}
	if f.UseMaxTokens {
		instructions = append(instructions, fmt.Sprintf("Ответ не должен превышать %d токенов.", req.MaxTokens))
	}
	if f.UseStop {
		instructions = append(instructions, fmt.Sprintf("Заверши ответ перед последовательностью: %s", QuoteSequence(req.StopSequence)))
	}
	return strings.Join(instructions, " ")
}

// BuildTrialRequest assembles the request for one flag combination. The
// system message is present only when at least one flag is set; the user
// message is always the raw prompt template.
func BuildTrialRequest(req config.RequestSection, f proto.Flags) proto.Request {
	var r proto.Request

	if instruction := SystemInstruction(req, f); instruction != "" {
		r.Messages = append(r.Messages, openai.SystemMessage(instruction))
	}
	r.Messages = append(r.Messages, openai.UserMessage(req.PromptTemplate))

	if f.UseMaxTokens {
		maxTokens := req.MaxTokens
		r.MaxTokens = &maxTokens
	}
	if f.UseStop {
		stop := req.StopSequence
		r.Stop = &stop
	}
	// The instruction text names any configured format, but only the
	// literal "json" maps to a structured response_format field.
	if f.UseFormat && req.ResponseFormat == "json" {
		r.JSONOnly = true
	}

	return r
}

// QuoteSequence renders a stop sequence the way it is shown to the model
// and the user: single-quoted, switching to double quotes when the
// sequence itself contains a single quote.
func QuoteSequence(s string) string {
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	return "'" + s + "'"
}

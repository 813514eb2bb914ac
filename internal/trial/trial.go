// Package trial enumerates the optional-parameter combinations the matrix
// command walks through and carries per-trial outcomes.
package trial

import (
	"fmt"
	"strings"

	"aiadvent/internal/config"
	"aiadvent/internal/prompt"
	"aiadvent/internal/proto"
)

// Combinations returns all 8 flag tuples in 3-bit binary counter order,
// UseFormat being the most significant bit: 000, 001, ..., 111.
func Combinations() []proto.Flags {
	combos := make([]proto.Flags, 0, 8)
	for i := 0; i < 8; i++ {
		combos = append(combos, proto.Flags{
			UseFormat:    i&0b100 != 0,
			UseMaxTokens: i&0b010 != 0,
			UseStop:      i&0b001 != 0,
		})
	}
	return combos
}

// Summary renders the per-trial parameter line, e.g.
// "формат=json, max_tokens=5, stop='STOP'".
func Summary(f proto.Flags, req config.RequestSection) string {
	var params []string
	if f.UseFormat {
		params = append(params, "формат="+req.ResponseFormat)
	}
	if f.UseMaxTokens {
		params = append(params, fmt.Sprintf("max_tokens=%d", req.MaxTokens))
	}
	if f.UseStop {
		params = append(params, "stop="+prompt.QuoteSequence(req.StopSequence))
	}
	if len(params) == 0 {
		return "без параметров"
	}
	return strings.Join(params, ", ")
}

// Result is the outcome of one trial: either the model's answer or the
// reason it failed. A failed trial never stops the remaining ones.
type Result struct {
	Index  int // 1-based
	Flags  proto.Flags
	Answer string
	Err    error
}

package simplify

import (
	"context"
	"strings"
)

// Complexity is the reading level the simplified text is written for.
type Complexity string

const (
	FiveYearOld Complexity = "5-year-old"
	Teenager    Complexity = "teenager"
	Adult       Complexity = "adult"
)

// DefaultComplexity is used when a request does not name a level.
const DefaultComplexity = FiveYearOld

// MaxTextLength is counted in characters (runes), not bytes.
const MaxTextLength = 5000

// Complexities lists the accepted levels in display order.
func Complexities() []Complexity {
	return []Complexity{FiveYearOld, Teenager, Adult}
}

func (c Complexity) Valid() bool {
	switch c {
	case FiveYearOld, Teenager, Adult:
		return true
	}
	return false
}

func (c Complexity) String() string { return string(c) }

// ComplexityNames joins the accepted levels for messages.
func ComplexityNames() string {
	cs := Complexities()
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// AnalyzeRequest is the incoming pair. A nil Complexity means the field was absent;
// ComplexityNull marks a field that was present but null, which is not a level.
type AnalyzeRequest struct {
	Text           string  `json:"text"`
	Complexity     *string `json:"complexity,omitempty"`
	ComplexityNull bool    `json:"-"`
}

type AnalyzeResult struct {
	Original   string     `json:"original"`
	Simplified string     `json:"simplified"`
	Complexity Complexity `json:"complexity"`
	Success    bool       `json:"success"`
	Error      string     `json:"error,omitempty"`
}

// Simplifier rewrites text for the given reading level.
type Simplifier interface {
	Simplify(ctx context.Context, text string, level Complexity) (string, error)
}

// SimplifierFunc adapts a plain function to Simplifier.
type SimplifierFunc func(ctx context.Context, text string, level Complexity) (string, error)

func (f SimplifierFunc) Simplify(ctx context.Context, text string, level Complexity) (string, error) {
	return f(ctx, text, level)
}

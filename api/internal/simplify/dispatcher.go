package simplify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var errEmptySimplification = errors.New("empty simplification")

// Dispatcher validates requests and hands them to a Simplifier.
// A Dispatcher built with a nil Simplifier rejects every valid request as ServiceUnavailable.
type Dispatcher struct {
	s Simplifier
}

func New(s Simplifier) *Dispatcher {
	return &Dispatcher{s: s}
}

// Available reports whether a Simplifier was wired at construction.
func (d *Dispatcher) Available() bool {
	return d != nil && d.s != nil
}

// Validate applies the input checks in order and returns the resolved level.
func Validate(req AnalyzeRequest) (Complexity, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", reject(EmptyInput, "Text cannot be empty", nil)
	}
	if utf8.RuneCountInString(req.Text) > MaxTextLength {
		return "", reject(TextTooLong, fmt.Sprintf("Text too long (max %d characters)", MaxTextLength), nil)
	}

	level := DefaultComplexity
	if req.Complexity != nil {
		level = Complexity(*req.Complexity)
	}
	if req.ComplexityNull || !level.Valid() {
		return "", reject(InvalidComplexity, "Invalid complexity. Must be one of: "+ComplexityNames(), nil)
	}
	return level, nil
}

// Analyze runs validation and, on success, a single Simplify call.
func (d *Dispatcher) Analyze(ctx context.Context, req AnalyzeRequest) (AnalyzeResult, error) {
	level, err := Validate(req)
	if err != nil {
		return AnalyzeResult{}, err
	}
	if !d.Available() {
		return AnalyzeResult{}, reject(ServiceUnavailable, "AI service not available", nil)
	}

	simplified, err := d.call(ctx, req.Text, level)
	if err != nil {
		return AnalyzeResult{}, err
	}

	return AnalyzeResult{
		Original:   req.Text,
		Simplified: simplified,
		Complexity: level,
		Success:    true,
	}, nil
}

func (d *Dispatcher) call(ctx context.Context, text string, level Complexity) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = reject(InternalError, fmt.Sprintf("Internal server error: %v", r), nil)
		}
	}()

	out, err = d.s.Simplify(ctx, text, level)
	if err != nil {
		return "", reject(UpstreamFailure, "AI service error: "+err.Error(), err)
	}
	if strings.TrimSpace(out) == "" {
		return "", reject(UpstreamFailure, "AI service error: "+errEmptySimplification.Error(), errEmptySimplification)
	}
	return out, nil
}

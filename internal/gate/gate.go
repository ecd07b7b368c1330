// Package gate decides whether an extracted intent may be compiled.
package gate

import (
	"errors"
	"strings"

	"intent-router/internal/intent"
)

var (
	// ErrLowConfidence means the intent scored below the configured minimum.
	ErrLowConfidence = errors.New("confidence below threshold")

	// ErrIncompleteSlots means the extractor reported missing slots.
	ErrIncompleteSlots = errors.New("required slots missing")
)

// Verdict is the gate outcome. A rejected verdict carries the reason and
// the clarification to show instead of running an action.
type Verdict struct {
	Accepted      bool
	Reason        error
	Missing       []string
	Clarification string
}

// Evaluate applies the confidence threshold first, then the missing-slot
// check. Confidence wins even when every slot is filled.
func Evaluate(in intent.Intent, minConfidence float64) Verdict {
	switch {
	case in.Confidence < minConfidence:
		return reject(in, ErrLowConfidence)
	case len(in.Missing) > 0:
		return reject(in, ErrIncompleteSlots)
	}
	return Verdict{Accepted: true}
}

func reject(in intent.Intent, reason error) Verdict {
	question := strings.TrimSpace(in.Clarification)
	if question == "" {
		question = intent.GenericClarification
	}
	return Verdict{
		Reason:        reason,
		Missing:       append([]string(nil), in.Missing...),
		Clarification: question,
	}
}

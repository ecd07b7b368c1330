package intent

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSchemaInvalid = errors.New("intent does not match schema")
	ErrNotJSON       = errors.New("no JSON object found")
	ErrUnknownKind   = errors.New("unknown intent kind")
)

// ClarificationError is returned by compilers when a required action
// argument has no filled slot.
type ClarificationError struct {
	Kind          Kind
	Missing       []string
	Clarification string
}

func (e *ClarificationError) Error() string {
	return fmt.Sprintf("%s: missing %s", e.Kind, strings.Join(e.Missing, ","))
}

// NeedClarification builds a ClarificationError.
func NeedClarification(kind Kind, question string, missing ...string) *ClarificationError {
	return &ClarificationError{Kind: kind, Missing: missing, Clarification: question}
}

// AsClarification unwraps err into a ClarificationError.
func AsClarification(err error) (*ClarificationError, bool) {
	var ce *ClarificationError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

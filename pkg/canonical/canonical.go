// Package canonical provides deterministic JSON normalisation and hashing
// used to derive stable identifiers for side-effecting actions.
package canonical

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// Canonicalize returns the canonical JSON form of v.
//
// Object keys are sorted (RFC 8785 ordering), object members whose value is
// nil are omitted, nil array elements become null and array order is kept.
// Structs are lowered through encoding/json first so their tags apply.
func Canonicalize(v any) (string, error) {
	b, err := canonicalBytes(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Hash returns the hex-encoded SHA-256 digest of s.
func Hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Short returns the first HashShortLen characters of a hex digest.
func Short(hashHex string) string {
	if len(hashHex) <= HashShortLen {
		return hashHex
	}
	return hashHex[:HashShortLen]
}

func canonicalBytes(v any) ([]byte, error) {
	generic, err := lower(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(prune(generic)); err != nil {
		return nil, fmt.Errorf("%s: encode: %w", logPrefix, err)
	}

	out, err := jcs.Transform(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}))
	if err != nil {
		return nil, fmt.Errorf("%s: transform: %w", logPrefix, err)
	}
	return out, nil
}

// lower converts v into the generic JSON tree (maps, slices, json.Number,
// strings, bools, nil).
func lower(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s: marshal: %w", logPrefix, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", logPrefix, err)
	}
	return generic, nil
}

func prune(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if val == nil {
				continue
			}
			out[k] = prune(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = prune(val)
		}
		return out
	default:
		return v
	}
}

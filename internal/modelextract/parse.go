package modelextract

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*\\n?(.*?)```")

// ParseObject locates a JSON object in a completion. It accepts a bare
// object, then the first fenced block whose contents parse as an object,
// then the span between the first '{' and the last '}'.
func ParseObject(text string) ([]byte, error) {
	trimmed := strings.TrimSpace(text)
	if isObject(trimmed) {
		return []byte(trimmed), nil
	}

	for _, m := range fenceRe.FindAllStringSubmatch(trimmed, -1) {
		if body := strings.TrimSpace(m[1]); isObject(body) {
			return []byte(body), nil
		}
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		if body := trimmed[start : end+1]; isObject(body) {
			return []byte(body), nil
		}
	}
	return nil, ErrNoObject
}

func isObject(s string) bool {
	if !strings.HasPrefix(s, "{") {
		return false
	}
	var obj map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	if err := dec.Decode(&obj); err != nil {
		return false
	}
	return strings.TrimSpace(s[dec.InputOffset():]) == ""
}

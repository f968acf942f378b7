// Package jsonx provides best-effort decoding of JSON produced by language
// models. Model output often arrives wrapped in markdown code fences or not
// as JSON at all; callers here prefer an empty result over an error.
package jsonx

import (
	"encoding/json"
	"strings"
)

// StripFences removes a surrounding markdown code fence, with or without a
// language tag, and trims whitespace. Input without a fence is returned
// trimmed.
func StripFences(s string) string {
	s = strings.TrimSpace(s)

	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if newline := strings.IndexByte(s, '\n'); newline >= 0 {
		// drop the language tag line ("json", "JSON", ...)
		firstLine := strings.TrimSpace(s[:newline])
		if firstLine == "" || !strings.ContainsAny(firstLine, "{}[]\",") {
			s = s[newline+1:]
		}
	}

	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// DecodeStringList decodes a JSON string array from model output,
// fence-stripped first. Anything that is not a JSON array yields nil, and
// non-string elements are dropped. Garbage in, empty out.
func DecodeStringList(raw string) []string {
	cleaned := StripFences(raw)

	var elements []any
	if err := json.Unmarshal([]byte(cleaned), &elements); err != nil {
		return nil
	}

	values := make([]string, 0, len(elements))
	for _, element := range elements {
		if value, ok := element.(string); ok {
			values = append(values, value)
		}
	}

	if len(values) == 0 {
		return nil
	}
	return values
}

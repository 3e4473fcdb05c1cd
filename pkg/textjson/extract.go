// Package textjson recovers JSON objects embedded in free-form model output.
// Model replies are prose with a JSON payload somewhere inside; both helpers
// tolerate surrounding text and fall back instead of failing.
package textjson

import (
	"encoding/json"
	"strings"
)

// ExtractTrailing splits text into a leading prose part and a trailing JSON
// object. The candidate span runs from the last '{' to the end of the text.
// If no brace exists or the span does not parse, the original text is
// returned unchanged with an empty metadata map.
func ExtractTrailing(text string) (string, map[string]interface{}) {
	trimmed := strings.TrimSpace(text)

	lastBrace := strings.LastIndex(trimmed, "{")
	if lastBrace == -1 {
		return trimmed, map[string]interface{}{}
	}

	candidate := trimmed[lastBrace:]
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(candidate), &data); err != nil {
		return trimmed, map[string]interface{}{}
	}

	return strings.TrimSpace(trimmed[:lastBrace]), data
}

// ExtractSpan decodes the span between the first '{' and the last '}' in
// text. Used for classification and summary prompts that ask for JSON-only
// output but may still come back wrapped in prose. Returns false when no
// parsable span exists.
func ExtractSpan(text string) (map[string]interface{}, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, false
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(text[start:end+1]), &data); err != nil {
		return nil, false
	}
	return data, true
}

// Number coerces a decoded JSON value to int, defaulting when absent or of an
// unexpected type.
func Number(data map[string]interface{}, key string, fallback int) int {
	v, ok := data[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	}
	return fallback
}

// String coerces a decoded JSON value to string, defaulting when absent.
func String(data map[string]interface{}, key string, fallback string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return fallback
}

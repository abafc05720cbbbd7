package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrExtractionFailed signals that no structured value could be recovered
// from the model output. Callers must supply their own fallback.
var ErrExtractionFailed = errors.New("no valid JSON could be extracted from model output")

var (
	fenceRegex = regexp.MustCompile("(?s)```(?:[a-zA-Z]+)?(.*?)```")
	braceRegex = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSON recovers a structured value from raw model output. The
// ladder: strip markdown fences, parse the whole text, then parse the
// outermost brace-bounded substring. Each parsed candidate must carry
// every key in requiredKeys at the top level, so structurally valid JSON
// with the wrong field names is rejected rather than silently accepted.
func ExtractJSON(raw string, v any, requiredKeys ...string) error {
	cleaned := stripCodeFences(raw)

	if err := decodeWithKeys(cleaned, v, requiredKeys); err == nil {
		return nil
	}

	if match := braceRegex.FindString(cleaned); match != "" {
		if err := decodeWithKeys(match, v, requiredKeys); err == nil {
			return nil
		}
	}

	return ErrExtractionFailed
}

func stripCodeFences(raw string) string {
	cleaned := fenceRegex.ReplaceAllString(raw, "$1")
	return strings.TrimSpace(cleaned)
}

func decodeWithKeys(data string, v any, requiredKeys []string) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &top); err != nil {
		return err
	}
	for _, key := range requiredKeys {
		if _, ok := top[key]; !ok {
			return fmt.Errorf("missing expected key %q", key)
		}
	}
	return json.Unmarshal([]byte(data), v)
}

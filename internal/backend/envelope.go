package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrBackend is wrapped by errors the backend reports in its response body.
var ErrBackend = errors.New("backend reported an error")

// FieldValue extracts field from a decoded response body. A non-empty "error"
// field takes precedence. A missing or null field yields nil without error so
// the caller can treat it as empty content.
func FieldValue(envelope map[string]any, field string) (any, error) {
	if envelope == nil {
		return nil, nil
	}

	if msg, ok := envelope["error"]; ok && msg != nil {
		text := strings.TrimSpace(fmt.Sprint(msg))
		if text != "" {
			return nil, fmt.Errorf("%w: %s", ErrBackend, text)
		}
	}

	return envelope[field], nil
}

// ExtractField decodes a saved response body and returns field from it.
func ExtractField(body []byte, field string) (any, error) {
	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}

	return FieldValue(envelope, field)
}

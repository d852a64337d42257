// Package jsonutil provides shared helpers for decoding JSON payloads with
// contextual error messages.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// maxBodyBytes caps how much of a response body Decode will read.
const maxBodyBytes = 4 << 20

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// Decode reads a single JSON value of type T from r.
func Decode[T any](r io.Reader, context string) (T, error) {
	var v T
	data, err := io.ReadAll(io.LimitReader(r, maxBodyBytes))
	if err != nil {
		return v, fmt.Errorf("%s: read body: %w", context, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return v, fmt.Errorf("%s: empty body", context)
	}
	err = UnmarshalWithContext(data, &v, context)
	return v, err
}

// DecodeArrayAllowEmpty reads a JSON array from r. A JSON null decodes to
// an empty, non-nil slice.
func DecodeArrayAllowEmpty[T any](r io.Reader, context string) ([]T, error) {
	entries, err := Decode[[]T](r, context)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []T{}
	}
	return entries, nil
}

// ErrorMessage extracts a human-readable message from an error body.
// It understands {"error": "..."} and {"message": "..."}, otherwise the
// trimmed raw body is returned.
func ErrorMessage(data []byte) string {
	var m map[string]any
	if json.Unmarshal(data, &m) == nil {
		for _, key := range []string{"error", "message"} {
			if s := GetString(m, key); s != "" {
				return s
			}
		}
	}
	return strings.TrimSpace(string(data))
}

// GetString safely extracts a string value from a decoded JSON object.
func GetString(m map[string]any, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed wraps any deserialization failure so callers can distinguish
// corrupted stored data from storage I/O errors.
var ErrMalformed = errors.New("malformed collection data")

// Encode serializes the full ordered collection to its stored text form.
// A nil collection encodes the same as an empty one.
func Encode[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode collection: %w", err)
	}
	return string(b), nil
}

// Decode is the inverse of Encode. Absent or blank input yields an empty
// collection. Any record that fails to parse (including a missing or
// unparseable due date) fails the whole decode; the caller decides whether
// to fall back to an empty collection.
func Decode[T any](data string) ([]T, error) {
	if strings.TrimSpace(data) == "" {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

package models

import (
	"bytes"
	"encoding/json"
)

// Nullable keeps the three states of a JSON field: missing, null, or a value.
type Nullable[T any] struct {
	Present bool
	Valid   bool
	Value   T
}

// Some returns a present, non-null value.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Present: true, Valid: true, Value: v}
}

// Null returns a present null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Present: true}
}

// UnmarshalJSON is only invoked when the key exists in the payload.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		n.Valid = false
		n.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Ptr returns nil when the field is missing or null.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// OrDefault is Ptr, except a missing field yields def. An explicit null stays nil.
func (n Nullable[T]) OrDefault(def T) *T {
	if !n.Present {
		return &def
	}
	return n.Ptr()
}

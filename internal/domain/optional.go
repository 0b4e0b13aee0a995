package domain

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state partial-update field. The zero value means the
// field was omitted and the stored value is left unchanged. A set Optional
// with a nil Value clears the column: `{"image": null}` removes the image,
// while omitting the key leaves it alone.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// NewOptional returns a set Optional holding v.
func NewOptional[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// NullOptional returns a set Optional holding null.
func NullOptional[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON records that the key was present, keeping a nil Value for
// an explicit JSON null. It is never called for omitted keys, so the zero
// value survives as "not provided".
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

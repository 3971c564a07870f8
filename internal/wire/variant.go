// Package wire encodes closed sets of payload variants as JSON objects that
// carry their variant name under a discriminator key, and decodes them back
// through an explicit discriminator table.
package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnknownVariantError reports a discriminator value missing from a table.
// An empty Value means the discriminator itself was absent.
type UnknownVariantError struct {
	Key   string
	Value string
}

func (e *UnknownVariantError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("wire: missing %s discriminator", e.Key)
	}
	return fmt.Sprintf("wire: unknown %s %q", e.Key, e.Value)
}

// Table maps discriminator values to the decoder of the matching variant.
type Table[T any] map[string]func(raw []byte) (T, error)

// Variant returns a table entry decoding into V and exposing it as T.
// V must implement T; a mismatch is a programming error reported on decode.
func Variant[T any, V any]() func([]byte) (T, error) {
	return func(raw []byte) (T, error) {
		var zero T
		var v V
		if err := json.Unmarshal(raw, &v); err != nil {
			return zero, err
		}
		out, ok := any(v).(T)
		if !ok {
			return zero, fmt.Errorf("wire: %T is not a %T variant", v, (*T)(nil))
		}
		return out, nil
	}
}

// Tagged encodes v, which must marshal to a JSON object, with key=tag as its
// first member. Callers pass a method-less copy of the variant to avoid
// recursing into their own MarshalJSON.
func Tagged(key, tag string, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(body) < 2 || body[0] != '{' {
		return nil, fmt.Errorf("wire: %s %q must encode as an object", key, tag)
	}

	var buf bytes.Buffer
	buf.Grow(len(key) + len(tag) + len(body) + 8)
	buf.WriteByte('{')
	if err := writeMember(&buf, key, tag); err != nil {
		return nil, err
	}
	if rest := body[1:]; !bytes.Equal(rest, []byte("}")) {
		buf.WriteByte(',')
		buf.Write(rest)
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key, value string) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// Decode picks the variant named by raw[key] from table. Absent or null input
// yields the zero value of T so optional slots stay unset.
func Decode[T any](raw []byte, key string, table Table[T]) (T, error) {
	var zero T
	if isNull(raw) {
		return zero, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return zero, err
	}
	tagRaw, ok := fields[key]
	if !ok {
		return zero, &UnknownVariantError{Key: key}
	}
	var tag string
	if err := json.Unmarshal(tagRaw, &tag); err != nil {
		return zero, fmt.Errorf("wire: %s discriminator: %w", key, err)
	}

	build, ok := table[tag]
	if !ok {
		return zero, &UnknownVariantError{Key: key, Value: tag}
	}
	return build(raw)
}

// DecodeSlice decodes a JSON array of variants. Null input yields nil.
func DecodeSlice[T any](raw []byte, key string, table Table[T]) ([]T, error) {
	if isNull(raw) {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		v, err := Decode(item, key, table)
		if err != nil {
			return nil, fmt.Errorf("wire: item %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func isNull(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

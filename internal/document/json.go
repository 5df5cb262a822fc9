package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// jsonObject is a JSON object that keeps its members in document order.
// New keys are appended at the end.
type jsonObject struct {
	members []jsonMember
}

type jsonMember struct {
	key   string
	value any
}

func (o *jsonObject) get(key string) (any, bool) {
	for _, m := range o.members {
		if m.key == key {
			return m.value, true
		}
	}
	return nil, false
}

// set replaces the value of key in place, or appends the key.
func (o *jsonObject) set(key string, value any) {
	for i := range o.members {
		if o.members[i].key == key {
			o.members[i].value = value
			return
		}
	}
	o.members = append(o.members, jsonMember{key: key, value: value})
}

// MarshalJSON writes the members in order. The result is compact; the
// caller's encoder applies indentation.
func (o *jsonObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, m := range o.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(m.key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := enc.Encode(m.value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// jsonDocument holds a decoded JSON object. Numbers are kept as json.Number
// so they are written back exactly as read.
type jsonDocument struct {
	root    *jsonObject
	spacing int
}

func decodeJSON(data []byte, spacing int) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := decodeJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("parsing JSON: unexpected data after top-level object")
	}
	obj, ok := root.(*jsonObject)
	if !ok {
		return nil, fmt.Errorf("parsing JSON: top-level value is %w", ErrNotMapping)
	}

	return &jsonDocument{root: obj, spacing: spacing}, nil
}

// decodeJSONValue reads the next value from dec. Objects become *jsonObject,
// arrays []any; scalars are returned as the decoder yields them.
func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch tok {
	case json.Delim('{'):
		obj := &jsonObject{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyTok)
			}
			value, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			obj.set(key, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case json.Delim('['):
		arr := []any{}
		for dec.More() {
			value, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	}
	return tok, nil
}

func (d *jsonDocument) Get(path ...string) (string, bool) {
	var cur any = d.root
	for _, key := range path {
		obj, ok := cur.(*jsonObject)
		if !ok {
			return "", false
		}
		if cur, ok = obj.get(key); !ok {
			return "", false
		}
	}
	s, ok := cur.(string)
	return s, ok
}

func (d *jsonDocument) Set(value string, path ...string) error {
	if len(path) == 0 {
		return errors.New("empty path")
	}

	obj := d.root
	for i, key := range path[:len(path)-1] {
		next, ok := obj.get(key)
		if !ok || next == nil {
			child := &jsonObject{}
			obj.set(key, child)
			obj = child
			continue
		}
		child, ok := next.(*jsonObject)
		if !ok {
			return fmt.Errorf("%s is %w", strings.Join(path[:i+1], "."), ErrNotMapping)
		}
		obj = child
	}
	obj.set(path[len(path)-1], value)
	return nil
}

// Encode writes the object with the configured indentation; a spacing of
// zero produces compact output. There is no trailing newline.
func (d *jsonDocument) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if n := clampSpacing(d.spacing); n > 0 {
		enc.SetIndent("", strings.Repeat(" ", n))
	}
	if err := enc.Encode(d.root); err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

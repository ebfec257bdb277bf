package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/pcomb/value"
)

type JSONEncoder struct {
	w      io.Writer
	value  value.Value
	indent string
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w, indent: "  "}
}

// SetIndent sets the indentation per nesting level. An empty indent writes
// compact JSON.
func (e *JSONEncoder) SetIndent(indent string) {
	e.indent = indent
}

func (e *JSONEncoder) Encode(v value.Value) error {
	e.value = v
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := json.Marshal(jsonValue{e.value})
	if err != nil {
		return nil, err
	}
	if e.indent == "" {
		return data, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", e.indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// jsonValue writes objects member by member so source order survives.
type jsonValue struct {
	v value.Value
}

func (j jsonValue) MarshalJSON() ([]byte, error) {
	switch v := j.v.(type) {
	case value.Number:
		return json.Marshal(int64(v))
	case value.String:
		return json.Marshal(string(v))
	case value.Array:
		items := make([]jsonValue, len(v))
		for i, item := range v {
			items[i] = jsonValue{item}
		}
		return json.Marshal(items)
	case value.Object:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, m := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(m.Key)
			if err != nil {
				return nil, err
			}
			val, err := jsonValue{m.Value}.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case nil:
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("format: unsupported value %T", j.v)
	}
}

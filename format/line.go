package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/pcomb/value"
)

// LineEncoder writes one tab-separated line per scalar, empty array and
// empty object: the path from the root, the kind and the value. Paths use
// $ for the root, .key for object members and [i] for array elements.
type LineEncoder struct {
	w     io.Writer
	value value.Value
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(v value.Value) error {
	e.value = v
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	if err := e.writeValue(&sb, "$", e.value); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

func (e *LineEncoder) writeValue(sb *strings.Builder, path string, v value.Value) error {
	switch v := v.(type) {
	case value.Number:
		fmt.Fprintf(sb, "%s\tnumber\t%d\n", path, int64(v))
	case value.String:
		fmt.Fprintf(sb, "%s\tstring\t%s\n", path, strconv.Quote(string(v)))
	case value.Array:
		if len(v) == 0 {
			fmt.Fprintf(sb, "%s\tarray\t[]\n", path)
		}
		for i, item := range v {
			if err := e.writeValue(sb, fmt.Sprintf("%s[%d]", path, i), item); err != nil {
				return err
			}
		}
	case value.Object:
		if len(v) == 0 {
			fmt.Fprintf(sb, "%s\tobject\t{}\n", path)
		}
		for _, m := range v {
			if err := e.writeValue(sb, path+memberPath(m.Key), m.Value); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("format: unsupported value %T", v)
	}
	return nil
}

// memberPath quotes keys that are not plain identifiers.
func memberPath(key string) string {
	plain := key != ""
	for i, r := range key {
		if r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || i > 0 && r >= '0' && r <= '9' {
			continue
		}
		plain = false
		break
	}
	if plain {
		return "." + key
	}
	return "[" + strconv.Quote(key) + "]"
}

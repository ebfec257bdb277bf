// Package format renders parsed values.
package format

import (
	"encoding"

	"github.com/dhamidi/pcomb/value"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(v value.Value) error
}

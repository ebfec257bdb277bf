// Package num provides parsers for decimal integers over text.
//
// Unsigned parsers accept one or more ASCII digits. Signed parsers accept an
// optional leading minus sign followed by one or more digits. A number that
// does not fit the target type is a failure after the digits have been
// consumed.
package num

import (
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/dhamidi/pcomb/parse"
	"github.com/dhamidi/pcomb/stream"
)

// Digit parses one decimal digit and returns its value.
func Digit() parse.Func[stream.Text, int] {
	return parse.SatisfyMap[stream.Text](func(r rune) (int, bool) {
		if r < '0' || r > '9' {
			return 0, false
		}
		return int(r - '0'), true
	})
}

// Digits recognizes one or more decimal digits.
func Digits() parse.Func[stream.Text, stream.Text] {
	return parse.Recognize(parse.SkipMany1(Digit()))
}

// SignedDigits recognizes an optional minus sign followed by digits.
func SignedDigits() parse.Func[stream.Text, stream.Text] {
	sign := parse.Optional(parse.Token[stream.Text]('-'))
	return parse.Recognize(parse.FollowedBy(sign, parse.SkipMany1(Digit())))
}

func unsigned[T constraints.Unsigned](bits int) parse.Func[stream.Text, T] {
	return parse.FromStr(Digits(), func(s string) (T, error) {
		n, err := strconv.ParseUint(s, 10, bits)
		return T(n), err
	})
}

func signed[T constraints.Signed](bits int) parse.Func[stream.Text, T] {
	return parse.FromStr(SignedDigits(), func(s string) (T, error) {
		n, err := strconv.ParseInt(s, 10, bits)
		return T(n), err
	})
}

func Uint8() parse.Func[stream.Text, uint8]   { return unsigned[uint8](8) }
func Uint16() parse.Func[stream.Text, uint16] { return unsigned[uint16](16) }
func Uint32() parse.Func[stream.Text, uint32] { return unsigned[uint32](32) }
func Uint64() parse.Func[stream.Text, uint64] { return unsigned[uint64](64) }
func Uint() parse.Func[stream.Text, uint]     { return unsigned[uint](strconv.IntSize) }

func Int8() parse.Func[stream.Text, int8]   { return signed[int8](8) }
func Int16() parse.Func[stream.Text, int16] { return signed[int16](16) }
func Int32() parse.Func[stream.Text, int32] { return signed[int32](32) }
func Int64() parse.Func[stream.Text, int64] { return signed[int64](64) }
func Int() parse.Func[stream.Text, int]     { return signed[int](strconv.IntSize) }

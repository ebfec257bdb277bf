package stream

import (
	"fmt"
	"unicode/utf8"
)

// Text is a cursor over the runes of a string. Positions are byte offsets
// into the string the lineage started from.
type Text struct {
	src string
	off int
}

// NewText returns a cursor at the start of s.
func NewText(s string) Text {
	return Text{src: s}
}

func (t Text) IsEmpty() bool {
	return t.off >= len(t.src)
}

func (t Text) Position() Pos {
	return Pos(t.off)
}

func (t Text) Uncons() (rune, Text, bool) {
	if t.IsEmpty() {
		return 0, t, false
	}
	r, n := utf8.DecodeRuneInString(t.src[t.off:])
	return r, Text{src: t.src, off: t.off + n}, true
}

// Between returns the span [start, end) of the original string. The result
// shares memory with the receiver and stays in its lineage.
func (t Text) Between(start, end Pos) Text {
	return Text{src: t.src[:end], off: int(start)}
}

// String returns the remaining input.
func (t Text) String() string {
	return t.src[t.off:]
}

// Len returns the number of remaining bytes.
func (t Text) Len() int {
	return len(t.src) - t.off
}

// GoString makes test failures readable.
func (t Text) GoString() string {
	return fmt.Sprintf("stream.Text(%q@%d)", t.String(), t.off)
}

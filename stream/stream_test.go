package stream

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

func TestTextConsumeIf(t *testing.T) {
	c := NewText("1a")

	d, ok := ConsumeIf(&c, digit)
	require.True(t, ok)
	assert.Equal(t, 1, d)
	assert.Equal(t, "a", c.String())

	_, ok = ConsumeIf(&c, digit)
	assert.False(t, ok)
	assert.Equal(t, "a", c.String(), "rejected item must not be consumed")
}

func TestTextConsumeIfEmpty(t *testing.T) {
	c := NewText("")
	_, ok := ConsumeIf(&c, digit)
	assert.False(t, ok)
	assert.True(t, c.IsEmpty())
}

func TestTextMultibyte(t *testing.T) {
	c := NewText("héllo")
	start := c.Position()

	for i := 0; i < 2; i++ {
		_, ok := ConsumeIf(&c, func(r rune) (rune, bool) { return r, unicode.IsLetter(r) })
		require.True(t, ok)
	}

	assert.Equal(t, Pos(3), c.Position(), "positions are byte offsets")
	assert.Equal(t, "hé", c.Between(start, c.Position()).String())
	assert.Equal(t, "llo", c.String())
}

func TestTextSnapshotRestore(t *testing.T) {
	c := NewText("abc")
	saved := c

	_, rest, ok := c.Uncons()
	require.True(t, ok)
	c = rest
	assert.Equal(t, "bc", c.String())

	c = saved
	assert.Equal(t, "abc", c.String())
	assert.Equal(t, Pos(0), c.Position())
}

func TestTextBetweenIsACursor(t *testing.T) {
	c := NewText("abcdef")
	c = Text{src: c.src, off: 1}

	span := c.Between(Pos(1), Pos(4))
	assert.Equal(t, "bcd", span.String())
	assert.Equal(t, 3, span.Len())

	var got []rune
	for !span.IsEmpty() {
		r, rest, _ := span.Uncons()
		got = append(got, r)
		span = rest
	}
	assert.Equal(t, []rune("bcd"), got)
}

func TestSliceConsumeIf(t *testing.T) {
	c := NewSlice([]int{2, 4, 5})
	even := func(n int) (int, bool) { return n, n%2 == 0 }

	var got []int
	for {
		n, ok := ConsumeIf(&c, even)
		if !ok {
			break
		}
		got = append(got, n)
	}

	assert.Equal(t, []int{2, 4}, got)
	assert.Equal(t, []int{5}, c.Items())
	assert.Equal(t, Pos(2), c.Position())
}

func TestSliceBetweenClipsCapacity(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	c := NewSlice(items)

	span := c.Between(Pos(1), Pos(3))
	assert.Equal(t, []string{"b", "c"}, span.Items())

	grown := append(span.Items(), "x")
	assert.Equal(t, []string{"b", "c", "x"}, grown)
	assert.Equal(t, "d", items[3], "appending to a span must not clobber input")
}

func TestSliceEmpty(t *testing.T) {
	c := NewSlice[int](nil)
	assert.True(t, c.IsEmpty())
	_, _, ok := c.Uncons()
	assert.False(t, ok)
}

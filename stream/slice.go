package stream

// Slice is a cursor over the elements of a slice. Positions are indices into
// the slice the lineage started from.
type Slice[T any] struct {
	src []T
	off int
}

// NewSlice returns a cursor at the start of items.
func NewSlice[T any](items []T) Slice[T] {
	return Slice[T]{src: items}
}

func (s Slice[T]) IsEmpty() bool {
	return s.off >= len(s.src)
}

func (s Slice[T]) Position() Pos {
	return Pos(s.off)
}

func (s Slice[T]) Uncons() (T, Slice[T], bool) {
	if s.IsEmpty() {
		var zero T
		return zero, s, false
	}
	return s.src[s.off], Slice[T]{src: s.src, off: s.off + 1}, true
}

// Between returns the elements [start, end) of the original slice without
// copying them. The capacity is clipped so appending to Items of the result
// cannot overwrite input.
func (s Slice[T]) Between(start, end Pos) Slice[T] {
	return Slice[T]{src: s.src[:end:end], off: int(start)}
}

// Items returns the remaining elements.
func (s Slice[T]) Items() []T {
	return s.src[s.off:]
}

// Len returns the number of remaining elements.
func (s Slice[T]) Len() int {
	return len(s.src) - s.off
}

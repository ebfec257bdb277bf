// Package stream provides the cursors parsers consume.
//
// A cursor is a small value describing the input that remains to be parsed.
// Copying a cursor takes a snapshot of the parse position; assigning the copy
// back restores it. There is no undo log: backtracking is a plain assignment.
//
// Positions are only meaningful within one lineage, that is between cursors
// obtained by copying or advancing the same original cursor. Comparing or
// combining positions from unrelated cursors is undefined and is not checked.
package stream

// Pos is an opaque, totally ordered parse position.
type Pos int

// Cursor is the part of the cursor contract combinators need to detect
// consumption.
type Cursor interface {
	// IsEmpty reports whether all input has been consumed.
	IsEmpty() bool
	// Position returns the current position.
	Position() Pos
}

// Ranger is a cursor that can reconstruct the span between two of its
// positions without copying.
type Ranger[C any] interface {
	Cursor
	// Between returns a cursor over exactly the input between start and end.
	// Both positions must come from the receiver's lineage and start must
	// not be after end.
	Between(start, end Pos) C
}

// Stream is a cursor over items of type T.
type Stream[C any, T any] interface {
	Ranger[C]
	// Uncons splits off the next item. It returns false when the cursor is
	// empty; the receiver is never modified.
	Uncons() (T, C, bool)
}

// ConsumeIf inspects the next item and consumes it only if decide accepts
// it. The cursor is left untouched otherwise.
func ConsumeIf[C Stream[C, T], T, O any](c *C, decide func(T) (O, bool)) (O, bool) {
	var zero O
	item, rest, ok := (*c).Uncons()
	if !ok {
		return zero, false
	}
	out, ok := decide(item)
	if !ok {
		return zero, false
	}
	*c = rest
	return out, true
}

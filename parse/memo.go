package parse

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dhamidi/pcomb/stream"
)

const defaultMemoSize = 4096

type memoEntry[C, O any] struct {
	out  O
	ok   bool
	next C
}

// Memoized caches the results of a parser by start position (packrat
// parsing). Positions are only comparable within one cursor lineage, so a
// Memoized must be Reset before it is used on different input. The cache
// makes it a stateful parser.
type Memoized[C stream.Cursor, O any] struct {
	p     Parser[C, O]
	cache *lru.Cache[stream.Pos, memoEntry[C, O]]
}

// Memo returns a memoizing wrapper around p keeping at most size results.
// A size of zero or less selects a default.
func Memo[C stream.Cursor, O any](p Parser[C, O], size int) *Memoized[C, O] {
	if size <= 0 {
		size = defaultMemoSize
	}
	cache, err := lru.New[stream.Pos, memoEntry[C, O]](size)
	if err != nil {
		cache, _ = lru.New[stream.Pos, memoEntry[C, O]](defaultMemoSize)
	}
	return &Memoized[C, O]{p: p, cache: cache}
}

func (m *Memoized[C, O]) ParseMut(c *C) (O, bool) {
	start := (*c).Position()
	if e, ok := m.cache.Get(start); ok {
		*c = e.next
		return e.out, e.ok
	}
	out, ok := m.p.Parse(c)
	m.cache.Add(start, memoEntry[C, O]{out: out, ok: ok, next: *c})
	return out, ok
}

func (m *Memoized[C, O]) ParseOnce(c *C) (O, bool) {
	return m.ParseMut(c)
}

// Reset forgets all cached results.
func (m *Memoized[C, O]) Reset() {
	m.cache.Purge()
}

// Len returns the number of cached results.
func (m *Memoized[C, O]) Len() int {
	return m.cache.Len()
}

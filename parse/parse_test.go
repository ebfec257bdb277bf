package parse

import (
	"strconv"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/pcomb/stream"
)

func text(s string) *stream.Text {
	c := stream.NewText(s)
	return &c
}

func letter() Func[stream.Text, rune] {
	return Satisfy[stream.Text](unicode.IsLetter)
}

func char(r rune) Func[stream.Text, rune] {
	return Token[stream.Text](r)
}

// twoAs consumes input before it can fail, unlike String.
func twoAs() Func[stream.Text, Pair[rune, rune]] {
	return FollowedBy(char('a'), char('a'))
}

func TestSatisfyMap(t *testing.T) {
	digit := SatisfyMap[stream.Text](func(r rune) (int, bool) {
		return int(r - '0'), r >= '0' && r <= '9'
	})

	tests := []struct {
		input  string
		want   int
		ok     bool
		remain string
	}{
		{"", 0, false, ""},
		{"a1", 0, false, "a1"},
		{"1a", 1, true, "a"},
	}
	for _, tt := range tests {
		c := text(tt.input)
		got, ok := digit.Parse(c)
		assert.Equal(t, tt.ok, ok, tt.input)
		if ok {
			assert.Equal(t, tt.want, got, tt.input)
		}
		assert.Equal(t, tt.remain, c.String(), tt.input)
	}
}

func TestStringIsAtomic(t *testing.T) {
	c := text("abcde")
	span, ok := Recognize(String("abc")).Parse(c)
	require.True(t, ok)
	assert.Equal(t, "abc", span.String())
	assert.Equal(t, "de", c.String())

	c = text("abde")
	_, ok = String("abc").Parse(c)
	assert.False(t, ok)
	assert.Equal(t, "abde", c.String(), "a partial literal match consumes nothing")
}

func TestTokensOverSlice(t *testing.T) {
	c := stream.NewSlice([]int{1, 2, 3, 4})
	_, ok := Tokens[stream.Slice[int]]([]int{1, 2}).Parse(&c)
	require.True(t, ok)
	assert.Equal(t, []int{3, 4}, c.Items())

	_, ok = Tokens[stream.Slice[int]]([]int{3, 5}).Parse(&c)
	assert.False(t, ok)
	assert.Equal(t, []int{3, 4}, c.Items())
}

func TestAnyEOFValue(t *testing.T) {
	c := text("x")
	_, ok := EOF[stream.Text]().Parse(c)
	assert.False(t, ok)

	r, ok := Any[stream.Text, rune]().Parse(c)
	require.True(t, ok)
	assert.Equal(t, 'x', r)

	_, ok = Any[stream.Text, rune]().Parse(c)
	assert.False(t, ok)

	_, ok = EOF[stream.Text]().Parse(c)
	assert.True(t, ok)

	v, ok := Value[stream.Text](7).Parse(c)
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestMapAndThen(t *testing.T) {
	upper := Map(letter(), unicode.ToUpper)
	c := text("ab")
	r, ok := upper.Parse(c)
	require.True(t, ok)
	assert.Equal(t, 'A', r)

	onlyA := AndThen(letter(), func(r rune) (rune, bool) { return r, r == 'a' })
	_, ok = onlyA.Parse(c)
	assert.False(t, ok)
	assert.Equal(t, "", c.String(), "a rejected output keeps its consumption")
}

func TestFlatMap(t *testing.T) {
	// A digit n followed by exactly n letters.
	counted := FlatMap(SatisfyMap[stream.Text](func(r rune) (int, bool) {
		return int(r - '0'), r >= '0' && r <= '9'
	}), func(n int) ParserOnce[stream.Text, []rune] {
		letters := make([]Parser[stream.Text, rune], n)
		for i := range letters {
			letters[i] = letter()
		}
		return Seq(letters...)
	})

	c := text("3abcd")
	got, ok := counted.Parse(c)
	require.True(t, ok)
	assert.Equal(t, []rune("abc"), got)
	assert.Equal(t, "d", c.String())

	c = text("3ab1")
	_, ok = counted.Parse(c)
	assert.False(t, ok)
	assert.Equal(t, "1", c.String(), "cursor is left where the built parser stopped")
}

func TestOrDoesNotBacktrackPastConsumedInput(t *testing.T) {
	c := text("abc")
	_, ok := Or(twoAs(), FollowedBy(char('a'), char('b'))).Parse(c)
	assert.False(t, ok)
	assert.Equal(t, "bc", c.String())
}

func TestOrTriesAlternativeAfterNonConsumingFailure(t *testing.T) {
	c := text("abc")
	got, ok := Recognize(Or(String("aa"), String("ab"))).Parse(c)
	require.True(t, ok)
	assert.Equal(t, "ab", got.String())
	assert.Equal(t, "c", c.String())

	c = text("xyz")
	_, ok = Or(String("aa"), String("ab")).Parse(c)
	assert.False(t, ok)
	assert.Equal(t, "xyz", c.String())
}

func TestAttemptRestoresCursor(t *testing.T) {
	ab := FollowedBy(char('a'), char('b'))
	p := Recognize(Choice(
		Map(Attempt(twoAs()), func(Pair[rune, rune]) Unit { return Unit{} }),
		Map(ab, func(Pair[rune, rune]) Unit { return Unit{} }),
	))

	c := text("abc")
	got, ok := p.Parse(c)
	require.True(t, ok)
	assert.Equal(t, "ab", got.String())
	assert.Equal(t, "c", c.String())

	c = text("ax")
	_, ok = Attempt(twoAs()).Parse(c)
	assert.False(t, ok)
	assert.Equal(t, "ax", c.String())
}

func TestOptional(t *testing.T) {
	c := text("b")
	got, ok := Optional(char('a')).Parse(c)
	require.True(t, ok)
	assert.False(t, got.Ok)
	assert.Equal(t, "b", c.String())

	got, ok = Optional(char('b')).Parse(c)
	require.True(t, ok)
	assert.True(t, got.Ok)
	assert.Equal(t, 'b', got.Value)

	c = text("ax")
	_, ok = Optional(twoAs()).Parse(c)
	assert.False(t, ok, "a failure after consuming propagates")
	assert.Equal(t, "x", c.String())
}

func TestRecognizeRoundTrip(t *testing.T) {
	word := SkipMany1(letter())
	c := text("hello world")

	span, ok := Recognize(word).Parse(c)
	require.True(t, ok)
	assert.Equal(t, "hello", span.String())

	again := span
	_, ok = word.Parse(&again)
	require.True(t, ok)
	assert.True(t, again.IsEmpty(), "re-parsing the span consumes all of it")

	before := *c
	_, ok = Recognize(word).Parse(c)
	assert.False(t, ok)
	assert.Equal(t, before, *c)
}

func TestRecognizeOverSlice(t *testing.T) {
	c := stream.NewSlice([]int{2, 4, 6, 7, 8})
	even := Satisfy[stream.Slice[int]](func(n int) bool { return n%2 == 0 })

	span, ok := Recognize(SkipMany(even)).Parse(&c)
	require.True(t, ok)
	assert.Equal(t, []int{2, 4, 6}, span.Items())
	assert.Equal(t, []int{7, 8}, c.Items())
}

func TestFromStr(t *testing.T) {
	digits := Recognize(SkipMany1(SatisfyMap[stream.Text](func(r rune) (rune, bool) {
		return r, unicode.IsDigit(r)
	})))
	byteValue := FromStr(digits, func(s string) (uint8, error) {
		n, err := strconv.ParseUint(s, 10, 8)
		return uint8(n), err
	})

	c := text("200x")
	n, ok := byteValue.Parse(c)
	require.True(t, ok)
	assert.Equal(t, uint8(200), n)

	c = text("300x")
	_, ok = byteValue.Parse(c)
	assert.False(t, ok)
	assert.Equal(t, "x", c.String(), "conversion failure keeps the consumption")
}

func TestBetween(t *testing.T) {
	p := Between(letter(), char('('), char(')'))
	c := text("(a)b")
	got, ok := p.Parse(c)
	require.True(t, ok)
	assert.Equal(t, 'a', got)
	assert.Equal(t, "b", c.String())

	c = text("(a]")
	_, ok = p.Parse(c)
	assert.False(t, ok)
	assert.Equal(t, "]", c.String())
}

func TestChainIsNotAtomic(t *testing.T) {
	digit := SatisfyMap[stream.Text](func(r rune) (int, bool) {
		return int(r - '0'), r >= '0' && r <= '9'
	})
	seq := Chain3(letter(), digit, letter())

	c := text("a1b!")
	got, ok := seq.Parse(c)
	require.True(t, ok)
	assert.Equal(t, Tuple3[rune, int, rune]{'a', 1, 'b'}, got)
	assert.Equal(t, "!", c.String())

	c = text("ax9")
	_, ok = seq.Parse(c)
	assert.False(t, ok)
	assert.Equal(t, "x9", c.String(), "bare sequencing keeps partial consumption")

	c = text("ax9")
	_, ok = Attempt(seq).Parse(c)
	assert.False(t, ok)
	assert.Equal(t, "ax9", c.String())
}

func TestChain4And5(t *testing.T) {
	c := text("abcdef")
	four, ok := Chain4(letter(), letter(), letter(), letter()).Parse(c)
	require.True(t, ok)
	assert.Equal(t, Tuple4[rune, rune, rune, rune]{'a', 'b', 'c', 'd'}, four)

	c = text("vwxyz")
	five, ok := Chain5(letter(), letter(), letter(), letter(), letter()).Parse(c)
	require.True(t, ok)
	assert.Equal(t, 'z', five.Fifth)
	assert.True(t, c.IsEmpty())
}

func TestLeftRight(t *testing.T) {
	c := text("a;")
	got, ok := Left(letter(), char(';')).Parse(c)
	require.True(t, ok)
	assert.Equal(t, 'a', got)

	c = text(";a")
	got, ok = Right(char(';'), letter()).Parse(c)
	require.True(t, ok)
	assert.Equal(t, 'a', got)
}

func TestParsePartialAndToEnd(t *testing.T) {
	c := stream.NewText("ab")
	r, ok := ParsePartial(letter(), c)
	require.True(t, ok)
	assert.Equal(t, 'a', r)
	assert.Equal(t, "ab", c.String(), "the caller's cursor is a copy")

	_, ok = ParseToEnd(letter(), c)
	assert.False(t, ok)

	got, ok := ParseToEnd(CollectMany(letter()), c)
	require.True(t, ok)
	assert.Equal(t, []rune("ab"), got)
}

func TestLazyRecursion(t *testing.T) {
	// nested = '(' nested ')' | ε, counting the depth.
	var nested func() Parser[stream.Text, int]
	nested = func() Parser[stream.Text, int] {
		inner := Map(Between(Lazy(nested), char('('), char(')')), func(n int) int { return n + 1 })
		return Or(inner, Value[stream.Text](0))
	}

	depth, ok := ParseToEnd(Lazy(nested), stream.NewText("((()))"))
	require.True(t, ok)
	assert.Equal(t, 3, depth)

	_, ok = ParseToEnd(Lazy(nested), stream.NewText("(()"))
	assert.False(t, ok)
}

func TestTraceIsTransparent(t *testing.T) {
	c := text("ab")
	got, ok := Trace("letter", letter()).Parse(c)
	require.True(t, ok)
	assert.Equal(t, 'a', got)

	_, ok = Trace("digit", char('1')).Parse(c)
	assert.False(t, ok)
	assert.Equal(t, "b", c.String())
}

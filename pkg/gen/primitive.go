package gen

import (
	"fmt"
	mathrand "math/rand/v2"
	"strings"
)

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	allLetters   = lowerLetters + "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Ints returns a generator of uniformly distributed ints in [lo, hi].
func Ints(r *mathrand.Rand, lo, hi int) (Generator[int], error) {
	if lo > hi {
		return nil, fmt.Errorf("ints: lo %d greater than hi %d: %w", lo, hi, ErrInvalidArgument)
	}
	// The span is computed in uint64 so ranges wider than MaxInt still draw
	// uniformly; zero means the full 64-bit range.
	span := uint64(hi) - uint64(lo) + 1
	return Func[int](func() (int, error) {
		return lo + int(uint64N(r, span)), nil
	}), nil
}

// Chars returns a generator of uniformly distributed runes in [lo, hi].
func Chars(r *mathrand.Rand, lo, hi rune) (Generator[rune], error) {
	if lo > hi {
		return nil, fmt.Errorf("chars: lo %q greater than hi %q: %w", lo, hi, ErrInvalidArgument)
	}
	span := uint64(int64(hi)-int64(lo)) + 1
	return Func[rune](func() (rune, error) {
		return lo + rune(uint64N(r, span)), nil
	}), nil
}

// Letters returns a generator of ASCII letters, upper and lower case.
func Letters(r *mathrand.Rand) Generator[rune] {
	return alphabet(r, allLetters)
}

// LowerLetters returns a generator of the ASCII letters a through z.
func LowerLetters(r *mathrand.Rand) Generator[rune] {
	return alphabet(r, lowerLetters)
}

func alphabet(r *mathrand.Rand, set string) Generator[rune] {
	return Func[rune](func() (rune, error) {
		return rune(set[intN(r, len(set))]), nil
	})
}

// Strings returns a generator of strings whose length is drawn from length
// and whose characters are drawn from chars. A negative length fails the draw.
func Strings(length Generator[int], chars Generator[rune]) (Generator[string], error) {
	if length == nil || chars == nil {
		return nil, fmt.Errorf("strings: length and character generators are required: %w", ErrInvalidArgument)
	}
	return Func[string](func() (string, error) {
		n, err := length.Next()
		if err != nil {
			return "", err
		}
		if n < 0 {
			return "", fmt.Errorf("strings: negative length %d: %w", n, ErrInvalidArgument)
		}
		var b strings.Builder
		b.Grow(n)
		for range n {
			c, err := chars.Next()
			if err != nil {
				return "", err
			}
			b.WriteRune(c)
		}
		return b.String(), nil
	}), nil
}

// LetterStrings returns a generator of letter strings with a length in
// [minLen, maxLen].
func LetterStrings(r *mathrand.Rand, minLen, maxLen int) (Generator[string], error) {
	return boundedStrings(r, minLen, maxLen, Letters(r))
}

// LowerStrings returns a generator of lowercase letter strings with a length
// in [minLen, maxLen].
func LowerStrings(r *mathrand.Rand, minLen, maxLen int) (Generator[string], error) {
	return boundedStrings(r, minLen, maxLen, LowerLetters(r))
}

func boundedStrings(r *mathrand.Rand, minLen, maxLen int, chars Generator[rune]) (Generator[string], error) {
	if minLen < 0 {
		return nil, fmt.Errorf("strings: negative minimum length %d: %w", minLen, ErrInvalidArgument)
	}
	length, err := Ints(r, minLen, maxLen)
	if err != nil {
		return nil, err
	}
	return Strings(length, chars)
}

package alphabet

import "fmt"

// New builds an Alphabet from symbols in the given order.
//
// Validation (in order):
//  1. every symbol appears once (ErrDuplicateSymbol, wrapped with symbol and index);
//  2. at least MinSize symbols (ErrTooFewSymbols).
//
// Complexity: O(K) time and space.
func New(symbols ...Symbol) (Alphabet, error) {
	index := make(map[Symbol]int, len(symbols))
	for i, s := range symbols {
		if prev, dup := index[s]; dup {
			return Alphabet{}, fmt.Errorf("%w: %q at %d (first at %d)", ErrDuplicateSymbol, s.String(), i, prev)
		}
		index[s] = i
	}
	if len(symbols) < MinSize {
		return Alphabet{}, fmt.Errorf("%w: got %d", ErrTooFewSymbols, len(symbols))
	}

	out := make([]Symbol, len(symbols))
	copy(out, symbols)

	return Alphabet{symbols: out, index: index}, nil
}

// FromString is New over the runes of s.
func FromString(s string) (Alphabet, error) {
	symbols := make([]Symbol, 0, len(s))
	for _, r := range s {
		symbols = append(symbols, Symbol(r))
	}

	return New(symbols...)
}

// Parse turns a character pool into an Alphabet.
//
// Unlike FromString, repeated characters are dropped (first occurrence wins),
// which matches how pools are usually written by hand ("asdfasdf" is "asdf").
// Every character must have a keysym (ErrUnknownSymbol), and at least MinSize
// distinct characters must remain (ErrTooFewSymbols).
//
// Complexity: O(len(pool)) time and space.
func Parse(pool string) (Alphabet, error) {
	seen := make(map[Symbol]struct{}, len(pool))
	symbols := make([]Symbol, 0, len(pool))
	for _, r := range pool {
		s := Symbol(r)
		if _, ok := Keysym(s); !ok {
			return Alphabet{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, s.String())
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		symbols = append(symbols, s)
	}

	return New(symbols...)
}

// MustParse is Parse that panics on error. Intended for package-level presets and tests.
func MustParse(pool string) Alphabet {
	a, err := Parse(pool)
	if err != nil {
		panic(err)
	}

	return a
}

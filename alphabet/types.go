// SPDX-License-Identifier: MIT
// Package: keypick/alphabet
//
// types.go — Symbol, Alphabet and sentinel errors.

package alphabet

import (
	"errors"
	"strings"
)

// MinSize is the smallest usable alphabet: one symbol cannot tell two items apart.
const MinSize = 2

// Sentinel errors for alphabet construction.
var (
	// ErrTooFewSymbols indicates that fewer than MinSize distinct symbols were supplied.
	ErrTooFewSymbols = errors.New("alphabet: at least two symbols are required")

	// ErrDuplicateSymbol indicates that a strict constructor saw the same symbol twice.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")

	// ErrUnknownSymbol indicates a pool character that has no keysym mapping.
	ErrUnknownSymbol = errors.New("alphabet: unknown symbol")
)

// Symbol is a single selectable key.
type Symbol rune

// String returns the symbol as a one-character string.
func (s Symbol) String() string {
	return string(rune(s))
}

// Alphabet is an immutable ordered set of distinct symbols.
//
// The zero value is an empty alphabet; it is valid to inspect but every
// consumer in this module rejects it because Len() < MinSize.
type Alphabet struct {
	symbols []Symbol
	index   map[Symbol]int
}

// Len returns the number of symbols (K).
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// At returns the i-th symbol. It panics if i is out of range, like a slice index.
func (a Alphabet) At(i int) Symbol {
	return a.symbols[i]
}

// Index returns the position of s in the alphabet.
func (a Alphabet) Index(s Symbol) (int, bool) {
	i, ok := a.index[s]

	return i, ok
}

// Contains reports whether s belongs to the alphabet.
func (a Alphabet) Contains(s Symbol) bool {
	_, ok := a.index[s]

	return ok
}

// Symbols returns a copy of the symbols in order.
func (a Alphabet) Symbols() []Symbol {
	out := make([]Symbol, len(a.symbols))
	copy(out, a.symbols)

	return out
}

// String returns the symbols concatenated in order, e.g. "asdf".
func (a Alphabet) String() string {
	var sb strings.Builder
	sb.Grow(len(a.symbols))
	for _, s := range a.symbols {
		sb.WriteRune(rune(s))
	}

	return sb.String()
}

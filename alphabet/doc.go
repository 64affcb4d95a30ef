// Package alphabet defines the ordered symbol sets used to spell key sequences.
//
// 🚀 What is an Alphabet?
//
//	An Alphabet is an ordered, duplicate-free set of K ≥ 2 symbols. Its order
//	is significant: the label-tree builder hands out symbols to groups in
//	alphabet order, so "asdf" and "fdsa" label the same items differently.
//
// ✨ Key features:
//   - strict constructors (New, FromString) that reject duplicates
//   - a character-pool parser (Parse) that drops duplicates and checks every
//     character against the keysym table
//   - keysym <-> symbol lookup for the characters 0-9 and a-z
//   - presets: HomeRow, Digits, Lowercase
//
// ⚙️ Usage:
//
//	a, err := alphabet.Parse("asdfjkl")
//	if err != nil {
//	  // ErrUnknownSymbol or ErrTooFewSymbols
//	}
//	i, ok := a.Index('d') // 2, true
//
// Errors (sentinel):
//
//   - ErrTooFewSymbols   fewer than two distinct symbols.
//   - ErrDuplicateSymbol a symbol repeats (strict constructors only).
//   - ErrUnknownSymbol   a pool character has no keysym.
package alphabet

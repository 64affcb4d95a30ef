// Package keypick labels a set of items with short key sequences and lets a
// user pick one by typing, narrowing the choice one keystroke at a time.
//
// 🚀 What is keypick?
//
//	The engine behind a keyboard-driven window chooser: every candidate gets
//	an overlay with a few letters, the user types them, and the candidate is
//	selected as soon as the typed prefix is unambiguous.
//
// ✨ Why keypick?
//
//   - Shortest labels – a balanced K-ary split gives every item at most
//     ⌈log_K N⌉ keys, with the leftover items placed on the first symbols
//   - Auto-collapse – a level with a single choice never costs a keystroke
//   - Exact release – every discarded node is handed back once, children first,
//     so overlays never leak
//   - Pure Go generics – items are any T; no X11 or cgo in the core
//
// Under the hood:
//
//	alphabet/  — ordered symbol sets, presets and the keysym table
//	labeltree/ — arena label tree, balanced builder, walker and validators
//	selection/ — the incremental selection state machine
//	config/    — YAML/TOML configuration and zap logger construction
//	examples/  — a simulated multi-screen window chooser
//
// Quick ASCII example (N=4 windows, alphabet "abc"):
//
//	a ─┬─ a → editor
//	   └─ b → browser
//	b ───── terminal
//	c ───── mail
//
//	"b" selects terminal in one key; "a" shows aa/ab, then "b" selects browser.
//
//	go get github.com/katalvlaran/keypick
package keypick

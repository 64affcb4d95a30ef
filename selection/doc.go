// Package selection drives incremental selection over a label tree: one
// keystroke at a time, narrowing the live tree until exactly one item remains
// or the typed sequence proves invalid.
//
// State machine:
//
//	Pending ──Collapse──► Active ──Feed──► Active
//	   │                    │ │
//	   │                    │ └──Feed(unknown)/Abandon──► NoMatch
//	   │                    └────Feed──────────────────► Selected
//	   └──Collapse (0 or 1 reachable items)──► NoMatch / Selected
//
// Auto-collapse:
//
//	After Collapse and after every successful Feed, any level that offers a
//	single choice is entered without a keystroke, through chains of singleton
//	branches of any length. Reaching a leaf this way selects it immediately.
//	The engine therefore never asks for a key that cannot disambiguate.
//
// Resource discipline:
//
//	Nodes may own external resources (an overlay window, a rendered label).
//	Every node removed from the live tree is passed to Collaborator.OnRelease
//	exactly once, children before parents. Nodes on the winning path are never
//	released: they are handed back in Outcome.Path. After NoMatch or Abandon
//	every node has been released.
//
// Errors:
//
//	Unmatched keys are not errors; they produce the NoMatch outcome. Errors
//	signal programming faults only:
//
//	  – ErrNilTree     New received a nil tree.
//	  – ErrNotStarted  Feed before Collapse.
//	  – ErrTerminal    Feed after Selected or NoMatch.
//	  – ErrInvariant   the tree failed validation, or a node was released twice.
//
//	An ErrInvariant from Feed, Collapse or Abandon leaves the engine in NoMatch
//	without an OnNoMatch call; nodes not yet released at that point stay with
//	the embedding.
//
// Concurrency:
//
//	An Engine is single-threaded and performs no I/O. The embedding calls Feed
//	for each keystroke, waits for it to return, then renders or exits.
//	Cancellation is Abandon.
package selection

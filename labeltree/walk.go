package labeltree

import (
	"fmt"
)

// WalkOption configures Walk.
type WalkOption func(*WalkOptions)

// WalkOptions holds hooks and limits for Walk.
type WalkOptions struct {
	// OnVisit, if non-nil, is invoked when a node is first reached (pre-order).
	// Returning an error aborts the walk.
	OnVisit func(id NodeID, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a node have been
	// walked (post-order). Returning an error aborts the walk.
	OnExit func(id NodeID, depth int) error

	// MaxDepth, if positive, stops descending below that depth. Start nodes are
	// at depth 1. Default is 0 (no limit).
	MaxDepth int
}

// DefaultWalkOptions returns options with no hooks and no depth limit.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{MaxDepth: 0}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(id NodeID, depth int) error) WalkOption {
	return func(o *WalkOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(id NodeID, depth int) error) WalkOption {
	return func(o *WalkOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits the walk to nodes at depth ≤ limit. Panics if limit < 0.
func WithMaxDepth(limit int) WalkOption {
	if limit < 0 {
		panic("labeltree: WithMaxDepth(limit<0)")
	}
	return func(o *WalkOptions) {
		o.MaxDepth = limit
	}
}

// WalkResult captures the outcome of a walk.
type WalkResult struct {
	// Order lists nodes in the sequence they finished (post-order).
	Order []NodeID

	// Depth maps each visited node to its depth, start nodes being at depth 1.
	Depth map[NodeID]int

	// Parent maps each visited non-start node to the branch it was reached from.
	Parent map[NodeID]NodeID
}

// walker carries state during a single Walk.
type walker[T any] struct {
	tree *Tree[T]
	opts WalkOptions
	res  *WalkResult
}

// Walk performs a depth-first traversal from each start node in order.
// Starts are typically Tree.RootIDs() or the children of a branch.
//
// Errors:
//   - ErrNodeNotFound if a start ID is outside the arena.
//   - any hook error, wrapped with the node ID; Order is cleared on abort.
//
// Complexity: O(nodes under starts).
func Walk[T any](t *Tree[T], starts []NodeID, opts ...WalkOption) (*WalkResult, error) {
	wopts := DefaultWalkOptions()
	for _, fn := range opts {
		fn(&wopts)
	}

	w := &walker[T]{
		tree: t,
		opts: wopts,
		res: &WalkResult{
			Order:  make([]NodeID, 0, len(starts)),
			Depth:  make(map[NodeID]int, len(starts)),
			Parent: make(map[NodeID]NodeID, len(starts)),
		},
	}

	for _, id := range starts {
		if !t.valid(id) {
			return nil, fmt.Errorf("%w: start %d", ErrNodeNotFound, id)
		}
		if err := w.traverse(id, 1); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse visits id at depth, then its children, then finishes id.
func (w *walker[T]) traverse(id NodeID, depth int) error {
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			w.res.Order = nil

			return fmt.Errorf("labeltree: OnVisit hook for node %d: %w", id, err)
		}
	}

	if w.opts.MaxDepth == 0 || depth < w.opts.MaxDepth {
		for _, e := range w.tree.nodes[id].Children {
			w.res.Parent[e.Node] = id
			if err := w.traverse(e.Node, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id, depth); err != nil {
			w.res.Order = nil

			return fmt.Errorf("labeltree: OnExit hook for node %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}

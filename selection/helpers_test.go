package selection_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypick/alphabet"
	"github.com/katalvlaran/keypick/labeltree"
	"github.com/katalvlaran/keypick/selection"
)

// recorder is a Collaborator that remembers every notification.
type recorder[T any] struct {
	renders  [][]selection.Label[T]
	released []labeltree.NodeID
	kinds    map[labeltree.NodeID]labeltree.Kind
	selected []T
	noMatch  int
}

func newRecorder[T any]() *recorder[T] {
	return &recorder[T]{kinds: make(map[labeltree.NodeID]labeltree.Kind)}
}

func (r *recorder[T]) OnRender(labels []selection.Label[T]) {
	r.renders = append(r.renders, labels)
}

func (r *recorder[T]) OnRelease(id labeltree.NodeID, n labeltree.Node[T]) {
	r.released = append(r.released, id)
	r.kinds[id] = n.Kind
}

func (r *recorder[T]) OnSelected(item T) {
	r.selected = append(r.selected, item)
}

func (r *recorder[T]) OnNoMatch() {
	r.noMatch++
}

// releasedItems maps released leaf IDs back to their items.
func (r *recorder[T]) releasedItems(tree *labeltree.Tree[T]) []T {
	var out []T
	for _, id := range r.released {
		if n, ok := tree.Node(id); ok && n.IsLeaf() {
			out = append(out, n.Item)
		}
	}

	return out
}

func build[T any](t *testing.T, items []T, pool string) *labeltree.Tree[T] {
	t.Helper()
	tree, err := labeltree.Build(items, alphabet.MustParse(pool))
	require.NoError(t, err)

	return tree
}

func start[T any](t *testing.T, tree *labeltree.Tree[T], opts ...selection.Option) (*selection.Engine[T], *recorder[T], selection.Outcome[T]) {
	t.Helper()
	rec := newRecorder[T]()
	eng, err := selection.New[T](tree, rec, opts...)
	require.NoError(t, err)
	out, err := eng.Collapse()
	require.NoError(t, err)

	return eng, rec, out
}

// feedKeys feeds every rune of keys and returns the last outcome.
func feedKeys[T any](t *testing.T, eng *selection.Engine[T], keys string) selection.Outcome[T] {
	t.Helper()
	var out selection.Outcome[T]
	var err error
	for _, r := range keys {
		out, err = eng.Feed(alphabet.Symbol(r))
		require.NoError(t, err)
	}

	return out
}

// assertReleaseDiscipline checks that every node is either on the winning
// path or released exactly once, never both.
func assertReleaseDiscipline[T any](t *testing.T, tree *labeltree.Tree[T], rec *recorder[T], path []labeltree.NodeID) {
	t.Helper()
	count := make(map[labeltree.NodeID]int, tree.Len())
	for _, id := range rec.released {
		count[id]++
	}
	onPath := make(map[labeltree.NodeID]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}
	for i := 0; i < tree.Len(); i++ {
		id := labeltree.NodeID(i)
		if onPath[id] {
			require.Zero(t, count[id], "winning-path node %d was released", id)
			continue
		}
		require.Equal(t, 1, count[id], "node %d release count", id)
	}
}

package labeltree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypick/alphabet"
	"github.com/katalvlaran/keypick/labeltree"
)

func newTree(t *testing.T, pool string) *labeltree.Tree[string] {
	t.Helper()
	tree, err := labeltree.New[string](alphabet.MustParse(pool))
	require.NoError(t, err)

	return tree
}

func TestNew_AlphabetTooSmall(t *testing.T) {
	_, err := labeltree.New[string](alphabet.Alphabet{})
	assert.ErrorIs(t, err, labeltree.ErrAlphabetTooSmall)
}

// TestManual_SingleChain builds {a:{a:X}}, the shape Build never produces
// but an embedding may.
func TestManual_SingleChain(t *testing.T) {
	tree := newTree(t, "ab")
	x := tree.AddLeaf("X")
	inner, err := tree.AddBranch(labeltree.Entry{Symbol: 'a', Node: x})
	require.NoError(t, err)
	require.NoError(t, tree.SetRoot(labeltree.Entry{Symbol: 'a', Node: inner}))

	assert.Equal(t, "{a:{a:X}}", tree.String())
	assert.NoError(t, labeltree.Validate(tree))
	assert.Equal(t, inner, tree.Parent(x))
	assert.Equal(t, labeltree.NoNode, tree.Parent(inner))
	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, []labeltree.NodeID{inner}, tree.RootIDs())
}

func TestAddBranch_Errors(t *testing.T) {
	tree := newTree(t, "abc")
	a := tree.AddLeaf("A")
	b := tree.AddLeaf("B")

	_, err := tree.AddBranch()
	assert.ErrorIs(t, err, labeltree.ErrEmptyBranch)

	_, err = tree.AddBranch(labeltree.Entry{Symbol: 'a', Node: 42})
	assert.ErrorIs(t, err, labeltree.ErrNodeNotFound)

	_, err = tree.AddBranch(labeltree.Entry{Symbol: 'z', Node: a})
	assert.ErrorIs(t, err, labeltree.ErrUnknownSymbol)

	_, err = tree.AddBranch(labeltree.Entry{Symbol: 'b', Node: a}, labeltree.Entry{Symbol: 'a', Node: b})
	assert.ErrorIs(t, err, labeltree.ErrSymbolOrder)

	_, err = tree.AddBranch(labeltree.Entry{Symbol: 'a', Node: a}, labeltree.Entry{Symbol: 'a', Node: b})
	assert.ErrorIs(t, err, labeltree.ErrSymbolOrder)

	_, err = tree.AddBranch(labeltree.Entry{Symbol: 'a', Node: a}, labeltree.Entry{Symbol: 'b', Node: a})
	assert.ErrorIs(t, err, labeltree.ErrNodeAttached)

	// failed calls leave the arena untouched
	assert.Equal(t, 2, tree.Len())

	_, err = tree.AddBranch(labeltree.Entry{Symbol: 'a', Node: a}, labeltree.Entry{Symbol: 'c', Node: b})
	require.NoError(t, err)

	_, err = tree.AddBranch(labeltree.Entry{Symbol: 'a', Node: a})
	assert.ErrorIs(t, err, labeltree.ErrNodeAttached, "a node has one parent")
}

func TestSetRoot_ReplaceAndRestore(t *testing.T) {
	tree := newTree(t, "ab")
	a := tree.AddLeaf("A")
	b := tree.AddLeaf("B")

	require.NoError(t, tree.SetRoot(labeltree.Entry{Symbol: 'a', Node: a}))
	// replacing the root may reuse its previous entries
	require.NoError(t, tree.SetRoot(labeltree.Entry{Symbol: 'a', Node: a}, labeltree.Entry{Symbol: 'b', Node: b}))
	assert.Equal(t, "{a:A b:B}", tree.String())

	err := tree.SetRoot(labeltree.Entry{Symbol: 'b', Node: a}, labeltree.Entry{Symbol: 'a', Node: b})
	assert.ErrorIs(t, err, labeltree.ErrSymbolOrder)
	assert.Equal(t, "{a:A b:B}", tree.String(), "failed SetRoot keeps the previous root")
	assert.NoError(t, labeltree.Validate(tree))
}

func TestNode_ReturnsCopy(t *testing.T) {
	tree, err := labeltree.Build([]string{"A", "B", "C"}, alphabet.MustParse("ab"))
	require.NoError(t, err)

	root := tree.Root()
	n, ok := tree.Node(root[0].Node)
	require.True(t, ok)
	require.Equal(t, labeltree.KindBranch, n.Kind)
	n.Children[0].Symbol = 'z'

	again, _ := tree.Node(root[0].Node)
	assert.Equal(t, alphabet.Symbol('a'), again.Children[0].Symbol)

	_, ok = tree.Node(-1)
	assert.False(t, ok)
	assert.Equal(t, labeltree.NoNode, tree.Parent(99))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "leaf", labeltree.KindLeaf.String())
	assert.Equal(t, "branch", labeltree.KindBranch.String())
}

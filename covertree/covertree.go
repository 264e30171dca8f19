package covertree

import (
	"sort"

	ibitset "github.com/BUYT-1/Desbordante/internal/bitset"
)

// node is the single polymorphic tree node: the root is merely the node
// with no parent, there is no separate internal/root type.
type node struct {
	children      map[uint]*node
	rhsAttributes *ibitset.Set
	isFd          *ibitset.Set
}

func newNode() *node {
	return &node{
		children:      make(map[uint]*node),
		rhsAttributes: ibitset.NewFixed(),
		isFd:          ibitset.NewFixed(),
	}
}

// Tree is a cover tree over attribute indices in [0, width).
type Tree struct {
	root  *node
	width uint
}

// New returns an empty tree over width attributes. width must not exceed
// ibitset.FixedWidth.
func New(width uint) *Tree {
	return &Tree{root: newNode(), width: width}
}

// Width returns the attribute count the tree was built for.
func (t *Tree) Width() uint {
	return t.width
}

// AddFunctionalDependency walks the path defined by the ascending indices
// of lhs, creating nodes as needed, sets rhs_attributes[a] on every node
// traversed (including the root), and sets is_fd[a] at the terminal node.
// lhs must already be ascending-sorted and deduplicated. Idempotent.
func (t *Tree) AddFunctionalDependency(lhs []uint, a uint) {
	n := t.root
	n.rhsAttributes.Set(a)
	for _, idx := range lhs {
		child := n.children[idx]
		if child == nil {
			child = newNode()
			n.children[idx] = child
		}
		n = child
		n.rhsAttributes.Set(a)
	}
	n.isFd.Set(a)
}

// ContainsGeneralization reports whether some subset Y ⊆ lhs (possibly Y =
// lhs, possibly Y = ∅) has a recorded FD Y → a.
func (t *Tree) ContainsGeneralization(lhs []uint, a uint) bool {
	return searchGeneralization(t.root, lhs, 0, a)
}

func searchGeneralization(n *node, lhs []uint, pos int, a uint) bool {
	if n.isFd.Test(a) {
		return true
	}
	for i := pos; i < len(lhs); i++ {
		child := n.children[lhs[i]]
		if child == nil || !child.rhsAttributes.Test(a) {
			continue
		}
		if searchGeneralization(child, lhs, i+1, a) {
			return true
		}
	}
	return false
}

// GetGeneralizationAndDelete finds one generalization Y ⊆ lhs with Y → a,
// clears its is_fd[a], clears rhs_attributes[a] at every node on the path
// whose subtree no longer witnesses a, and returns the ascending indices
// of Y. found is false if no generalization exists, in which case spec is
// nil.
func (t *Tree) GetGeneralizationAndDelete(lhs []uint, a uint) (spec []uint, found bool) {
	var path []uint
	found = deleteGeneralization(t.root, lhs, 0, a, &path)
	if !found {
		return nil, false
	}
	if isFinalNode(t.root, a) {
		t.root.rhsAttributes.Clear(a)
	}
	spec = append([]uint{}, path...)
	return spec, true
}

func deleteGeneralization(n *node, lhs []uint, pos int, a uint, path *[]uint) bool {
	if n.isFd.Test(a) {
		n.isFd.Clear(a)
		return true
	}
	for i := pos; i < len(lhs); i++ {
		idx := lhs[i]
		child := n.children[idx]
		if child == nil || !child.rhsAttributes.Test(a) {
			continue
		}
		*path = append(*path, idx)
		if deleteGeneralization(child, lhs, i+1, a, path) {
			if isFinalNode(child, a) {
				child.rhsAttributes.Clear(a)
			}
			return true
		}
		*path = (*path)[:len(*path)-1]
	}
	return false
}

// isFinalNode reports whether n's subtree, rooted at n itself, no longer
// witnesses a anywhere — neither at n nor at any descendant.
func isFinalNode(n *node, a uint) bool {
	if n.isFd.Test(a) {
		return false
	}
	for _, c := range n.children {
		if c.rhsAttributes.Test(a) {
			return false
		}
	}
	return true
}

// GetSpecialization reports whether the tree contains a recorded LHS that
// is a proper superset of lhs for RHS a.
func (t *Tree) GetSpecialization(lhs []uint, a uint) bool {
	var path []uint
	return searchSpecialization(t.root, lhs, a, &path)
}

func searchSpecialization(n *node, lhs []uint, a uint, path *[]uint) bool {
	if n.isFd.Test(a) && len(*path) > len(lhs) && isAscendingSubset(lhs, *path) {
		return true
	}
	for idx, child := range n.children {
		if !child.rhsAttributes.Test(a) {
			continue
		}
		*path = append(*path, idx)
		if searchSpecialization(child, lhs, a, path) {
			*path = (*path)[:len(*path)-1]
			return true
		}
		*path = (*path)[:len(*path)-1]
	}
	return false
}

// isAscendingSubset reports whether every element of sub appears in super,
// given both are ascending-sorted.
func isAscendingSubset(sub, super []uint) bool {
	j := 0
	for _, s := range sub {
		for j < len(super) && super[j] < s {
			j++
		}
		if j >= len(super) || super[j] != s {
			return false
		}
		j++
	}
	return true
}

// FilterSpecializations rebuilds the tree to contain, for every RHS bit,
// only the LHS-maximal recorded dependencies: a dependency X → a is
// dropped if some strict superset Y ⊋ X with Y → a is also recorded.
//
// The source tree is walked in postorder (descendants before the node
// itself) so that, within any single branch, longer candidate LHS sets
// are considered for re-insertion before their prefixes. This mirrors the
// classical FDep negative-cover filtering step; cross-branch maximality
// (a superset reachable only through a sibling subtree) is still resolved
// correctly because GetSpecialization searches the whole fresh tree, not
// just the current branch.
func (t *Tree) FilterSpecializations() {
	fresh := New(t.width)
	var path []uint
	filterWalk(t.root, &path, fresh)
	t.root = fresh.root
}

func filterWalk(n *node, path *[]uint, fresh *Tree) {
	indices := make([]uint, 0, len(n.children))
	for idx := range n.children {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	for _, idx := range indices {
		*path = append(*path, idx)
		filterWalk(n.children[idx], path, fresh)
		*path = (*path)[:len(*path)-1]
	}

	n.isFd.ForEachIndex(func(a uint) bool {
		if !fresh.GetSpecialization(*path, a) {
			fresh.AddFunctionalDependency(*path, a)
		}
		return true
	})
}

// AddMostGeneralDependencies marks the root as asserting ∅ → a for every
// attribute a in [0, width). This seeds the positive cover.
func (t *Tree) AddMostGeneralDependencies() {
	for a := uint(0); a < t.width; a++ {
		t.AddFunctionalDependency(nil, a)
	}
}

// Emitted is one (lhs, rhs) pair produced by Emit: the ascending attribute
// indices of the LHS and the bitset of RHS attributes recorded at that
// node.
type Emitted struct {
	Lhs []uint
	Rhs *ibitset.Set
}

// Emit performs a DFS over the tree; at each node whose is_fd is
// non-empty and whose path length is at most maxLHS, it invokes f with the
// node's path and is_fd bitset. maxLHS <= 0 means unbounded.
func (t *Tree) Emit(maxLHS int, f func(Emitted)) {
	var path []uint
	emitWalk(t.root, &path, maxLHS, f)
}

func emitWalk(n *node, path *[]uint, maxLHS int, f func(Emitted)) {
	if n.isFd.Any() && (maxLHS <= 0 || len(*path) <= maxLHS) {
		f(Emitted{Lhs: append([]uint{}, *path...), Rhs: n.isFd.Clone()})
	}
	indices := make([]uint, 0, len(n.children))
	for idx := range n.children {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	for _, idx := range indices {
		*path = append(*path, idx)
		emitWalk(n.children[idx], path, maxLHS, f)
		*path = (*path)[:len(*path)-1]
	}
}

package Dicts

import (
	"cmp"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// RBTree is a binary search tree with no repeated values that maintains
// balance through the red-black recoloring/rotation protocol, giving a
// guaranteed height of at most 2*log2(n+1).
// T is the type of values it will hold, S is the type of the indexes into
// the node arena. All nodes live in one slice and link to each other by
// index, with index 0 reserved for the shared black sentinel, so there are
// no pointer cycles and freed slots are reused through a free list. Note
// that S bounds the capacity: you should let S be a wide upperbound for the
// size of the tree, as growing past the largest S value silently truncates
// indexes.
// The tree additionally tracks its minimum and maximum nodes, making
// Minimum, Maximum, HasPredecessor and HasSuccessor O(1), and a
// modification counter that makes Iterator fail fast.
// Every element comparison made during a public receiver goes through one
// counting compare; Comparisons returns the count of the most recent call,
// and an attached Recorder is handed every completed call. The counter and
// sink exist for observation only and never influence the tree.
// RBTree is not safe for concurrent use.
type RBTree[T cmp.Ordered, S constraints.Unsigned] struct {
	ns       []node[T, S] //ns[0] is the sentinel; live nodes and free slots follow.
	root     S
	free     S //head of the free list threaded through node.l.
	min, max S //cached extrema; both 0 iff the tree is empty.
	size     S
	ops      uint //bumped on every successful Insert/Remove, including cursor removals.
	cmps     uint //comparisons spent by the most recent public call.
	rec      Recorder[T]
}

// New returns an empty RBTree with room for hint elements preallocated.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *RBTree[T, S] {
	return &RBTree[T, S]{ns: make([]node[T, S], 1, hint+1)}
}

// From a given value array, directly build a tree in O(n). The slice must be
// sorted in ascending order and mustn't contain duplicate elements; it is
// only read. The midpoint split yields minimal height and coloring the
// deepest level red gives every path to the sentinel the same number of
// black nodes.
func From[T cmp.Ordered, S constraints.Unsigned](vs []T) *RBTree[T, S] {
	u := &RBTree[T, S]{ns: make([]node[T, S], 1, len(vs)+1)}
	redDepth := bits.Len(uint(len(vs))+1) - 1
	var build func(s []T, d int, pi S) S
	build = func(s []T, d int, pi S) S {
		if len(s) == 0 {
			return 0
		}
		mid := len(s) >> 1
		u.ns = append(u.ns, node[T, S]{v: s[mid], p: pi, red: d == redDepth})
		zi := S(len(u.ns) - 1)
		u.ns[zi].l = build(s[:mid], d+1, zi)
		u.ns[zi].r = build(s[mid+1:], d+1, zi)
		return zi
	}
	u.root = build(vs, 0, 0)
	u.size = S(len(vs))
	if u.root != 0 {
		u.min, u.max = u.subMin(u.root), u.subMax(u.root)
	}
	return u
}

// Trace attaches r as the operation sink; each completed public call is
// reported to it together with the comparisons it spent. nil detaches.
func (u *RBTree[T, S]) Trace(r Recorder[T]) {
	u.rec = r
}

// Comparisons spent by the most recent public call.
func (u *RBTree[T, S]) Comparisons() uint {
	return u.cmps
}

// compare a to b through the per-call counter. Every ordering decision of a
// public operation goes through here so Comparisons and the Recorder see
// all of them.
func (u *RBTree[T, S]) compare(a, b T) int {
	u.cmps++
	return cmp.Compare(a, b)
}

func (u *RBTree[T, S]) record(op string, arg *T) {
	if u.rec != nil {
		u.rec.Record(op, arg, u.cmps)
	}
}

// Empty [Dict.Empty]
// Time: O(1)
func (u *RBTree[T, S]) Empty() bool {
	u.cmps = 0
	u.record("Empty", nil)
	return u.root == 0
}

// Size [Dict.Size]
// Time: O(1)
func (u *RBTree[T, S]) Size() uint {
	return uint(u.size)
}

// locate the index of the node holding v, or 0.
func (u *RBTree[T, S]) locate(v T) S {
	i := u.root
	for i != 0 {
		if c := u.compare(v, u.ns[i].v); c < 0 {
			i = u.ns[i].l
		} else if c > 0 {
			i = u.ns[i].r
		} else {
			break
		}
	}
	return i
}

// Has [Dict.Has]. Standard binary search from the root.
// Time: O(log n); Space: O(1)
func (u *RBTree[T, S]) Has(v T) bool {
	u.cmps = 0
	found := u.locate(v) != 0
	u.record("Has", &v)
	return found
}

// HasPredecessor [Dict.HasPredecessor]. v itself need not be present; one
// comparison against the cached minimum decides.
// Time: O(1)
func (u *RBTree[T, S]) HasPredecessor(v T) bool {
	u.cmps = 0
	ret := u.root != 0 && u.compare(v, u.ns[u.min].v) > 0
	u.record("HasPredecessor", &v)
	return ret
}

// HasSuccessor [Dict.HasSuccessor]. v itself need not be present; one
// comparison against the cached maximum decides.
// Time: O(1)
func (u *RBTree[T, S]) HasSuccessor(v T) bool {
	u.cmps = 0
	ret := u.root != 0 && u.compare(v, u.ns[u.max].v) < 0
	u.record("HasSuccessor", &v)
	return ret
}

// Predecessor [Dict.Predecessor]: the greatest element strictly less than
// v, whether or not v itself is stored. The second return is false iff no
// element is less than v.
// Time: O(log n); Space: O(1)
func (u *RBTree[T, S]) Predecessor(v T) (T, bool) {
	u.cmps = 0
	var pi S
	for i := u.root; i != 0; {
		if u.compare(v, u.ns[i].v) > 0 {
			pi = i
			i = u.ns[i].r
		} else {
			i = u.ns[i].l
		}
	}
	u.record("Predecessor", &v)
	return u.ns[pi].v, pi != 0
}

// Successor [Dict.Successor]: the smallest element strictly greater than v,
// whether or not v itself is stored. The second return is false iff no
// element is greater than v.
// Time: O(log n); Space: O(1)
func (u *RBTree[T, S]) Successor(v T) (T, bool) {
	u.cmps = 0
	var si S
	for i := u.root; i != 0; {
		if u.compare(v, u.ns[i].v) < 0 {
			si = i
			i = u.ns[i].l
		} else {
			i = u.ns[i].r
		}
	}
	u.record("Successor", &v)
	return u.ns[si].v, si != 0
}

// Minimum [Dict.Minimum]. Served from the cached reference.
// Time: O(1)
func (u *RBTree[T, S]) Minimum() (T, bool) {
	u.cmps = 0
	u.record("Minimum", nil)
	return u.ns[u.min].v, u.min != 0
}

// Maximum [Dict.Maximum]. Served from the cached reference.
// Time: O(1)
func (u *RBTree[T, S]) Maximum() (T, bool) {
	u.cmps = 0
	u.record("Maximum", nil)
	return u.ns[u.max].v, u.max != 0
}

// Insert [Dict.Insert]. The new element is hung as a red leaf by standard
// BST descent, insertFixup restores the red-black properties, then the
// cached extrema are updated with at most two comparisons.
// Time: O(log n); Space: amortized O(1)
func (u *RBTree[T, S]) Insert(v T) bool {
	u.cmps = 0
	ok := u.insert(v)
	if ok {
		u.ops++
	}
	u.record("Insert", &v)
	return ok
}

func (u *RBTree[T, S]) insert(v T) bool {
	if u.root == 0 {
		u.root = u.alloc(v)
		u.ns[u.root].red = false
		u.min, u.max = u.root, u.root
		u.size++
		return true
	}
	pi := u.root
	var left bool
	for {
		if c := u.compare(v, u.ns[pi].v); c < 0 {
			if u.ns[pi].l == 0 {
				left = true
				break
			}
			pi = u.ns[pi].l
		} else if c > 0 {
			if u.ns[pi].r == 0 {
				left = false
				break
			}
			pi = u.ns[pi].r
		} else {
			return false
		}
	}
	zi := u.alloc(v)
	u.ns[zi].p = pi
	u.setChild(pi, left, zi)
	u.insertFixup(zi)
	if u.compare(v, u.ns[u.min].v) < 0 {
		u.min = zi
	} else if u.compare(v, u.ns[u.max].v) > 0 {
		u.max = zi
	}
	u.size++
	return true
}

// insertFixup restores the red-black properties after hanging the red leaf
// zi: recolor and move up two levels while the uncle is red, otherwise at
// most two rotations end it. Both mirror-image cases run through the same
// branch via the left axis.
func (u *RBTree[T, S]) insertFixup(zi S) {
	for u.ns[u.ns[zi].p].red {
		pi := u.ns[zi].p
		gi := u.ns[pi].p
		left := u.ns[gi].l == pi
		if ui := u.child(gi, !left); u.ns[ui].red {
			u.ns[pi].red, u.ns[ui].red = false, false
			u.ns[gi].red = true
			zi = gi
		} else {
			if zi == u.child(pi, !left) { //inner grandchild; rotate into the outer case
				zi = pi
				u.rotate(zi, left)
				pi = u.ns[zi].p
			}
			u.ns[pi].red = false
			u.ns[gi].red = true
			u.rotate(gi, !left)
		}
	}
	u.ns[u.root].red = false
}

// Remove [Dict.Remove].
// Time: O(log n); Space: O(1)
func (u *RBTree[T, S]) Remove(v T) bool {
	u.cmps = 0
	zi := u.locate(v)
	if zi != 0 {
		u.delete(zi)
	}
	u.record("Remove", &v)
	return zi != 0
}

// delete unlinks the node at zi. A node with two children is replaced by
// its in-order successor node rather than by copying values across, so
// indexes held by live cursors stay attached to their elements. If the
// physically removed or displaced node was black, the subtree in its place
// is short one black node and deleteFixup repairs that. The cached extrema
// are recomputed by subtree descent only when zi was one of them.
func (u *RBTree[T, S]) delete(zi S) {
	yRed := u.ns[zi].red
	var xi S
	if u.ns[zi].l == 0 {
		xi = u.ns[zi].r
		u.transplant(zi, xi)
	} else if u.ns[zi].r == 0 {
		xi = u.ns[zi].l
		u.transplant(zi, xi)
	} else {
		yi := u.subMin(u.ns[zi].r)
		yRed = u.ns[yi].red
		xi = u.ns[yi].r
		if u.ns[yi].p == zi {
			u.ns[xi].p = yi //xi may be the sentinel; deleteFixup reads the parent set here
		} else {
			u.transplant(yi, xi)
			u.ns[yi].r = u.ns[zi].r
			u.ns[u.ns[yi].r].p = yi
		}
		u.transplant(zi, yi)
		u.ns[yi].l = u.ns[zi].l
		u.ns[u.ns[yi].l].p = yi
		u.ns[yi].red = u.ns[zi].red
	}
	if !yRed {
		u.deleteFixup(xi)
	}
	if u.size--; u.size == 0 {
		u.min, u.max = 0, 0
	} else if zi == u.min {
		u.min = u.subMin(u.root)
	} else if zi == u.max {
		u.max = u.subMax(u.root)
	}
	u.addFree(zi)
	u.ops++
}

// deleteFixup pushes the extra black carried by xi up or away: a red
// sibling is rotated into a black one, a black sibling with two black
// children absorbs one black and moves the problem to the parent, a red
// near nephew is rotated into a red far nephew, and a red far nephew ends
// it with one rotation. Written once over the left axis like insertFixup.
func (u *RBTree[T, S]) deleteFixup(xi S) {
	for xi != u.root && !u.ns[xi].red {
		pi := u.ns[xi].p
		left := u.ns[pi].l == xi
		wi := u.child(pi, !left)
		if u.ns[wi].red {
			u.ns[wi].red = false
			u.ns[pi].red = true
			u.rotate(pi, left)
			wi = u.child(pi, !left)
		}
		if !u.ns[u.ns[wi].l].red && !u.ns[u.ns[wi].r].red {
			u.ns[wi].red = true
			xi = pi
		} else {
			if !u.ns[u.child(wi, !left)].red { //far nephew black, near red
				u.ns[u.child(wi, left)].red = false
				u.ns[wi].red = true
				u.rotate(wi, !left)
				wi = u.child(pi, !left)
			}
			u.ns[wi].red = u.ns[pi].red
			u.ns[pi].red = false
			u.ns[u.child(wi, !left)].red = false
			u.rotate(pi, left)
			xi = u.root
		}
	}
	u.ns[xi].red = false
}

// successorOf the node at i in the stored order, 0 when i is the maximum.
// With a right subtree it is that subtree's minimum, otherwise the first
// ancestor reached from the left.
func (u *RBTree[T, S]) successorOf(i S) S {
	if i == u.max {
		return 0
	}
	if u.ns[i].r != 0 {
		return u.subMin(u.ns[i].r)
	}
	pi := u.ns[i].p
	for pi != 0 && u.ns[pi].r == i {
		i = pi
		pi = u.ns[pi].p
	}
	return pi
}

// ceiling: the least node with value >= v, 0 when even the maximum is less
// than v.
func (u *RBTree[T, S]) ceiling(v T) S {
	var ci S
	for i := u.root; i != 0; {
		if c := u.compare(v, u.ns[i].v); c < 0 {
			ci = i
			i = u.ns[i].l
		} else if c > 0 {
			i = u.ns[i].r
		} else {
			return i
		}
	}
	return ci
}

// InOrder [Dict.InOrder]. The closure walks successor links without
// touching the tree, so unlike Iterator it cannot detect concurrent
// modification.
// Time: f(): O(log n) per call, O(n) over a full traversal. Space: O(1)
func (u *RBTree[T, S]) InOrder() func() (T, bool) {
	i := u.min
	return func() (r T, has bool) {
		if i == 0 {
			return
		}
		r, has = u.ns[i].v, true
		i = u.successorOf(i)
		return
	}
}

// Corrupt [Dict.Corrupt]. Verifies the black sentinel and root, the absence
// of red-red edges, the equal black count on every path to the sentinel,
// in-order sortedness, the cached extrema and the tracked size.
// Time: O(n)
func (u *RBTree[T, S]) Corrupt() bool {
	if u.ns[0].red || u.ns[0].l != 0 || u.ns[0].r != 0 {
		return true
	}
	if u.root == 0 {
		return u.min != 0 || u.max != 0 || u.size != 0
	}
	if u.ns[u.root].red || u.min != u.subMin(u.root) || u.max != u.subMax(u.root) {
		return true
	}
	var n S = 1
	for prev, i := u.min, u.successorOf(u.min); i != 0; prev, i = i, u.successorOf(i) {
		if n++; cmp.Compare(u.ns[prev].v, u.ns[i].v) >= 0 {
			return true
		}
	}
	return n != u.size || u.blackDepth(u.root) < 0
}

// blackDepth of the subtree at i: the uniform number of black nodes on
// every path down to and including the sentinel, or -1 when the paths
// disagree or a red node has a red child.
func (u *RBTree[T, S]) blackDepth(i S) int {
	if i == 0 {
		return 1
	}
	if u.ns[i].red && (u.ns[u.ns[i].l].red || u.ns[u.ns[i].r].red) {
		return -1
	}
	l := u.blackDepth(u.ns[i].l)
	if r := u.blackDepth(u.ns[i].r); l < 0 || l != r {
		return -1
	}
	if u.ns[i].red {
		return l
	}
	return l + 1
}

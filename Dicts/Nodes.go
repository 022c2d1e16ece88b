package Dicts

import "golang.org/x/exp/constraints"

// A node in the RBTree, stored in the tree's arena slice and addressed by
// index. Index 0 is the shared sentinel standing in for every absent child
// and parent position: it is black and its l and r stay 0 forever, so the
// zero value of node is exactly the sentinel. Of the sentinel's fields only
// p is ever written (see transplant); nothing reads it except deleteFixup
// right after.
// Free slots are threaded into a list through l, see addFree/popFree.
type node[T any, S constraints.Unsigned] struct {
	v       T
	l, r, p S
	red     bool
}

// child of i on the given side. The left axis is how the mirror-image cases
// of the fixup routines collapse into a single branch each.
func (u *RBTree[T, S]) child(i S, left bool) S {
	if left {
		return u.ns[i].l
	}
	return u.ns[i].r
}

func (u *RBTree[T, S]) setChild(i S, left bool, c S) {
	if left {
		u.ns[i].l = c
	} else {
		u.ns[i].r = c
	}
}

// rotate the subtree rooted at i around the edge to its right (left==true)
// or left (left==false) child. The risen child takes i's place under i's
// parent, or becomes the root when i had none; in-order sequence is
// preserved.
// Time: O(1); Space: O(1)
func (u *RBTree[T, S]) rotate(i S, left bool) {
	ci := u.child(i, !left)
	t := u.child(ci, left)
	u.setChild(i, !left, t)
	u.ns[t].p = i
	u.setChild(ci, left, i)
	pi := u.ns[i].p
	u.ns[ci].p = pi
	if pi == 0 {
		u.root = ci
	} else if u.ns[pi].l == i {
		u.ns[pi].l = ci
	} else {
		u.ns[pi].r = ci
	}
	u.ns[i].p = ci
}

// transplant replaces the subtree rooted at i with the one rooted at j in
// i's parent. j may be the sentinel; its p field is still assigned, and
// deleteFixup depends on the parent left there.
func (u *RBTree[T, S]) transplant(i, j S) {
	pi := u.ns[i].p
	if pi == 0 {
		u.root = j
	} else if u.ns[pi].l == i {
		u.ns[pi].l = j
	} else {
		u.ns[pi].r = j
	}
	u.ns[j].p = pi
}

// subMin of the subtree rooted at i, which mustn't be the sentinel.
func (u *RBTree[T, S]) subMin(i S) S {
	for u.ns[i].l != 0 {
		i = u.ns[i].l
	}
	return i
}

// subMax of the subtree rooted at i, which mustn't be the sentinel.
func (u *RBTree[T, S]) subMax(i S) S {
	for u.ns[i].r != 0 {
		i = u.ns[i].r
	}
	return i
}

// addFree index once.
func (u *RBTree[T, S]) addFree(i S) {
	u.ns[i].l = u.free
	u.free = i
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *RBTree[T, S]) popFree() S {
	i := u.free
	u.free = u.ns[i].l
	return i
}

// alloc a slot holding v, reusing freed slots before growing the arena. The
// new node starts red with all links to the sentinel; the caller hangs it.
func (u *RBTree[T, S]) alloc(v T) S {
	if i := u.popFree(); i != 0 {
		u.ns[i] = node[T, S]{v: v, red: true}
		return i
	}
	u.ns = append(u.ns, node[T, S]{v: v, red: true})
	return S(len(u.ns) - 1)
}

package Dicts

import (
	"cmp"
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	//ErrExhausted is returned by Iterator.Next once every element has been returned.
	ErrExhausted = errors.New("iterator exhausted")
	//ErrModified is returned by every Iterator receiver once the backing
	//tree has been mutated by anything other than this iterator's own Remove.
	ErrModified = errors.New("dictionary modified during iteration")
	//ErrIllegalState is returned by Iterator.Remove unless the latest call
	//on the iterator was a Next.
	ErrIllegalState = errors.New("Remove without preceding Next")
)

// Iterator is a fail-fast in-order cursor over an RBTree: the tree counts
// its successful mutations, the cursor snapshots the count at creation, and
// a mismatch turns every later call into ErrModified instead of silently
// producing stale results. Remove through the cursor advances the count and
// the snapshot together, so a cursor never trips on its own deletion.
// An Iterator owns no nodes; it only remembers indexes into the tree's
// arena, which stay attached to their elements for as long as the snapshot
// is valid.
type Iterator[T cmp.Ordered, S constraints.Unsigned] struct {
	u    *RBTree[T, S]
	next S //next node to return; 0 when exhausted.
	last S //node returned by the latest Next; 0 before the first Next and after Remove.
	ops  uint
}

// Iterator returns a cursor positioned at the least element.
// Time: O(1)
func (u *RBTree[T, S]) Iterator() *Iterator[T, S] {
	u.cmps = 0
	u.record("Iterator", nil)
	return &Iterator[T, S]{u: u, next: u.min, ops: u.ops}
}

// IteratorFrom returns a cursor positioned at the least element >= v. If no
// such element exists the cursor starts exhausted.
// Time: O(log n)
func (u *RBTree[T, S]) IteratorFrom(v T) *Iterator[T, S] {
	u.cmps = 0
	it := &Iterator[T, S]{u: u, next: u.ceiling(v), ops: u.ops}
	u.record("IteratorFrom", &v)
	return it
}

// HasNext reports whether Next would return an element.
// Time: O(1)
func (it *Iterator[T, S]) HasNext() (bool, error) {
	if it.ops != it.u.ops {
		return false, ErrModified
	}
	return it.next != 0, nil
}

// Next returns the least element not yet returned and marks it as the one a
// following Remove deletes.
// Time: O(log n)
func (it *Iterator[T, S]) Next() (T, error) {
	if it.ops != it.u.ops {
		return *new(T), ErrModified
	}
	if it.next == 0 {
		return *new(T), ErrExhausted
	}
	it.last = it.next
	it.next = it.u.successorOf(it.next)
	return it.u.ns[it.last].v, nil
}

// Remove deletes the element returned by the latest Next from the backing
// tree, through the tree's own delete path. Legal once per Next. The
// deletion counts as a mutation, so every other live cursor fails from here
// on; this cursor resyncs its snapshot and continues from the removed
// element's successor.
// Time: O(log n)
func (it *Iterator[T, S]) Remove() error {
	if it.ops != it.u.ops {
		return ErrModified
	}
	if it.last == 0 {
		return ErrIllegalState
	}
	it.u.delete(it.last)
	it.last = 0
	it.ops = it.u.ops
	return nil
}

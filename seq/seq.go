// Package seq provides an insertion-ordered sequence of values with
// O(1) append and cursor-based removal that is safe during iteration.
//
// It is the storage primitive underneath sshkit's packet dispatcher:
// handler chains are appended in registration order and may be removed
// by a handler while the chain is being walked.  Sequences are small
// (bounded by the number of registered protocol extensions), so the
// O(n) predecessor scan on removal is acceptable.
package seq

import (
	"sshkit/internal/errors"
)

// ErrEmpty is returned by [List.PopFront] on an empty sequence.
var ErrEmpty = errors.ErrEmpty

// Node is a single linked element of a [List].  A *Node doubles as the
// cursor handle for [List.Remove]: iteration hands out nodes, and any
// of them may be passed back to unlink it.
type Node[T any] struct {
	next  *Node[T]
	value T
}

// Value returns the payload stored in the node.  It remains readable
// after the node has been removed from its list.
func (n *Node[T]) Value() T { return n.value }

// Next returns the following node, or nil at the end of the sequence.
// A removed node returns nil: its successor link is severed on removal
// so a stale cursor cannot walk back into the live list.
func (n *Node[T]) Next() *Node[T] { return n.next }

// List is an insertion-ordered sequence.  The zero value is not ready
// for use; call [New].
//
// A List owns only its nodes — the payload values themselves belong to
// the caller.  It performs no internal locking: callers serialize all
// access to a given list (see the dispatch package contract).
type List[T any] struct {
	root *Node[T]
	end  *Node[T]
}

// New creates an empty sequence.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Append links a new node holding v at the tail in O(1).
func (l *List[T]) Append(v T) *Node[T] {
	n := &Node[T]{value: v}
	if l.end == nil {
		// list is empty
		l.root, l.end = n, n
	} else {
		l.end.next = n
		l.end = n
	}
	return n
}

// Front returns the first node, or nil when the sequence is empty.
// Iterate with Front/Next; iteration is restartable by calling Front
// again.
func (l *List[T]) Front() *Node[T] { return l.root }

// Remove unlinks the node from the sequence.  If the node is not
// present (already removed, or from another list) this is a no-op.
//
// Removal never invalidates iteration that is already past the node.
// An iterator currently parked on the removed node can still read its
// value, but Next returns nil for it — capture the successor before
// removing when iterating:
//
//	for n := l.Front(); n != nil; {
//		next := n.Next()
//		if drop(n.Value()) {
//			l.Remove(n)
//		}
//		n = next
//	}
func (l *List[T]) Remove(node *Node[T]) {
	var prev *Node[T]
	ptr := l.root
	for ptr != nil && ptr != node {
		prev = ptr
		ptr = ptr.next
	}
	if ptr == nil {
		// not found
		return
	}
	if prev != nil {
		prev.next = ptr.next
	}
	if l.root == node {
		l.root = node.next
	}
	if l.end == node {
		l.end = prev
	}
	node.next = nil
}

// PopFront removes and returns the head value.  It returns [ErrEmpty]
// when the sequence has none.
func (l *List[T]) PopFront() (T, error) {
	if l.root == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := l.root
	l.root = n.next
	if l.end == n {
		l.end = nil
	}
	n.next = nil
	return n.value, nil
}

// Len counts the elements by walking the sequence.
func (l *List[T]) Len() int {
	count := 0
	for n := l.root; n != nil; n = n.next {
		count++
	}
	return count
}

// Empty reports whether the sequence has no elements.
func (l *List[T]) Empty() bool { return l.root == nil }

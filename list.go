package slist

import (
	"fmt"
	"iter"
	"slices"
)

// List is a singly-linked list. A zero value List is empty and ready
// to use.
//
// The list does not track its length or its last node, so Len and any
// operation that works at the back of the list walk the whole chain.
type List[T comparable] struct {
	head *Node[T]
}

// New returns a list containing vals in order.
func New[T comparable](vals ...T) *List[T] {
	var ls List[T]
	return ls.InsertAtBackMany(vals...)
}

// IsEmpty returns true if the list has no nodes.
func (ls *List[T]) IsEmpty() bool {
	return ls.head == nil
}

// Len returns the number of nodes in the list.
func (ls *List[T]) Len() (n int) {
	for cur := ls.head; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// Front returns the first node of the list or nil if the list is
// empty.
func (ls *List[T]) Front() *Node[T] {
	return ls.head
}

// InsertAtFront adds v as the new head of the list.
func (ls *List[T]) InsertAtFront(v T) *List[T] {
	ls.head = &Node[T]{Val: v, next: ls.head}
	return ls
}

// InsertAtBack adds v as a new node after the current last node.
func (ls *List[T]) InsertAtBack(v T) *List[T] {
	n := ls.last().insert(v)
	if ls.head == nil {
		ls.head = n
	}
	return ls
}

// InsertAtBackMany adds each of vals to the back of the list in order.
func (ls *List[T]) InsertAtBackMany(vals ...T) *List[T] {
	tail := ls.last()
	for _, v := range vals {
		tail = tail.insert(v)
		if ls.head == nil {
			ls.head = tail
		}
	}
	return ls
}

// InsertAtBackSeq adds every value yielded by seq to the back of the
// list in order. seq is drained before the list is modified, so it may
// iterate over ls itself.
func (ls *List[T]) InsertAtBackSeq(seq iter.Seq[T]) *List[T] {
	return ls.InsertAtBackMany(slices.Collect(seq)...)
}

// InsertAtBackFrom adds v after the last node reachable from the node
// from. If from is nil, the walk starts at the head of the list, and
// an empty list results in [ErrEmpty]. If from is not a node of ls,
// [ErrForeignNode] is returned. The list is not modified if an error
// is returned.
func (ls *List[T]) InsertAtBackFrom(v T, from *Node[T]) error {
	switch {
	case from == nil:
		if ls.head == nil {
			return fmt.Errorf("insert %v at back: %w", v, ErrEmpty)
		}
		from = ls.head
	case !ls.owns(from):
		return fmt.Errorf("insert %v at back: %w", v, ErrForeignNode)
	}

	for from.next != nil {
		from = from.next
	}
	from.insert(v)
	return nil
}

// All returns an iterator over the values of the list from head to
// tail.
func (ls *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur.Val) {
				return
			}
			cur = cur.next
		}
	}
}

// ToSlice returns a new slice containing the values of the list in
// order.
func (ls *List[T]) ToSlice() []T {
	return slices.AppendSeq(make([]T, 0, ls.Len()), ls.All())
}

// String formats the list the same way that fmt formats a slice.
func (ls *List[T]) String() string {
	return fmt.Sprint(ls.ToSlice())
}

// RemoveHead removes the first node of the list and returns its value.
// It returns false if the list was already empty.
func (ls *List[T]) RemoveHead() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}

	n := ls.head
	ls.head = n.next
	n.next = nil
	return n.Val, true
}

// RemoveBack removes the last node of the list and returns its value.
// It returns false if the list was already empty.
func (ls *List[T]) RemoveBack() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}
	if ls.head.next == nil {
		v = ls.head.Val
		ls.head = nil
		return v, true
	}

	prev := ls.head
	for prev.next.next != nil {
		prev = prev.next
	}
	v = prev.next.Val
	prev.next = nil
	return v, true
}

// Contains returns true if any node in the list holds v.
func (ls *List[T]) Contains(v T) bool {
	return ls.ContainsFrom(v, nil)
}

// ContainsFrom is like [List.Contains] but only considers from and the
// nodes after it. If from is nil, the search starts at the head. If
// from is not a node of ls, ContainsFrom returns false.
func (ls *List[T]) ContainsFrom(v T, from *Node[T]) bool {
	switch {
	case from == nil:
		from = ls.head
	case !ls.owns(from):
		return false
	}
	for cur := from; cur != nil; cur = cur.next {
		if cur.Val == v {
			return true
		}
	}
	return false
}

// SecondToLast returns the value of the node just before the last
// node. It returns false if the list has fewer than two nodes.
func (ls *List[T]) SecondToLast() (v T, ok bool) {
	if ls.head == nil || ls.head.next == nil {
		return v, false
	}

	cur := ls.head
	for cur.next.next != nil {
		cur = cur.next
	}
	return cur.Val, true
}

// RemoveVal removes the first node holding v. It returns false if
// there is no such node.
func (ls *List[T]) RemoveVal(v T) bool {
	link := ls.link(v)
	if link == nil {
		return false
	}

	n := *link
	*link = n.next
	n.next = nil
	return true
}

// Prepend inserts a new node holding v directly before the first node
// holding target. It returns false, leaving the list unchanged, if no
// node holds target.
func (ls *List[T]) Prepend(v, target T) bool {
	link := ls.link(target)
	if link == nil {
		return false
	}

	*link = &Node[T]{Val: v, next: *link}
	return true
}

// Clear removes every node from the list.
func (ls *List[T]) Clear() {
	ls.head = nil
}

// Clone returns a new list holding the same values as ls.
func (ls *List[T]) Clone() *List[T] {
	var c List[T]
	return c.InsertAtBackSeq(ls.All())
}

func (ls *List[T]) last() *Node[T] {
	if ls.head == nil {
		return nil
	}

	cur := ls.head
	for cur.next != nil {
		cur = cur.next
	}
	return cur
}

// link returns the link pointing at the first node holding v, or nil
// if there is none. The link is either &ls.head or the next field of
// the preceding node.
func (ls *List[T]) link(v T) **Node[T] {
	for link := &ls.head; *link != nil; link = &(*link).next {
		if (*link).Val == v {
			return link
		}
	}
	return nil
}

func (ls *List[T]) owns(n *Node[T]) bool {
	for cur := ls.head; cur != nil; cur = cur.next {
		if cur == n {
			return true
		}
	}
	return false
}

// Node is a node of a [List].
type Node[T comparable] struct {
	Val  T
	next *Node[T]
}

// Next returns the node after n or nil if n is the last node.
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}

// insert links a new node holding v directly after n and returns it.
// If n is nil, the new node is returned unlinked.
func (n *Node[T]) insert(v T) *Node[T] {
	if n == nil {
		return &Node[T]{Val: v}
	}

	n.next = &Node[T]{Val: v, next: n.next}
	return n.next
}

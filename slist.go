// Package slist provides a generic singly linked list along with a
// few numeric queries over lists of ordered or numeric values.
//
// A [List] is not safe for concurrent use. Wrap it in a [Locked] if it
// needs to be shared between goroutines.
package slist

import "errors"

var (
	// ErrEmpty is returned by operations that need at least one node
	// when they are called on an empty list.
	ErrEmpty = errors.New("empty list")

	// ErrTypeMismatch is returned when two values in a list can't be
	// compared with each other.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrForeignNode is returned when a node passed as a starting point
	// does not belong to the list it was passed to.
	ErrForeignNode = errors.New("node is not part of list")
)

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

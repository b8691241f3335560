package slist

import (
	"iter"
	"sync"
)

// Locked is a [List] guarded by a mutex so that it can be shared
// between goroutines. Every method holds the lock for the duration of
// a single list operation. A zero value Locked is empty and ready to
// use. A Locked must not be copied after first use.
type Locked[T comparable] struct {
	_ noCopy

	m  sync.Mutex
	ls List[T]
}

// Do calls f with the underlying list while holding the lock. f must
// not retain the list or call other methods of l.
func (l *Locked[T]) Do(f func(ls *List[T])) {
	l.m.Lock()
	defer l.m.Unlock()

	f(&l.ls)
}

func (l *Locked[T]) IsEmpty() bool {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.IsEmpty()
}

func (l *Locked[T]) Len() int {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.Len()
}

func (l *Locked[T]) InsertAtFront(v T) {
	l.m.Lock()
	defer l.m.Unlock()

	l.ls.InsertAtFront(v)
}

func (l *Locked[T]) InsertAtBack(v T) {
	l.m.Lock()
	defer l.m.Unlock()

	l.ls.InsertAtBack(v)
}

// InsertAtBackMany adds all of vals to the back of the list without
// releasing the lock in between.
func (l *Locked[T]) InsertAtBackMany(vals ...T) {
	l.m.Lock()
	defer l.m.Unlock()

	l.ls.InsertAtBackMany(vals...)
}

func (l *Locked[T]) RemoveHead() (T, bool) {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.RemoveHead()
}

func (l *Locked[T]) RemoveBack() (T, bool) {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.RemoveBack()
}

func (l *Locked[T]) Contains(v T) bool {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.Contains(v)
}

func (l *Locked[T]) SecondToLast() (T, bool) {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.SecondToLast()
}

func (l *Locked[T]) RemoveVal(v T) bool {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.RemoveVal(v)
}

func (l *Locked[T]) Prepend(v, target T) bool {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.Prepend(v, target)
}

func (l *Locked[T]) ToSlice() []T {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.ToSlice()
}

// All returns an iterator over a snapshot of the list's values taken
// when iteration begins. The lock is not held while values are being
// yielded.
func (l *Locked[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.ToSlice() {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns an unguarded copy of the list.
func (l *Locked[T]) Clone() *List[T] {
	l.m.Lock()
	defer l.m.Unlock()

	return l.ls.Clone()
}

// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ressched

import "github.com/cockroachdb/errors"

// Iterator is a single-pass cursor over the resources of a Scheduler in
// Natural order: ascending priority, then arrival order. Once HasNext
// reports false the Iterator is exhausted for good, even if resources are
// added afterwards; create a new Iterator to traverse again.
//
//	it := s.Iterator()
//	for it.HasNext() {
//		r, err := it.Next()
//		if err != nil {
//			return err
//		}
//		...
//	}
type Iterator[R Resource] struct {
	s   *Scheduler[R]
	gen uint64

	// cur is the bucket holding the next resource, nil before the first call
	// to HasNext and after exhaustion.
	cur       *bucket[R]
	idx       int
	exhausted bool
}

// HasNext reports whether Next will return another resource. If the
// Scheduler was modified since the Iterator was created it reports true, so
// that the following Next surfaces ErrConcurrentModification.
func (it *Iterator[R]) HasNext() bool {
	if it.exhausted {
		return false
	}
	if it.gen != it.s.gen {
		return true
	}
	if it.cur != nil && it.idx < len(it.cur.resources) {
		return true
	}
	var next *bucket[R]
	if it.cur == nil {
		next = it.s.first()
	} else {
		next = it.s.after(it.cur.priority)
	}
	if next == nil {
		it.exhausted = true
		it.cur = nil
		return false
	}
	it.cur, it.idx = next, 0
	return true
}

// Next returns the next resource. It returns an error matching
// ErrOutOfElements once the Iterator is exhausted, and one matching
// ErrConcurrentModification if the Scheduler was added to since the
// Iterator was created.
func (it *Iterator[R]) Next() (R, error) {
	var zero R
	if !it.HasNext() {
		return zero, errors.WithStack(ErrOutOfElements)
	}
	if it.gen != it.s.gen {
		return zero, concurrentModificationError(it.gen, it.s.gen)
	}
	r := it.cur.resources[it.idx]
	it.idx++
	return r, nil
}

// Remove always fails with ErrUnsupportedOperation.
func (it *Iterator[R]) Remove() error {
	return errors.WithStack(ErrUnsupportedOperation)
}

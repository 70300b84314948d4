// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package ressched orders the resources enlisted in a distributed
// transaction by their commit ordering position.
//
// A Scheduler is built once per transaction attempt by the coordinator that
// owns it and is discarded when the attempt finishes. Prepare and commit walk
// it in Natural order, rollback in Reverse order. Resources sharing a
// position keep their arrival order.
//
// A Scheduler is not safe for concurrent use. Adding resources while an
// Iterator or Walk is in progress violates its contract; the traversal
// notices and fails with ErrConcurrentModification.
package ressched

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/txnsched/pkg/util/buildutil"
	"github.com/google/btree"
)

// The degree of the priority btree. Transactions rarely enlist resources at
// more than a handful of distinct positions.
const schedulerBtreeDegree = 8

// Resource is a participant of a distributed transaction. The Scheduler
// reads its position once, when the resource is added, and never otherwise
// inspects it.
type Resource interface {
	CommitOrderingPosition() Priority
}

// bucket holds the resources registered at a single priority, in arrival
// order. A bucket is created by the first Add at its priority and is never
// removed, so it is never empty.
type bucket[R Resource] struct {
	priority  Priority
	resources []R
}

// Less implements the btree.Item interface.
func (b *bucket[R]) Less(than btree.Item) bool {
	return b.priority < than.(*bucket[R]).priority
}

// Scheduler is an ordered mapping from Priority to the resources registered
// at that priority. The zero value is not usable; use NewScheduler.
type Scheduler[R Resource] struct {
	t    *btree.BTree
	size int
	// gen is bumped by every Add. Traversals capture it and fail fast when
	// it moves.
	gen uint64

	// Avoids allocs.
	tmp bucket[R]
}

// NewScheduler returns an empty Scheduler.
func NewScheduler[R Resource]() *Scheduler[R] {
	return &Scheduler[R]{}
}

// Add registers r at its commit ordering position, after every resource
// previously registered at that position. Adding the same resource twice
// registers it twice.
func (s *Scheduler[R]) Add(r R) {
	if s.t == nil {
		// Lazily initialize btree.
		s.t = btree.New(schedulerBtreeDegree)
	}
	p := r.CommitOrderingPosition()
	b := s.get(p)
	if b == nil {
		b = &bucket[R]{priority: p}
		s.t.ReplaceOrInsert(b)
	}
	b.resources = append(b.resources, r)
	s.size++
	s.gen++
}

func (s *Scheduler[R]) get(p Priority) *bucket[R] {
	if s.t == nil {
		return nil
	}
	s.tmp.priority = p
	item := s.t.Get(&s.tmp)
	if item == nil {
		return nil
	}
	return item.(*bucket[R])
}

// NaturalOrderPriorities returns the distinct priorities in ascending order.
// The returned slice is owned by the caller.
func (s *Scheduler[R]) NaturalOrderPriorities() []Priority {
	res := make([]Priority, 0, s.NumPriorities())
	s.ascend(func(b *bucket[R]) bool {
		res = append(res, b.priority)
		return true
	})
	if buildutil.Invariants {
		assertMonotonic(res, Natural)
	}
	return res
}

// ReverseOrderPriorities returns the distinct priorities in descending
// order. The returned slice is owned by the caller.
func (s *Scheduler[R]) ReverseOrderPriorities() []Priority {
	res := make([]Priority, 0, s.NumPriorities())
	s.descend(func(b *bucket[R]) bool {
		res = append(res, b.priority)
		return true
	})
	if buildutil.Invariants {
		assertMonotonic(res, Reverse)
	}
	return res
}

// Resources returns a copy of the resources registered at priority p, in
// arrival order for Natural and in reverse arrival order for Reverse. An
// unknown priority yields an empty, non-nil slice.
func (s *Scheduler[R]) Resources(p Priority, dir Direction) []R {
	b := s.get(p)
	if b == nil {
		return []R{}
	}
	return copyResources(b.resources, dir)
}

func copyResources[R Resource](rs []R, dir Direction) []R {
	res := make([]R, len(rs))
	if dir == Reverse {
		for i, r := range rs {
			res[len(rs)-1-i] = r
		}
	} else {
		copy(res, rs)
	}
	return res
}

// Len returns the total number of registered resources.
func (s *Scheduler[R]) Len() int {
	if buildutil.Invariants {
		var n int
		s.ascend(func(b *bucket[R]) bool {
			n += len(b.resources)
			return true
		})
		if n != s.size {
			panic(errors.AssertionFailedf("scheduler size %d does not match bucket total %d", s.size, n))
		}
	}
	return s.size
}

// NumPriorities returns the number of distinct priorities.
func (s *Scheduler[R]) NumPriorities() int {
	if s.t == nil {
		return 0
	}
	return s.t.Len()
}

// Iterator returns a new Iterator positioned before the first resource in
// Natural order.
func (s *Scheduler[R]) Iterator() *Iterator[R] {
	return &Iterator[R]{s: s, gen: s.gen}
}

// SafeFormat implements the redact.SafeFormatter interface.
func (s *Scheduler[R]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("a resource scheduler with %d resource(s) in %d priority(ies)",
		redact.SafeInt(s.Len()), redact.SafeInt(s.NumPriorities()))
}

func (s *Scheduler[R]) String() string {
	return redact.StringWithoutMarkers(s)
}

func (s *Scheduler[R]) ascend(f func(b *bucket[R]) bool) {
	if s.t == nil {
		return
	}
	s.t.Ascend(func(i btree.Item) bool {
		return f(i.(*bucket[R]))
	})
}

func (s *Scheduler[R]) descend(f func(b *bucket[R]) bool) {
	if s.t == nil {
		return
	}
	s.t.Descend(func(i btree.Item) bool {
		return f(i.(*bucket[R]))
	})
}

// after returns the bucket with the smallest priority greater than p, or nil.
func (s *Scheduler[R]) after(p Priority) *bucket[R] {
	if s.t == nil || p == AlwaysLast {
		return nil
	}
	var next *bucket[R]
	s.tmp.priority = p + 1
	s.t.AscendGreaterOrEqual(&s.tmp, func(i btree.Item) bool {
		next = i.(*bucket[R])
		return false
	})
	return next
}

// before returns the bucket with the largest priority smaller than p, or nil.
func (s *Scheduler[R]) before(p Priority) *bucket[R] {
	if s.t == nil || p == AlwaysFirst {
		return nil
	}
	var prev *bucket[R]
	s.tmp.priority = p - 1
	s.t.DescendLessOrEqual(&s.tmp, func(i btree.Item) bool {
		prev = i.(*bucket[R])
		return false
	})
	return prev
}

func (s *Scheduler[R]) first() *bucket[R] {
	if s.t == nil || s.t.Len() == 0 {
		return nil
	}
	return s.t.Min().(*bucket[R])
}

func (s *Scheduler[R]) last() *bucket[R] {
	if s.t == nil || s.t.Len() == 0 {
		return nil
	}
	return s.t.Max().(*bucket[R])
}

func assertMonotonic(ps []Priority, dir Direction) {
	for i := 1; i < len(ps); i++ {
		if (dir == Natural && ps[i-1] >= ps[i]) || (dir == Reverse && ps[i-1] <= ps[i]) {
			panic(errors.AssertionFailedf("%s priorities out of order at %d: %s, %s", dir, i, ps[i-1], ps[i]))
		}
	}
}

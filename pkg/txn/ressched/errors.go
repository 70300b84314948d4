// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ressched

import "github.com/cockroachdb/errors"

var (
	// ErrOutOfElements is returned when advancing an exhausted Iterator.
	ErrOutOfElements = errors.New("resource iterator bounds reached")

	// ErrUnsupportedOperation is returned by Iterator.Remove. Resources are
	// never removed from a Scheduler.
	ErrUnsupportedOperation = errors.New("resource iterator does not support removal")

	// ErrConcurrentModification marks the error returned when a Scheduler
	// is added to while an Iterator or Walk over it is in progress.
	ErrConcurrentModification = errors.New("resource scheduler modified during traversal")
)

func concurrentModificationError(expected, actual uint64) error {
	return errors.Mark(
		errors.AssertionFailedf(
			"resource scheduler modified during traversal: generation %d, expected %d",
			actual, expected),
		ErrConcurrentModification)
}

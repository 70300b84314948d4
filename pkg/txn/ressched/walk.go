// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ressched

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/txnsched/pkg/util/log"
)

// Walk calls fn for every resource in the order given by dir and stops at
// the first error, which is returned wrapped with the resource's priority.
// Natural order is the order in which resources are prepared and committed;
// Reverse order is the order in which they are rolled back. The context
// passed to fn carries the current priority as a log tag.
//
// fn must not add to the Scheduler. If it does, Walk returns an error
// matching ErrConcurrentModification.
func (s *Scheduler[R]) Walk(
	ctx context.Context, dir Direction, fn func(context.Context, R) error,
) error {
	gen := s.gen
	b := s.first()
	if dir == Reverse {
		b = s.last()
	}
	for b != nil {
		bctx := logtags.AddTag(ctx, "pri", b.priority)
		n := len(b.resources)
		log.VEventf(bctx, 2, "visiting %d resource(s) in %s order", n, dir)
		for i := 0; i < n; i++ {
			j := i
			if dir == Reverse {
				j = n - 1 - i
			}
			if err := fn(bctx, b.resources[j]); err != nil {
				return errors.Wrapf(err, "resource %d of %d at priority %s", i+1, n, b.priority)
			}
			if s.gen != gen {
				return concurrentModificationError(gen, s.gen)
			}
		}
		if dir == Reverse {
			b = s.before(b.priority)
		} else {
			b = s.after(b.priority)
		}
	}
	return nil
}

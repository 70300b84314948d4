// Copyright 2016 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package syncutil

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/txnsched/pkg/util/buildutil"
)

// A Mutex is a mutual exclusion lock.
type Mutex struct {
	sync.Mutex
}

// AssertHeld panics in invariant builds if the mutex is not locked. It does
// not check which goroutine holds the lock.
func (m *Mutex) AssertHeld() {
	if !buildutil.Invariants {
		return
	}
	if m.TryLock() {
		m.Unlock()
		panic(errors.AssertionFailedf("mutex is not held"))
	}
}

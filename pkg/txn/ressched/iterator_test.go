// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ressched

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestIteratorOutOfElements(t *testing.T) {
	s := NewScheduler[*testResource]()
	it := s.Iterator()
	_, err := it.Next()
	require.True(t, errors.Is(err, ErrOutOfElements), "%+v", err)

	s = NewScheduler[*testResource]()
	a := res("a", 1)
	s.Add(a)
	it = s.Iterator()
	// Next works without a preceding HasNext.
	r, err := it.Next()
	require.NoError(t, err)
	require.Same(t, a, r)
	require.False(t, it.HasNext())
	_, err = it.Next()
	require.True(t, errors.Is(err, ErrOutOfElements), "%+v", err)
	// Repeated calls keep failing the same way.
	_, err = it.Next()
	require.True(t, errors.Is(err, ErrOutOfElements), "%+v", err)
}

func TestIteratorHasNextIsIdempotent(t *testing.T) {
	s := NewScheduler[*testResource]()
	s.Add(res("a", 1))
	s.Add(res("b", 2))
	it := s.Iterator()
	for i := 0; i < 3; i++ {
		require.True(t, it.HasNext())
	}
	r, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, "a", r.name)
	require.True(t, it.HasNext())
	require.True(t, it.HasNext())
	r, err = it.Next()
	require.NoError(t, err)
	require.Equal(t, "b", r.name)
	require.False(t, it.HasNext())
}

func TestIteratorRemove(t *testing.T) {
	s := NewScheduler[*testResource]()
	s.Add(res("a", 1))
	it := s.Iterator()
	_, err := it.Next()
	require.NoError(t, err)

	err = it.Remove()
	require.True(t, errors.Is(err, ErrUnsupportedOperation), "%+v", err)
	require.Equal(t, 1, s.Len())
	require.Len(t, s.Resources(1, Natural), 1)
}

func TestIteratorNotRestartable(t *testing.T) {
	s := NewScheduler[*testResource]()
	s.Add(res("a", 1))
	s.Add(res("b", 1))
	it := s.Iterator()
	require.Len(t, drain(t, it), 2)
	require.Empty(t, drain(t, it))
	require.Len(t, drain(t, s.Iterator()), 2)
}

func TestIteratorConcurrentModification(t *testing.T) {
	s := NewScheduler[*testResource]()
	s.Add(res("a", 1))
	s.Add(res("b", 3))
	it := s.Iterator()
	_, err := it.Next()
	require.NoError(t, err)

	s.Add(res("c", 2))
	require.True(t, it.HasNext())
	_, err = it.Next()
	require.True(t, errors.Is(err, ErrConcurrentModification), "%+v", err)
	require.True(t, errors.HasAssertionFailure(err), "%+v", err)

	// A fresh iterator sees the new resource.
	require.Equal(t, []string{"a", "c", "b"}, names(drain(t, s.Iterator())))
}

func TestIteratorExhaustedIsFinal(t *testing.T) {
	s := NewScheduler[*testResource]()
	s.Add(res("a", 1))
	it := s.Iterator()
	require.Len(t, drain(t, it), 1)

	s.Add(res("b", 2))
	require.False(t, it.HasNext())
	_, err := it.Next()
	require.True(t, errors.Is(err, ErrOutOfElements), "%+v", err)
}

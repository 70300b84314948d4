// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package testutils

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDataPath returns the path to a file or directory under the calling
// package's testdata directory. The test fails if the path does not exist.
func TestDataPath(t testing.TB, relative ...string) string {
	t.Helper()
	p := filepath.Join(append([]string{"testdata"}, relative...)...)
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("test data %s: %v", p, err)
	}
	return p
}

// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	t.Cleanup(SetOutput(&buf))
	logging.mu.Lock()
	prevNow := logging.mu.now
	logging.mu.now = func() time.Time {
		return time.Date(2026, 10, 14, 9, 30, 1, 123456000, time.UTC)
	}
	logging.mu.Unlock()
	t.Cleanup(func() {
		logging.mu.Lock()
		logging.mu.now = prevNow
		logging.mu.Unlock()
	})
	return &buf
}

func TestSeverityPrefix(t *testing.T) {
	buf := captureLogs(t)
	ctx := context.Background()

	Infof(ctx, "one")
	Warningf(ctx, "two")
	Errorf(ctx, "three")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for i, prefix := range []string{"I261014 09:30:01.123456 ", "W261014", "E261014"} {
		require.True(t, strings.HasPrefix(lines[i], prefix), "line %d: %q", i, lines[i])
	}
	require.Contains(t, lines[0], "log_test.go:")
	require.True(t, strings.HasSuffix(lines[2], " three"))
}

func TestContextTags(t *testing.T) {
	buf := captureLogs(t)
	ctx := logtags.AddTag(context.Background(), "txn", "abc")
	ctx = logtags.AddTag(ctx, "pri", 5)

	Infof(ctx, "hello %d", 7)
	require.Contains(t, buf.String(), "[txn=abc,pri=5] hello 7\n")
}

func TestVEventf(t *testing.T) {
	buf := captureLogs(t)
	ctx := context.Background()

	defer SetVerbosity(1)()
	require.True(t, V(1))
	require.False(t, V(2))

	VEventf(ctx, 2, "hidden")
	require.Empty(t, buf.String())
	VEventf(ctx, 1, "shown")
	require.Contains(t, buf.String(), "shown")
}

func TestRedactable(t *testing.T) {
	buf := captureLogs(t)
	ctx := context.Background()

	Infof(ctx, "resource %s at %d", "secret", redact.Safe(3))
	require.Contains(t, buf.String(), "resource secret at 3\n")

	buf.Reset()
	defer SetRedactable(true)()
	Infof(ctx, "resource %s at %d", "secret", redact.Safe(3))
	require.Contains(t, buf.String(), "resource ‹secret› at 3\n")
}

func TestSeverityString(t *testing.T) {
	require.Equal(t, "WARNING", Severity_WARNING.String())
	require.Equal(t, "UNKNOWN", Severity(42).String())
}

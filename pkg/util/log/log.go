// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log is a small context-aware logger. Entries carry the log tags
// of the context they are emitted with, and arguments are formatted through
// redact so that the output can optionally keep redaction markers around
// unsafe values.
package log

import (
	"context"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/txnsched/pkg/util/syncutil"
)

type loggerT struct {
	verbosity  atomic.Int32
	redactable atomic.Bool

	mu struct {
		syncutil.Mutex
		w   io.Writer
		now func() time.Time
	}
}

var logging = func() *loggerT {
	l := &loggerT{}
	l.mu.w = os.Stderr
	l.mu.now = time.Now
	return l
}()

// SetOutput redirects log entries to w and returns a function that restores
// the previous writer.
func SetOutput(w io.Writer) (restore func()) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prev := logging.mu.w
	logging.mu.w = w
	return func() {
		logging.mu.Lock()
		defer logging.mu.Unlock()
		logging.mu.w = prev
	}
}

// SetVerbosity sets the level up to which V returns true and VEventf
// emits, and returns a function that restores the previous level.
func SetVerbosity(level int32) (restore func()) {
	prev := logging.verbosity.Swap(level)
	return func() { logging.verbosity.Store(prev) }
}

// SetRedactable controls whether entries keep redaction markers.
func SetRedactable(redactable bool) (restore func()) {
	prev := logging.redactable.Swap(redactable)
	return func() { logging.redactable.Store(prev) }
}

// V returns true if the configured verbosity is at least level.
func V(level int32) bool {
	return logging.verbosity.Load() >= level
}

// Infof logs to the INFO severity.
func Infof(ctx context.Context, format string, args ...interface{}) {
	logging.output(ctx, Severity_INFO, 1, format, args)
}

// Warningf logs to the WARNING severity.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	logging.output(ctx, Severity_WARNING, 1, format, args)
}

// Errorf logs to the ERROR severity.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	logging.output(ctx, Severity_ERROR, 1, format, args)
}

// VEventf logs an INFO entry if the verbosity is at least level.
func VEventf(ctx context.Context, level int32, format string, args ...interface{}) {
	if !V(level) {
		return
	}
	logging.output(ctx, Severity_INFO, 1, format, args)
}

func (l *loggerT) output(
	ctx context.Context, sev Severity, depth int, format string, args []interface{},
) {
	msg := redact.Sprintf(format, args...)
	l.mu.Lock()
	defer l.mu.Unlock()
	e := makeEntry(ctx, sev, l.mu.now(), depth+1, msg)
	l.writeLocked(e.format(l.redactable.Load()))
}

// l.mu is held.
func (l *loggerT) writeLocked(b []byte) {
	l.mu.AssertHeld()
	// A failed write has nowhere else to be reported.
	_, _ = l.mu.w.Write(b)
}

// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
)

type logEntry struct {
	sev  Severity
	ts   time.Time
	file string
	line int
	tags *logtags.Buffer
	msg  redact.RedactableString
}

func makeEntry(
	ctx context.Context, sev Severity, now time.Time, depth int, msg redact.RedactableString,
) logEntry {
	e := logEntry{sev: sev, ts: now, msg: msg, file: "???", line: 1}
	if _, file, line, ok := runtime.Caller(depth + 1); ok {
		e.file, e.line = filepath.Base(file), line
	}
	if ctx != nil {
		e.tags = logtags.FromContext(ctx)
	}
	return e
}

// format renders the entry as
//
//	Lyymmdd hh:mm:ss.uuuuuu file:line [tags] msg
//
// where L is the first letter of the severity.
func (e logEntry) format(redactable bool) []byte {
	var buf bytes.Buffer
	buf.WriteByte(e.sev.char())
	buf.WriteString(e.ts.UTC().Format("060102 15:04:05.000000"))
	buf.WriteByte(' ')
	buf.WriteString(e.file)
	buf.WriteByte(':')
	buf.WriteString(strconv.Itoa(e.line))
	buf.WriteByte(' ')
	if e.tags != nil && len(e.tags.Get()) > 0 {
		buf.WriteByte('[')
		buf.WriteString(e.tags.String())
		buf.WriteString("] ")
	}
	if redactable {
		buf.WriteString(string(e.msg))
	} else {
		buf.WriteString(e.msg.StripMarkers())
	}
	if b := buf.Bytes(); b[len(b)-1] != '\n' {
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

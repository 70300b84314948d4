// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

// Severity is the importance of a log entry.
type Severity int

// Severities, in increasing order of importance.
const (
	Severity_INFO Severity = iota
	Severity_WARNING
	Severity_ERROR
)

var severityNames = [...]string{
	Severity_INFO:    "INFO",
	Severity_WARNING: "WARNING",
	Severity_ERROR:   "ERROR",
}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "UNKNOWN"
	}
	return severityNames[s]
}

// char is the one-letter prefix of an entry with this severity.
func (s Severity) char() byte {
	return s.String()[0]
}

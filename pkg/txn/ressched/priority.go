// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ressched

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Priority is the commit ordering position of a resource. Lower values are
// addressed earlier during prepare and commit, and later during rollback.
type Priority int32

const (
	// AlwaysFirst sorts before every other priority.
	AlwaysFirst Priority = math.MinInt32
	// AlwaysLast sorts after every other priority.
	AlwaysLast Priority = math.MaxInt32
	// DefaultPriority is the position of resources that carry no explicit
	// ordering hint.
	DefaultPriority Priority = 0
)

const (
	alwaysFirstName = "always-first"
	alwaysLastName  = "always-last"
)

// SafeFormat implements the redact.SafeFormatter interface.
func (p Priority) SafeFormat(w redact.SafePrinter, _ rune) {
	switch p {
	case AlwaysFirst:
		w.SafeString(alwaysFirstName)
	case AlwaysLast:
		w.SafeString(alwaysLastName)
	default:
		w.SafeInt(redact.SafeInt(p))
	}
}

func (p Priority) String() string {
	return redact.StringWithoutMarkers(p)
}

// ParsePriority parses a decimal int32 or one of the sentinel names
// "always-first" and "always-last".
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case alwaysFirstName:
		return AlwaysFirst, nil
	case alwaysLastName:
		return AlwaysLast, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid commit ordering position %q", s)
	}
	return Priority(v), nil
}

// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ressched

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Direction selects the order in which a Scheduler's resources are
// traversed.
type Direction int

const (
	// Natural visits priorities in ascending order and the resources of a
	// priority in arrival order. Prepare and commit use it.
	Natural Direction = iota
	// Reverse visits priorities in descending order and the resources of a
	// priority in reverse arrival order. Rollback uses it.
	Reverse
)

var directionNames = [...]string{
	Natural: "natural",
	Reverse: "reverse",
}

// SafeFormat implements the redact.SafeFormatter interface.
func (d Direction) SafeFormat(w redact.SafePrinter, _ rune) {
	if d < 0 || int(d) >= len(directionNames) {
		w.Printf("Direction(%d)", redact.SafeInt(d))
		return
	}
	w.SafeString(redact.SafeString(directionNames[d]))
}

func (d Direction) String() string {
	return redact.StringWithoutMarkers(d)
}

// ParseDirection parses "natural" or "reverse".
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(d), nil
		}
	}
	return 0, errors.Newf("unknown direction %q", s)
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package header

import (
	"regexp"
	"strings"
)

const (
	// DefaultGroup is the group used when a help line does not name one.
	DefaultGroup = "misc"
	// Format is the expected shape of the text following the help marker.
	Format = "[GROUP] DESCRIPTION"
	// Sentinel is parsed in place of a help line when a file has none.
	// It always yields the default group and an empty description.
	Sentinel = "#? [" + DefaultGroup + "]"
)

var helpLine = regexp.MustCompile(`^# ?\? *(?:\[([^\]]*)\] *)?(.*)$`)

// Header is the group and description extracted from a help line.
type Header struct {
	Group string
	Help  string
}

// Valid reports whether the header carries a description.
func (h Header) Valid() bool {
	return h.Help != ""
}

// Parse matches line against the help line grammar.
// The boolean result is false when the line is not a help line at all,
// which is different from a help line with an empty description.
func Parse(line string) (Header, bool) {
	m := helpLine.FindStringSubmatch(line)
	if m == nil {
		return Header{}, false
	}

	group := strings.ToLower(m[1])
	if group == "" {
		group = DefaultGroup
	}

	return Header{Group: group, Help: m[2]}, true
}

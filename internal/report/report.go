// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"cmp"
	"errors"
	"io"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matt-FFFFFF/cmdhelp/internal/color"
	"github.com/matt-FFFFFF/cmdhelp/internal/scan"
)

const (
	columnGap    = 2
	headerPrefix = "# "
	headerColour = color.FgHiBlue
	pathColour   = color.FgHiCyan
)

var (
	// ErrWrite is returned when the report cannot be written.
	ErrWrite = errors.New("failed to write report")
	// ErrMarshal is returned when the report cannot be encoded.
	ErrMarshal = errors.New("failed to encode report")
)

// Options controls how the text report is written.
type Options struct {
	Color bool // Whether to wrap headings and paths in ANSI colour codes
}

// DefaultOptions colours the report when standard output is a terminal.
func DefaultOptions() Options {
	return Options{Color: color.Enabled()}
}

// Group is a run of commands sharing a group, in path order.
type Group struct {
	Name     string
	Commands []scan.Command
}

// Sort orders cmds by group, then by path.
func Sort(cmds []scan.Command) {
	slices.SortFunc(cmds, func(a, b scan.Command) int {
		return cmp.Or(
			cmp.Compare(a.Group, b.Group),
			cmp.Compare(a.Path, b.Path),
		)
	})
}

// Groups returns cmds sorted and split into groups. The input is not modified.
func Groups(cmds []scan.Command) []Group {
	sorted := slices.Clone(cmds)
	Sort(sorted)

	var groups []Group

	for _, c := range sorted {
		if n := len(groups); n > 0 && groups[n-1].Name == c.Group {
			groups[n-1].Commands = append(groups[n-1].Commands, c)
			continue
		}

		groups = append(groups, Group{Name: c.Group, Commands: []scan.Command{c}})
	}

	return groups
}

// ColumnWidth is the width of the path column: the longest path plus a gap.
// It is zero when there are no commands.
func ColumnWidth(cmds []scan.Command) int {
	if len(cmds) == 0 {
		return 0
	}

	longest := 0
	for _, c := range cmds {
		longest = max(longest, utf8.RuneCountInString(c.Path))
	}

	return longest + columnGap
}

// WriteText writes the grouped listing to w.
// Nothing is written when cmds is empty.
func WriteText(w io.Writer, cmds []scan.Command, opts Options) error {
	width := ColumnWidth(cmds)
	sb := strings.Builder{}

	for _, g := range Groups(cmds) {
		sb.WriteString(paint(headerPrefix+capitalize(g.Name), headerColour, opts.Color))
		sb.WriteString("\n")

		for _, c := range g.Commands {
			sb.WriteString(paint(pad(c.Path, width), pathColour, opts.Color))
			sb.WriteString(c.Help)
			sb.WriteString("\n")
		}

		sb.WriteString("\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Join(ErrWrite, err)
	}

	return nil
}

func paint(s string, c color.Code, enabled bool) string {
	if !enabled {
		return s
	}

	return color.Wrap(s, c)
}

// pad left-aligns s in a field of width runes.
func pad(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}

	return s + strings.Repeat(" ", n)
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	sbPadding = 16 // padding for the strings.Builder
)

const (
	reset  = "\033[0m"
	prefix = "\033["
	suffix = "m"
)

// Code represents an ANSI control code for text formatting.
type Code int

// Control codes for text formatting.
const (
	Reset Code = iota
	Bold
	Faint
)

// Foreground text colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Foreground Hi-Intensity text colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

// enabled is evaluated once at start-up; tests replace it with gostub.
var enabled = IsTerminal(os.Stdout)

// Wrap surrounds str with the given codes and a trailing reset,
// whether or not colour is enabled for standard output.
func Wrap(str string, colorCodes ...Code) string {
	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + sbPadding)
	writeCodes(&sb, colorCodes)
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

// Enabled reports whether standard output is an interactive terminal.
func Enabled() bool {
	return enabled
}

// IsTerminal reports whether f is connected to an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

func writeCodes(sb *strings.Builder, codes []Code) {
	sb.WriteString(prefix)

	for i, code := range codes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
}

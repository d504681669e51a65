// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scan

import (
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/cmdhelp/internal/header"
)

var (
	// ErrInvalidHeader is returned when a command has no help line, or its help line has no description.
	ErrInvalidHeader = errors.New("invalid help header")
	// ErrWalk is returned when the directory tree cannot be walked.
	ErrWalk = errors.New("failed to walk directory")
	// ErrReadFile is returned when a command file cannot be read.
	ErrReadFile = errors.New("failed to read file")
	// ErrLocate is returned when the running program cannot be located.
	ErrLocate = errors.New("failed to locate executable")
)

// InvalidHeaderError names the command file that lacks a usable help line.
type InvalidHeaderError struct {
	Path string
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("%s: %s, expected \"#? %s\"", e.Path, ErrInvalidHeader, header.Format)
}

// Is makes errors.Is(err, ErrInvalidHeader) true.
func (e *InvalidHeaderError) Is(target error) bool {
	return target == ErrInvalidHeader
}

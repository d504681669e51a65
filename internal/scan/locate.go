// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scan

import (
	"errors"
	"os"
	"path/filepath"
)

// Executable returns the path of the running program.
var Executable = os.Executable

// Locate resolves the running program and returns the directory to scan,
// which is the one containing the program, along with the program's own path.
func Locate() (root, self string, err error) {
	exe, err := Executable()
	if err != nil {
		return "", "", errors.Join(ErrLocate, err)
	}

	self, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", "", errors.Join(ErrLocate, err)
	}

	self, err = filepath.Abs(self)
	if err != nil {
		return "", "", errors.Join(ErrLocate, err)
	}

	return filepath.Dir(self), self, nil
}

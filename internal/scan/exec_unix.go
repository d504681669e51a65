// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build unix

package scan

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

func accessExecutable(path string, _ fs.FileMode) bool {
	return unix.Access(path, unix.X_OK) == nil
}

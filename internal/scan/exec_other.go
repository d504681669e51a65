// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !unix

package scan

import "io/fs"

func accessExecutable(_ string, mode fs.FileMode) bool {
	return mode.Perm()&0o111 != 0
}

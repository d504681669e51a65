// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scan finds command scripts below a directory and reads their help headers.
//
// A file is a command when it is a regular file, executable by the current user,
// has no extension, does not start with an underscore and is not the running
// program itself. Directories are always descended into.
//
// Every command must carry a help line (see package header) with a description.
// The first command without one aborts the scan; Scan never returns a partial list.
package scan

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package header recognises the help comment that describes a command script.
//
// A help line looks like this:
//
//	#? [Group] Short description of the command
//
// The space between "#" and "?" is optional, as is the bracketed group.
// Only the first help line in a file is used.
package header

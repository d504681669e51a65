// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scan

// Command is a discovered command script.
type Command struct {
	// Path is relative to the parent of the scan root, so it starts with the root's own name.
	Path string
	// Group is lowercase and never empty.
	Group string
	// Help is the one line description. It is never empty.
	Help string
}

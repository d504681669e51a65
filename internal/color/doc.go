// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI escape codes.
// Colour is enabled only when standard output is an interactive terminal,
// detected once at start-up using the golang.org/x/term package.
package color

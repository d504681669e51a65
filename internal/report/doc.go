// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report renders discovered commands grouped by category.
//
// The text report prints a "# Group" heading per group followed by one
// aligned line per command. The YAML report carries the same grouping for
// scripts and editors.
package report

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scan

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Reasons reported in debug logs for entries that are not commands.
const (
	reasonUnderscore = "underscore prefix"
	reasonExtension  = "has extension"
	reasonSelf       = "running program"
	reasonDangling   = "dangling symlink"
	reasonIrregular  = "not a regular file"
	reasonNotExec    = "not executable"
)

// skipReason returns why the entry is not a command, or "" when it is one.
func skipReason(fsys afero.Fs, path string, info fs.FileInfo, self string) string {
	name := info.Name()

	switch {
	case strings.HasPrefix(name, "_"):
		return reasonUnderscore
	case extension(name) != "":
		return reasonExtension
	case self != "" && path == self:
		return reasonSelf
	}

	mode := info.Mode()
	if mode&fs.ModeSymlink != 0 {
		target, err := fsys.Stat(path)
		if err != nil {
			return reasonDangling
		}

		mode = target.Mode()
	}

	if !mode.IsRegular() {
		return reasonIrregular
	}

	if !isExecutable(fsys, path, mode) {
		return reasonNotExec
	}

	return ""
}

// extension returns the final suffix of name. Leading dots mark hidden files,
// not extensions, and a trailing lone dot is not an extension either.
func extension(name string) string {
	ext := filepath.Ext(strings.TrimLeft(name, "."))
	if ext == "." {
		return ""
	}

	return ext
}

// isExecutable asks the operating system when scanning the real filesystem,
// so ownership and ACLs are honoured. Other filesystems only have mode bits.
func isExecutable(fsys afero.Fs, path string, mode fs.FileMode) bool {
	if _, ok := fsys.(*afero.OsFs); ok {
		return accessExecutable(path, mode)
	}

	return mode.Perm()&0o111 != 0
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build unix

package scan

import (
	"context"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOsFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
	require.NoError(t, os.Chmod(path, mode))
}

func TestScan_OsFs(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "scripts")

	writeOsFile(t, filepath.Join(root, "lint"), "#!/bin/sh\n#? [Check] Run linters\n", 0o755)
	writeOsFile(t, filepath.Join(root, "sub", "fmt"), "#!/bin/sh\n#? [Check] Format code\n", 0o700)
	writeOsFile(t, filepath.Join(root, "readme"), "#? not executable\n", 0o644)
	writeOsFile(t, filepath.Join(dir, "outside"), "#? [Linked] Lives outside the root\n", 0o755)

	require.NoError(t, os.Symlink(filepath.Join(dir, "outside"), filepath.Join(root, "linked")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), filepath.Join(root, "dangling")))
	require.NoError(t, syscall.Mkfifo(filepath.Join(root, "pipe"), 0o755))

	cmds, err := Scan(context.Background(), Options{Root: root})
	require.NoError(t, err)

	assert.ElementsMatch(t, []Command{
		{Path: filepath.Join("scripts", "lint"), Group: "check", Help: "Run linters"},
		{Path: filepath.Join("scripts", "sub", "fmt"), Group: "check", Help: "Format code"},
		{Path: filepath.Join("scripts", "linked"), Group: "linked", Help: "Lives outside the root"},
	}, cmds)
}

func TestScan_OsFsSymlinkedDirectoryNotFollowed(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "scripts")

	writeOsFile(t, filepath.Join(dir, "elsewhere", "tool"), "#? [X] Should not be listed\n", 0o755)
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.Symlink(filepath.Join(dir, "elsewhere"), filepath.Join(root, "link")))

	cmds, err := Scan(context.Background(), Options{Root: root})
	require.NoError(t, err)
	assert.Empty(t, cmds)
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scan

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/cmdhelp/internal/ctxlog"
	"github.com/matt-FFFFFF/cmdhelp/internal/header"
	"github.com/spf13/afero"
)

// FsFactory returns the filesystem used when Options.Fs is nil.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Options configures a scan.
type Options struct {
	// Root is the directory to scan.
	Root string
	// Self is the path of the running program, which is never listed.
	Self string
	// Fs is the filesystem to scan. Defaults to FsFactory().
	Fs afero.Fs
}

// Scan walks opts.Root and returns one Command per command file found.
// The order of the result is the walk order and carries no meaning.
func Scan(ctx context.Context, opts Options) ([]Command, error) {
	fsys := opts.Fs
	if fsys == nil {
		fsys = FsFactory()
	}

	root := filepath.Clean(opts.Root)
	base := filepath.Dir(root)

	self := opts.Self
	if self != "" {
		self = filepath.Clean(self)
	}

	logger := ctxlog.Logger(ctx).With("root", root)
	logger.Debug("scanning for commands")

	var cmds []Command

	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			return errors.Join(ErrWalk, walkErr)
		}

		if info.IsDir() {
			return nil
		}

		if reason := skipReason(fsys, path, info, self); reason != "" {
			logger.Debug("skipping entry", "path", path, "reason", reason)
			return nil
		}

		h, err := readHeader(fsys, path)
		if err != nil {
			return err
		}

		if !h.Valid() {
			return &InvalidHeaderError{Path: path}
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return errors.Join(ErrWalk, err)
		}

		logger.Debug("command discovered", "path", rel, "group", h.Group)
		cmds = append(cmds, Command{Path: rel, Group: h.Group, Help: h.Help})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return cmds, nil
}

// readHeader returns the first help line of the file, or the parsed sentinel
// when the file has none.
func readHeader(fsys afero.Fs, path string) (header.Header, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return header.Header{}, errors.Join(ErrReadFile, err)
	}
	defer f.Close() // nolint:errcheck

	r := bufio.NewReader(f)

	for {
		line, readErr := r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")

			if h, ok := header.Parse(line); ok {
				return h, nil
			}
		}

		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return header.Header{}, errors.Join(ErrReadFile, readErr)
		}
	}

	h, _ := header.Parse(header.Sentinel)

	return h, nil
}

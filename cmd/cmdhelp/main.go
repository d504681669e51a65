// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the cmdhelp command-line application.
// Build it into the command directory it should list.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/cmdhelp"
	"github.com/matt-FFFFFF/cmdhelp/cmd"
	"github.com/matt-FFFFFF/cmdhelp/internal/ctxlog"
)

func main() {
	ctx := ctxlog.New(context.Background(), ctxlog.DefaultLogger)

	cmd.RootCmd.Version = fmt.Sprintf("%s (commit: %s)", cmdhelp.Version, cmdhelp.Commit)

	if err := cmd.RootCmd.Run(ctx, os.Args); err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Logger(ctx).Info("command completed successfully")
}

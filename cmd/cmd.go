// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/cmdhelp/internal/ctxlog"
	"github.com/matt-FFFFFF/cmdhelp/internal/report"
	"github.com/matt-FFFFFF/cmdhelp/internal/scan"
	"github.com/urfave/cli/v3"
)

const (
	formatFlag = "format"
	formatText = "text"
	formatYAML = "yaml"
)

var (
	// ErrUnknownFormat is returned when --format is not one of the supported values.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrScan is returned when the command directory cannot be scanned.
	ErrScan = errors.New("failed to list commands")
)

// Locate finds the directory to scan and the running program. Replaced in tests.
var Locate = scan.Locate

// RootCmd is the root command for the CLI.
var RootCmd = New()

// New returns the root command. It takes no arguments: the directory listed is
// always the one containing the running program.
func New() *cli.Command {
	return &cli.Command{
		Name:      "cmdhelp",
		Usage:     "List the commands in this directory",
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Description: `cmdhelp lists the executable scripts that live next to it, grouped by category.

Each script describes itself with a help line near the top of the file:

    #? [Group] Short description

The group is optional. Scripts with an extension, scripts whose name starts
with an underscore and files that are not executable are not listed.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     formatFlag,
				Aliases:  []string{"o"},
				Usage:    "Output format, one of: " + formatText + ", " + formatYAML,
				Value:    formatText,
				OnlyOnce: true,
			},
		},
		HideHelpCommand: true,
		Action:          actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	format := cmd.String(formatFlag)
	if format != formatText && format != formatYAML {
		return fmt.Errorf("%w %q, expected %q or %q", ErrUnknownFormat, format, formatText, formatYAML)
	}

	root, self, err := Locate()
	if err != nil {
		return errors.Join(ErrScan, err)
	}

	logger.Debug("located command directory", "root", root, "self", self)

	cmds, err := scan.Scan(ctx, scan.Options{Root: root, Self: self})
	if err != nil {
		return errors.Join(ErrScan, err)
	}

	logger.Debug("scan complete", "commands", len(cmds))

	if format == formatYAML {
		return report.WriteYAML(cmd.Writer, cmds)
	}

	return report.WriteText(cmd.Writer, cmds, report.DefaultOptions())
}

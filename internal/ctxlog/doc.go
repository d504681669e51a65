// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger through a context.Context.
//
// The default logger writes human-readable lines to standard error so that
// standard output stays reserved for the command listing. The level is read
// from the CMDHELP_LOG_LEVEL environment variable.
package ctxlog

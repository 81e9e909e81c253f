// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a slog.Logger in a context.Context so that every
// layer of the module logs through the same handler without plumbing a
// logger argument everywhere. The log level is read from the
// DMUTIL_LOG_LEVEL environment variable at startup.
package ctxlog

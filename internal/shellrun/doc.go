// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shellrun executes a shell command with stdout and stderr merged
// into one stream, delivering each line as it is produced rather than
// after the process exits. A non-zero exit code is data, not an error:
// callers inspect Result.ExitCode and decide for themselves.
package shellrun

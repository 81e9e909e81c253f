// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress runs a task on a background goroutine while the calling
// goroutine animates a progress bar paced by a caller-supplied duration
// estimate. The estimate is a display device only: the task is never
// interrupted, and a task that outlives its estimate simply holds the bar
// at 100% until it finishes. A task that beats its estimate has the
// remaining progress drained immediately so the bar always terminates at
// 100%.
//
// Tasks may optionally receive a Handle to write messages onto or above
// the live bar. All display mutation is serialized with a mutex shared by
// the pacing loop and the Handle.
package progress

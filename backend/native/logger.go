// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/texture"
)

// override holds a backend-specific logger. When unset, the backend logs
// through texture.Logger().
var override atomic.Pointer[slog.Logger]

// slogger returns the package-level logger.
func slogger() *slog.Logger {
	if l := override.Load(); l != nil {
		return l
	}
	return texture.Logger()
}

// SetLogger gives the HAL backend its own logger. Usually unnecessary:
// by default the backend follows texture.SetLogger. Pass nil to go back to
// following it.
func SetLogger(l *slog.Logger) {
	override.Store(l)
}

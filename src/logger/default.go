// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import "sync"

var (
	installOnce   sync.Once
	defaultMu     sync.RWMutex
	defaultLogger Logger = NewCLILogger()
)

// Install sets the process-wide default logger used as the warning sink for
// non-fatal parse diagnostics. Only the first call takes effect; repeated
// invocations are no-ops, so entry points can install their logger without
// coordinating with each other.
func Install(l Logger) {
	installOnce.Do(func() {
		if l == nil {
			return
		}
		defaultMu.Lock()
		defaultLogger = l
		defaultMu.Unlock()
	})
}

// Default returns the process-wide default logger.
//
// Default is safe for concurrent use by multiple goroutines.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

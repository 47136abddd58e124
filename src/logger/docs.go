// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides logging abstractions for the TLS certificate bundle parser.
// It supports two output modes: human-readable CLI output and structured JSON
// logging for server mode. The package also carries the process-wide default
// logger used as the warning sink for non-fatal parse diagnostics (unknown PEM
// tags, dropped certificate blocks).
package logger

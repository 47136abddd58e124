// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the TLS certificate bundle parser.
// It implements a Cobra-based CLI that parses certificate bundles (PEM, DER, or
// PKCS#12 containers), reconstructs certificate chains, and composes server-ready
// PEM bundles with optional private keys. Output formats include the concatenated
// bundle itself, a JSON record dump, and table/tree views for inspection.
// The package handles file I/O, context cancellation, and integrates with the
// logger package for warnings and error reporting.
package cli

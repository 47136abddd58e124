// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes the certificate bundle parser over the Model
// Context Protocol. It is pure host-boundary plumbing: tool handlers
// deserialize caller-supplied bytes and records, delegate to the x509bundle
// and x509chain packages, and marshal the results back as JSON or text.
// No parsing or chain logic lives here.
package mcpserver

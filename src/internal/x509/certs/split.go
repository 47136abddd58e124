// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"encoding/base64"
	"strings"
)

const (
	beginPrefix = "-----BEGIN "
	endPrefix   = "-----END "
	markerClose = "-----"
)

// Block is a single tagged PEM block recovered from raw text, with its
// base64 payload already decoded to DER bytes.
type Block struct {
	// Tag is the text between BEGIN/END markers, e.g. "CERTIFICATE".
	Tag string
	// Bytes is the decoded DER payload.
	Bytes []byte
}

// SplitPEM tokenizes raw text into tagged PEM blocks.
//
// The scanner walks the input line by line looking for a BEGIN marker,
// collects non-empty trimmed lines until the matching END marker with the
// same tag, and base64-decodes the concatenated payload. Malformed blocks
// are skipped, never fatal:
//
//   - A BEGIN marker with no matching END marker is skipped and scanning
//     resumes at the line after the BEGIN marker.
//   - A block whose payload fails to base64-decode is dropped and scanning
//     resumes after its END marker.
//
// Zero recovered blocks is a valid outcome; callers decide whether to fall
// back to a raw-DER interpretation.
func SplitPEM(data []byte) []Block {
	var blocks []Block

	lines := strings.Split(string(data), "\n")
	i := 0
	for i < len(lines) {
		tag, ok := beginTag(lines[i])
		if !ok {
			i++
			continue
		}

		end := i + 1
		for end < len(lines) && strings.TrimSpace(lines[end]) != endPrefix+tag+markerClose {
			end++
		}
		if end == len(lines) {
			// No matching END marker; resume at the next line.
			i++
			continue
		}

		var payload strings.Builder
		for _, line := range lines[i+1 : end] {
			payload.WriteString(strings.TrimSpace(line))
		}

		der, err := base64.StdEncoding.DecodeString(payload.String())
		if err == nil {
			blocks = append(blocks, Block{Tag: tag, Bytes: der})
		}

		i = end + 1
	}

	return blocks
}

// beginTag extracts the tag from a BEGIN marker line, reporting whether the
// line is one.
func beginTag(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, beginPrefix) || !strings.HasSuffix(trimmed, markerClose) {
		return "", false
	}

	tag := strings.TrimSuffix(strings.TrimPrefix(trimmed, beginPrefix), markerClose)
	if tag == "" {
		return "", false
	}
	return strings.TrimSpace(tag), true
}

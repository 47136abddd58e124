// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509bundle

import (
	"strings"

	"github.com/H0llyW00dzZ/tls-cert-bundle-parser/src/internal/helper/gc"
)

// Generate composes a server-ready bundle: the chain members' PEM text
// concatenated in order, followed by a blank line and the private key when
// one is supplied. The result is trimmed of leading and trailing whitespace.
//
// Generate performs no validation; indices outside the pems list are skipped.
func Generate(chainIndices []int, pems []string, privateKeyPEM string) string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for _, idx := range chainIndices {
		if idx < 0 || idx >= len(pems) {
			continue
		}
		buf.WriteString(pems[idx])
		buf.WriteByte('\n')
	}

	if privateKeyPEM != "" {
		buf.WriteByte('\n')
		buf.WriteString(privateKeyPEM)
	}

	return strings.TrimSpace(buf.String())
}

// PEMTexts projects a record list onto its canonical PEM strings, preserving
// bundle order so chain indices stay valid.
func PEMTexts(records []CertificateRecord) []string {
	pems := make([]string, len(records))
	for i, rec := range records {
		pems[i] = rec.PEM
	}
	return pems
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509bundle

import (
	"crypto/x509"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	x509certs "github.com/H0llyW00dzZ/tls-cert-bundle-parser/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/tls-cert-bundle-parser/src/logger"
)

var (
	// ErrNotText indicates that text parsing was attempted on non-text bytes.
	ErrNotText = errors.New("x509bundle: input is not valid UTF-8 text")

	// ErrNotPKCS12 indicates that the input does not look like a PKCS#12 container.
	ErrNotPKCS12 = errors.New("x509bundle: failed to parse PKCS#12 container")
)

// pkcs12Unsupported is the explanatory outcome message for PKCS#12 inputs:
// the container is recognized but decryption is intentionally unimplemented.
const pkcs12Unsupported = "PKCS#12 parsing not fully implemented yet"

// ParsePEM splits raw text into PEM blocks and parses every certificate and
// private key block found.
//
// Certificate blocks that fail to decode are logged and dropped; unknown
// block tags are logged and skipped. Zero recovered records is a valid
// outcome. The only fatal condition is non-text input.
func ParsePEM(data []byte) (*ParseOutcome, error) {
	if !utf8.Valid(data) {
		return nil, ErrNotText
	}

	outcome := &ParseOutcome{}
	log := logger.Default()

	for _, block := range x509certs.SplitPEM(data) {
		switch {
		case block.Tag == "CERTIFICATE":
			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				log.Printf("Warning: failed to parse certificate block: %v", err)
				continue
			}
			outcome.Certificates = append(outcome.Certificates, NewCertificateRecord(cert))
		case strings.Contains(block.Tag, "PRIVATE KEY"):
			outcome.PrivateKeys = append(outcome.PrivateKeys, PrivateKeyRecord{
				PEM:       codec.EncodeBlockPEM(block.Tag, block.Bytes),
				Encrypted: strings.Contains(block.Tag, "ENCRYPTED"),
			})
		default:
			log.Printf("Warning: skipping unknown PEM block: %s", block.Tag)
		}
	}

	return outcome, nil
}

// ParseDER parses the entire buffer strictly as one DER certificate; PEM
// text is rejected rather than unwrapped.
//
// Unlike the bundle path, a decode failure here is fatal and propagated to
// the caller.
func ParseDER(data []byte) (*ParseOutcome, error) {
	cert, err := codec.DecodeDER(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DER certificate: %w", err)
	}

	return &ParseOutcome{
		Certificates: []CertificateRecord{NewCertificateRecord(cert)},
	}, nil
}

// ParseCertificateFile dispatches raw bytes to the PEM, DER, or PKCS#12 path
// based on the filename extension (case-insensitive).
//
//   - .pfx/.p12: the container structure is probed but never decrypted; a
//     recognized container reports NeedsPassword with an explanatory message.
//   - .der: the whole buffer is one certificate; a decode failure is fatal.
//   - anything else: PEM splitting first, falling back to a raw-DER
//     interpretation when the split yields no certificates and no keys.
//
// The password is accepted for API symmetry with a future PKCS#12
// implementation and is currently unused.
func ParseCertificateFile(data []byte, filename, password string) (*ParseOutcome, error) {
	_ = password

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pfx", ".p12":
		if err := ProbePKCS12(data); err != nil {
			return &ParseOutcome{Error: "Failed to parse PKCS#12 file"}, nil
		}
		return &ParseOutcome{
			NeedsPassword: true,
			Error:         pkcs12Unsupported,
		}, nil
	case ".der":
		return ParseDER(data)
	default:
		outcome, err := ParsePEM(data)
		if err == nil && (len(outcome.Certificates) > 0 || len(outcome.PrivateKeys) > 0) {
			return outcome, nil
		}
		// Not usable as PEM text; try the whole buffer as raw DER and
		// surface that error if it also fails.
		return ParseDER(data)
	}
}

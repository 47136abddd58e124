// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"

	"github.com/cloudflare/cfssl/crypto/pkcs7"

	"github.com/H0llyW00dzZ/tls-cert-bundle-parser/src/internal/helper/gc"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")
)

// pemLineLength is the canonical base64 line wrap for rendered PEM payloads.
const pemLineLength = 64

// Certificate provides methods to decode and encode [X.509] certificates.
// It maintains internal configuration such as the certificate block type.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Certificate struct {
	certBlockType string
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// decodePEMBlock decodes a PEM block and checks its type.
func (c *Certificate) decodePEMBlock(data []byte) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMBlock
	}
	if block.Type != c.certBlockType {
		return nil, ErrInvalidBlockType
	}
	return block, nil
}

// Decode decodes a single certificate from data.
//
// PEM input is unwrapped first; raw DER is parsed directly. If the bytes are
// not a plain certificate, a PKCS7 envelope is tried as a last resort and the
// first certificate it carries is returned.
func (c *Certificate) Decode(data []byte) (*x509.Certificate, error) {
	if c.IsPEM(data) {
		block, err := c.decodePEMBlock(data)
		if err != nil {
			return nil, err
		}

		data = block.Bytes
	}

	return c.DecodeDER(data)
}

// DecodeDER decodes a single certificate from raw DER bytes, with no PEM
// unwrapping: PEM text fails here. A PKCS7 envelope (also DER-framed) is
// tried as a last resort and the first certificate it carries is returned.
func (c *Certificate) DecodeDER(data []byte) (*x509.Certificate, error) {
	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	// Attempt to parse as PKCS7 using Cloudflare's library
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	return p.Content.SignedData.Certificates[0], nil
}

// EncodePEM renders a certificate as canonical PEM text.
func (c *Certificate) EncodePEM(cert *x509.Certificate) string {
	return c.EncodeBlockPEM(c.certBlockType, cert.Raw)
}

// EncodeBlockPEM renders arbitrary DER bytes as canonical PEM text with the
// given tag. The base64 payload is wrapped at 64 characters per line and the
// rendered text carries no trailing newline after the END marker.
func (c *Certificate) EncodeBlockPEM(tag string, der []byte) string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	encoded := base64.StdEncoding.EncodeToString(der)

	buf.WriteString("-----BEGIN " + tag + "-----\n")
	for len(encoded) > 0 {
		n := min(len(encoded), pemLineLength)
		buf.WriteString(encoded[:n])
		buf.WriteByte('\n')
		encoded = encoded[n:]
	}
	buf.WriteString("-----END " + tag + "-----")

	return buf.String()
}

// EncodeDER encodes a certificate to DER format.
func (c *Certificate) EncodeDER(cert *x509.Certificate) []byte { return cert.Raw }

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509bundle

import (
	"bytes"
	"crypto/x509"
	"crypto/x509/pkix"
	"time"

	x509certs "github.com/H0llyW00dzZ/tls-cert-bundle-parser/src/internal/x509/certs"
)

// UnknownCommonName is the placeholder used when a name carries no CN attribute.
const UnknownCommonName = "Unknown"

// invalidDate is rendered when a validity timestamp cannot be represented.
const invalidDate = "Invalid date"

// validityLayout is the fixed calendar text format for validity timestamps.
const validityLayout = time.RFC1123Z

// attributeCodes maps standard name attribute object identifiers to their
// recognized short codes. Attributes outside this set are ignored.
var attributeCodes = map[string]string{
	"2.5.4.3":  "CN",
	"2.5.4.6":  "C",
	"2.5.4.7":  "L",
	"2.5.4.8":  "ST",
	"2.5.4.10": "O",
	"2.5.4.11": "OU",
}

// CertificateRecord is the normalized view of a decoded certificate.
// Records are created once per decoded certificate and immutable thereafter;
// chain indices reference them positionally within the ParseOutcome that
// produced them.
type CertificateRecord struct {
	// Subject holds the recognized subject name attributes keyed by short code.
	Subject map[string]string `json:"subject"`
	// Issuer holds the recognized issuer name attributes keyed by short code.
	Issuer map[string]string `json:"issuer"`
	// SerialNumber is the certificate serial as lowercase hex without a 0x prefix.
	SerialNumber string `json:"serialNumber"`
	// ValidFrom is the not-before timestamp in calendar text form.
	ValidFrom string `json:"validFrom"`
	// ValidTo is the not-after timestamp in calendar text form.
	ValidTo string `json:"validTo"`
	// SubjectCommonName is the subject CN, or "Unknown" when absent.
	SubjectCommonName string `json:"subjectCommonName"`
	// IssuerCommonName is the issuer CN, or "Unknown" when absent.
	IssuerCommonName string `json:"issuerCommonName"`
	// IsCA reports the basic-constraints CA flag; false when the extension
	// is absent or unreadable.
	IsCA bool `json:"isCA"`
	// IsSelfSigned reports structural equality of the full subject and
	// issuer names, not mere equality of common names.
	IsSelfSigned bool `json:"isSelfSigned"`
	// PEM is the canonical PEM rendering of the original DER bytes.
	PEM string `json:"pem"`
}

// PrivateKeyRecord is a private key block carried through a bundle untouched.
type PrivateKeyRecord struct {
	// PEM is the canonical PEM rendering of the key block.
	PEM string `json:"pem"`
	// Encrypted reports whether the block tag marks the key as encrypted.
	Encrypted bool `json:"encrypted"`
}

// ParseOutcome is the result of one top-level parse call.
type ParseOutcome struct {
	Certificates []CertificateRecord `json:"certificates"`
	PrivateKeys  []PrivateKeyRecord  `json:"privateKeys"`
	// NeedsPassword reports that the input is an encrypted container that
	// cannot be opened without a password.
	NeedsPassword bool `json:"needsPassword"`
	// Error carries a non-fatal explanatory message, e.g. for unsupported
	// PKCS#12 decryption. Fatal conditions are returned as Go errors instead.
	Error string `json:"error,omitempty"`
}

// ExtractNameAttributes maps a name's attribute sequence to recognized
// short codes. Attributes with unrecognized type identifiers are ignored;
// values that cannot be read as text are skipped individually.
func ExtractNameAttributes(name pkix.Name) map[string]string {
	attrs := make(map[string]string)
	for _, atv := range name.Names {
		code, ok := attributeCodes[atv.Type.String()]
		if !ok {
			continue
		}
		value, ok := atv.Value.(string)
		if !ok {
			continue
		}
		attrs[code] = value
	}
	return attrs
}

// commonName returns the CN attribute of an extracted attribute map,
// defaulting to UnknownCommonName.
func commonName(attrs map[string]string) string {
	if cn, ok := attrs["CN"]; ok {
		return cn
	}
	return UnknownCommonName
}

// formatValidity renders a validity timestamp in calendar text form,
// substituting a literal placeholder when the decoder could not represent it.
func formatValidity(t time.Time) string {
	if t.IsZero() {
		return invalidDate
	}
	return t.Format(validityLayout)
}

// NewCertificateRecord builds a normalized record from a decoded certificate.
func NewCertificateRecord(cert *x509.Certificate) CertificateRecord {
	subject := ExtractNameAttributes(cert.Subject)
	issuer := ExtractNameAttributes(cert.Issuer)

	return CertificateRecord{
		Subject:           subject,
		Issuer:            issuer,
		SerialNumber:      cert.SerialNumber.Text(16),
		ValidFrom:         formatValidity(cert.NotBefore),
		ValidTo:           formatValidity(cert.NotAfter),
		SubjectCommonName: commonName(subject),
		IssuerCommonName:  commonName(issuer),
		IsCA:              cert.BasicConstraintsValid && cert.IsCA,
		IsSelfSigned:      bytes.Equal(cert.RawSubject, cert.RawIssuer),
		PEM:               codec.EncodePEM(cert),
	}
}

// codec is the shared certificate encoder/decoder. It carries no mutable
// state and is safe to share across concurrent parse calls.
var codec = x509certs.New()

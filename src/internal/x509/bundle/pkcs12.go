// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509bundle

import (
	"encoding/asn1"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// PKCS#7 content types carried by the PFX authSafe field (RFC 7292, section 4).
var (
	oidData       = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 1}
	oidSignedData = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 2}
)

// ProbePKCS12 checks whether data starts with a well-formed PFX structure:
// an outer SEQUENCE holding version 3 and an authSafe ContentInfo with a
// known content type.
//
// It parses just enough to confirm the container structure and never touches
// the encrypted payload.
func ProbePKCS12(data []byte) error {
	input := cryptobyte.String(data)

	var pfx cryptobyte.String
	if !input.ReadASN1(&pfx, cryptobyte_asn1.SEQUENCE) {
		return ErrNotPKCS12
	}

	version := 0
	if !pfx.ReadASN1Integer(&version) || version != 3 {
		return ErrNotPKCS12
	}

	var authSafe cryptobyte.String
	if !pfx.ReadASN1(&authSafe, cryptobyte_asn1.SEQUENCE) {
		return ErrNotPKCS12
	}

	var contentType asn1.ObjectIdentifier
	if !authSafe.ReadASN1ObjectIdentifier(&contentType) {
		return ErrNotPKCS12
	}
	if !contentType.Equal(oidData) && !contentType.Equal(oidSignedData) {
		return ErrNotPKCS12
	}

	return nil
}

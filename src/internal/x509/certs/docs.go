// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs provides specialized encoding and decoding operations for [X.509] certificates.
// It tokenizes [PEM] text into tagged DER blocks with lenient recovery from
// malformed input, decodes single certificates from PEM, DER, or [PKCS7] data,
// and renders canonical PEM text with a fixed 64-character line wrap. This
// package is used by the bundle parser to split inputs and format outputs.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs

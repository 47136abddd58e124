// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509bundle parses user-supplied certificate bundles into normalized
// records and composes server-ready PEM output.
//
// It accepts PEM text, raw DER, or [PKCS12] containers, extracts identity and
// validity attributes from each certificate, and re-renders canonical PEM
// text for downstream assembly. PKCS#12 support is detection-only: the
// container structure is recognized but never decrypted.
//
// All operations are synchronous pure functions of their inputs; concurrent
// independent invocations are safe with no locking.
//
// [PKCS12]: https://grokipedia.com/page/PKCS_12
package x509bundle

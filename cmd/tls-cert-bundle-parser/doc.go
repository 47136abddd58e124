// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// tls-cert-bundle-parser is a command-line tool for parsing TLS certificate
// bundles, resolving certificate chains, and composing server-ready PEM
// bundles.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/tls-cert-bundle-parser/cmd/tls-cert-bundle-parser@latest
//
// # Usage
//
//	tls-cert-bundle-parser -f INPUT_BUNDLE [FLAGS]
//
// # Flags
//
//	-f, --file     Input bundle file (PEM, DER, or PKCS#12) [required]
//	-o, --output   Destination file (default: stdout)
//	-k, --key      Private key PEM file appended to the bundle
//	-p, --password Password for PKCS#12 containers
//	-c, --chain    Index of the resolved chain to emit (default: 0)
//	-j, --json     Emit parsed records and chains as JSON
//	-t, --table    Display parsed records as markdown table
//	    --tree     Display the selected chain as ASCII tree diagram
//
// # Examples
//
// Parse a bundle and emit the first resolved chain plus its key:
//
//	tls-cert-bundle-parser -f bundle.pem -o server.pem
//
// Produce JSON output:
//
//	tls-cert-bundle-parser -f bundle.pem --json > bundle.json
//
// Visualize the resolved chain as ASCII tree:
//
//	tls-cert-bundle-parser -f bundle.pem --tree
//
// Display all parsed certificates as markdown table:
//
//	tls-cert-bundle-parser -f bundle.pem --table
//
// Verify the composed bundle with OpenSSL:
//
//	openssl verify -CAfile /etc/ssl/certs/ca-certificates.crt \
//	  -untrusted server.pem server.pem
package main

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509chain reconstructs plausible leaf-to-root certificate chains
// from an unordered bundle of certificate records.
//
// The resolution is a documented heuristic over common names, not a
// cryptographic chain validation: it can misassociate certificates that
// happen to share a common name and can fail to link certificates whose
// issuer name differs from the literal issuer CN field. Issuer candidates
// are matched by lowest record index so results are deterministic.
//
// The package also renders resolved chains as markdown tables and ASCII
// tree diagrams for inspection.
package x509chain

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	x509bundle "github.com/H0llyW00dzZ/tls-cert-bundle-parser/src/internal/x509/bundle"
)

// Build orders a set of certificate records into leaf-to-root chains.
//
// Every record that is not a CA, or that is self-signed, starts a chain.
// From each starting point the resolver walks upward, matching the current
// record's issuer CN against the subject CN of the remaining records. When
// several unvisited records share the required subject CN the lowest index
// wins, which keeps the output deterministic. A self-signed record
// terminates its chain; a walk that revisits an index or finds no issuer
// emits the chain collected so far.
//
// Indices in the returned chains are positions within records and are only
// meaningful against that same list. Empty input yields an empty chain list.
//
// Cost is O(chains x records^2) due to the repeated linear issuer scans,
// acceptable for bundles of a few dozen certificates but not for inputs
// with hundreds of records.
func Build(records []x509bundle.CertificateRecord) [][]int {
	chains := [][]int{}

	for leaf, rec := range records {
		if rec.IsCA && !rec.IsSelfSigned {
			continue
		}
		chains = append(chains, walk(records, leaf))
	}

	return chains
}

// walk collects one chain starting at the given leaf index.
func walk(records []x509bundle.CertificateRecord, leaf int) []int {
	var chain []int
	visited := make(map[int]bool, len(records))

	current := leaf
	for !visited[current] {
		visited[current] = true
		chain = append(chain, current)

		if records[current].IsSelfSigned {
			break // root reached
		}

		next, ok := findIssuer(records, visited, records[current].IssuerCommonName)
		if !ok {
			break // broken chain; emit what was collected
		}
		current = next
	}

	return chain
}

// findIssuer scans unvisited records in index order for the first whose
// subject CN matches the wanted issuer CN.
func findIssuer(records []x509bundle.CertificateRecord, visited map[int]bool, issuerCN string) (int, bool) {
	for idx, rec := range records {
		if visited[idx] {
			continue
		}
		if rec.SubjectCommonName == issuerCN {
			return idx, true
		}
	}
	return 0, false
}

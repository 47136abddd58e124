// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	x509bundle "github.com/H0llyW00dzZ/tls-cert-bundle-parser/src/internal/x509/bundle"
)

// RenderASCIITree renders a resolved chain as an ASCII tree diagram.
//
// It displays the chain leaf-first with visual connectors showing the
// relationship between leaf, intermediate, and terminal certificates.
func RenderASCIITree(records []x509bundle.CertificateRecord, chain []int) string {
	if len(chain) == 0 {
		return "No certificates in chain"
	}

	var result strings.Builder
	for pos, idx := range chain {
		if idx < 0 || idx >= len(records) {
			continue
		}

		connector := "├── "
		if pos == len(chain)-1 {
			connector = "└── "
		}

		rec := records[idx]
		certInfo := fmt.Sprintf("[%d] %s (%s)", idx, rec.SubjectCommonName, chainRole(records, chain, pos))
		result.WriteString(connector + certInfo + "\n")
	}

	return result.String()
}

// RenderTable renders the record list with chain membership as a formatted
// markdown table.
//
// It displays per-record identity, validity, and flag details using
// tablewriter so the output drops cleanly into terminals and markdown docs.
func RenderTable(records []x509bundle.CertificateRecord, chains [][]int) string {
	if len(records) == 0 {
		return "No certificates to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)

	table.Header([]string{"#", "Subject CN", "Issuer CN", "Serial", "Valid Until", "CA", "Self-Signed", "Chains"})

	var rows [][]string
	for idx, rec := range records {
		rows = append(rows, []string{
			fmt.Sprintf("%d", idx),
			rec.SubjectCommonName,
			rec.IssuerCommonName,
			rec.SerialNumber,
			rec.ValidTo,
			fmt.Sprintf("%v", rec.IsCA),
			fmt.Sprintf("%v", rec.IsSelfSigned),
			chainMembership(chains, idx),
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// chainMembership lists the chain numbers a record index appears in.
func chainMembership(chains [][]int, idx int) string {
	var member []string
	for n, chain := range chains {
		for _, i := range chain {
			if i == idx {
				member = append(member, fmt.Sprintf("%d", n))
				break
			}
		}
	}
	if len(member) == 0 {
		return "-"
	}
	return strings.Join(member, ",")
}

// chainRole describes a certificate's position within one resolved chain.
func chainRole(records []x509bundle.CertificateRecord, chain []int, pos int) string {
	last := pos == len(chain)-1
	switch {
	case len(chain) == 1:
		if records[chain[0]].IsSelfSigned {
			return "Self-Signed Certificate"
		}
		return "End-Entity Certificate"
	case pos == 0:
		return "End-Entity (Server/Leaf) Certificate"
	case last && records[chain[pos]].IsSelfSigned:
		return "Root CA Certificate"
	case last:
		return "Furthest Linkable Ancestor"
	default:
		return "Intermediate CA Certificate"
	}
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509bundle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	x509bundle "github.com/H0llyW00dzZ/tls-cert-bundle-parser/src/internal/x509/bundle"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name          string
		chainIndices  []int
		pems          []string
		privateKeyPEM string
		want          string
	}{
		{
			name:          "Chain With Key",
			chainIndices:  []int{2, 0},
			pems:          []string{"B", "unused", "A"},
			privateKeyPEM: "K",
			want:          "A\nB\n\nK",
		},
		{
			name:         "Chain Without Key",
			chainIndices: []int{0, 1},
			pems:         []string{"A", "B"},
			want:         "A\nB",
		},
		{
			name:          "Out Of Range Indices Are Skipped",
			chainIndices:  []int{0, 5, -1, 1},
			pems:          []string{"A", "B"},
			privateKeyPEM: "K",
			want:          "A\nB\n\nK",
		},
		{
			name:          "Key Only",
			chainIndices:  nil,
			pems:          nil,
			privateKeyPEM: "K",
			want:          "K",
		},
		{
			name: "Empty Everything",
			want: "",
		},
		{
			name:          "Result Is Trimmed",
			chainIndices:  []int{0},
			pems:          []string{"  A  "},
			privateKeyPEM: "K\n\n",
			want:          "A  \n\nK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := x509bundle.Generate(tt.chainIndices, tt.pems, tt.privateKeyPEM)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPEMTexts(t *testing.T) {
	records := []x509bundle.CertificateRecord{
		{PEM: "first"},
		{PEM: "second"},
	}
	assert.Equal(t, []string{"first", "second"}, x509bundle.PEMTexts(records))
	assert.Empty(t, x509bundle.PEMTexts(nil))
}

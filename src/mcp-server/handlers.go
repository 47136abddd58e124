// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"

	x509bundle "github.com/H0llyW00dzZ/tls-cert-bundle-parser/src/internal/x509/bundle"
	x509chain "github.com/H0llyW00dzZ/tls-cert-bundle-parser/src/internal/x509/chain"
)

// readCertificateInput resolves a tool's certificate argument: a readable
// file path wins, otherwise the value must be base64-encoded bundle data.
// It also reports the filename to use for format dispatch.
func readCertificateInput(certInput, filename string) ([]byte, string, error) {
	if fileData, err := os.ReadFile(certInput); err == nil {
		if filename == "" {
			filename = certInput
		}
		return fileData, filename, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(certInput)
	if err != nil {
		return nil, "", fmt.Errorf("not a valid file path or base64 data")
	}
	return decoded, filename, nil
}

// handleParseCertificateFile parses a certificate bundle into normalized
// records and returns them as JSON or a rendered table.
func handleParseCertificateFile(request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	certInput, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	filename := request.GetString("filename", "")
	password := request.GetString("password", "")
	format := request.GetString("format", config.Defaults.Format)

	data, filename, err := readCertificateInput(certInput, filename)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read certificate: %v", err)), nil
	}
	if len(data) > config.Defaults.MaxInputBytes {
		return mcp.NewToolResultError(fmt.Sprintf("input exceeds %d bytes", config.Defaults.MaxInputBytes)), nil
	}

	outcome, err := x509bundle.ParseCertificateFile(data, filename, password)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to parse certificate bundle: %v", err)), nil
	}

	if format == "table" {
		chains := x509chain.Build(outcome.Certificates)
		return mcp.NewToolResultText(x509chain.RenderTable(outcome.Certificates, chains)), nil
	}

	payload, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode parse outcome: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// handleBuildCertificateChain orders caller-supplied records into
// leaf-to-root chains.
func handleBuildCertificateChain(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	recordsJSON, err := request.RequireString("records")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("records parameter required: %v", err)), nil
	}

	var records []x509bundle.CertificateRecord
	if err := json.Unmarshal([]byte(recordsJSON), &records); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode certificate records: %v", err)), nil
	}

	chains := x509chain.Build(records)

	payload, err := json.Marshal(chains)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode chains: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// handleGenerateBundle composes a chain plus optional key into server-ready
// PEM text.
func handleGenerateBundle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chainJSON, err := request.RequireString("chain")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("chain parameter required: %v", err)), nil
	}
	pemsJSON, err := request.RequireString("pems")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("pems parameter required: %v", err)), nil
	}
	privateKey := request.GetString("private_key", "")

	var chain []int
	if err := json.Unmarshal([]byte(chainJSON), &chain); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode chain indices: %v", err)), nil
	}

	var pems []string
	if err := json.Unmarshal([]byte(pemsJSON), &pems); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode PEM strings: %v", err)), nil
	}

	return mcp.NewToolResultText(x509bundle.Generate(chain, pems, privateKey)), nil
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerTools defines the bundle parsing tools and binds their handlers.
//
// The function defines the following tools:
//   - parse_certificate_file: Parses a certificate bundle (PEM, DER, or PKCS#12)
//   - build_certificate_chain: Orders parsed records into leaf-to-root chains
//   - generate_bundle: Composes a chain plus optional key into server-ready PEM text
func registerTools(s *server.MCPServer, config *Config) {
	parseCertificateFileTool := mcp.NewTool("parse_certificate_file",
		mcp.WithDescription("Parse a certificate bundle (PEM, DER, or PKCS#12) into normalized certificate and private key records"),
		mcp.WithString("certificate",
			mcp.Required(),
			mcp.Description("Certificate bundle file path or base64-encoded bundle data"),
		),
		mcp.WithString("filename",
			mcp.Description("Original filename used for format dispatch; defaults to the file path when a path is given"),
		),
		mcp.WithString("password",
			mcp.Description("Password for PKCS#12 containers (decryption is not supported; reported via needsPassword)"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'json' or 'table' (default: "+config.Defaults.Format+")"),
			mcp.DefaultString(config.Defaults.Format),
		),
	)

	buildCertificateChainTool := mcp.NewTool("build_certificate_chain",
		mcp.WithDescription("Order a set of parsed certificate records into leaf-to-root chains using common-name matching"),
		mcp.WithString("records",
			mcp.Required(),
			mcp.Description("JSON array of certificate records as returned by parse_certificate_file"),
		),
	)

	generateBundleTool := mcp.NewTool("generate_bundle",
		mcp.WithDescription("Concatenate a resolved chain plus an optional private key into server-ready PEM text"),
		mcp.WithString("chain",
			mcp.Required(),
			mcp.Description("JSON array of record indices, leaf first"),
		),
		mcp.WithString("pems",
			mcp.Required(),
			mcp.Description("JSON array of canonical PEM strings the chain indices point into"),
		),
		mcp.WithString("private_key",
			mcp.Description("Private key PEM text appended after the chain"),
		),
	)

	s.AddTool(parseCertificateFileTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleParseCertificateFile(request, config)
	})
	s.AddTool(buildCertificateChainTool, handleBuildCertificateChain)
	s.AddTool(generateBundleTool, handleGenerateBundle)
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/tls-cert-bundle-parser/src/logger"
	"github.com/H0llyW00dzZ/tls-cert-bundle-parser/src/version"
)

var serverName = "TLS/SSL Certificate Bundle Parser" // MCP server name
var appVersion = version.Version                     // default version

// GetVersion returns the current version of the MCP server.
func GetVersion() string {
	return appVersion
}

// Run starts the MCP server with certificate bundle parsing tools.
//
// It loads configuration from the MCP_BUNDLE_CONFIG_FILE environment
// variable, installs a silent structured logger so parse warnings never
// corrupt the stdio protocol, registers the bundle tools, and serves over
// stdio until the client disconnects.
func Run(ver string) error {
	if ver != "" {
		appVersion = ver
	}

	// Parse warnings must not interleave with protocol frames on stdout.
	logger.Install(logger.NewServerLogger(os.Stderr, true))

	config, err := loadConfig("")
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	s := server.NewMCPServer(
		serverName,
		appVersion,
		server.WithToolCapabilities(true),
	)

	registerTools(s, config)

	return server.ServeStdio(s)
}

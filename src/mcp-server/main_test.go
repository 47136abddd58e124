// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/mcptest"
	"github.com/mark3labs/mcp-go/server"
)

// Test certificate from www.google.com (valid until December 15, 2025)
// Retrieved: October 16, 2025
const testCertPEM = `
-----BEGIN CERTIFICATE-----
MIIEVzCCAz+gAwIBAgIQXEsKucZT6MwJr/NcaQmnozANBgkqhkiG9w0BAQsFADA7
MQswCQYDVQQGEwJVUzEeMBwGA1UEChMVR29vZ2xlIFRydXN0IFNlcnZpY2VzMQww
CgYDVQQDEwNXUjIwHhcNMjUwOTIyMDg0MjQwWhcNMjUxMjE1MDg0MjM5WjAZMRcw
FQYDVQQDEw53d3cuZ29vZ2xlLmNvbTBZMBMGByqGSM49AgEGCCqGSM49AwEHA0IA
BM3QmmV89za/vDWm/Ctodj6J5s0RLy5fo5QsoGRdMlzItH3jBRpmdWEMysalvQtm
aLGUUvJv5ASJHKfixPD3LWijggJCMIICPjAOBgNVHQ8BAf8EBAMCB4AwEwYDVR0l
BAwwCgYIKwYBBQUHAwEwDAYDVR0TAQH/BAIwADAdBgNVHQ4EFgQUUYk76ccIt4qc
kyjMh0xUc5iMmTIwHwYDVR0jBBgwFoAU3hse7XkV1D43JMMhu+w0OW1CsjAwWAYI
KwYBBQUHAQEETDBKMCEGCCsGAQUFBzABhhVodHRwOi8vby5wa2kuZ29vZy93cjIw
JQYIKwYBBQUHMAKGGWh0dHA6Ly9pLnBraS5nb29nL3dyMi5jcnQwGQYDVR0RBBIw
EIIOd3d3Lmdvb2dsZS5jb20wEwYDVR0gBAwwCjAIBgZngQwBAgEwNgYDVR0fBC8w
LTAroCmgJ4YlaHR0cDovL2MucGtpLmdvb2cvd3IyL0dTeVQxTjRQQnJnLmNybDCC
AQUGCisGAQQB1nkCBAIEgfYEgfMA8QB2AN3cyjSV1+EWBeeVMvrHn/g9HFDf2wA6
FBJ2Ciysu8gqAAABmXDN1WkAAAQDAEcwRQIgdH62Tub0woIi1sa+gQHvdMpNlfa6
WQgVn2Ov2CM0ktkCIQDyivdzECaAyaCq8GG+EtKWge4nLJ8FM++Q5WVQD9kCUgB3
AMz7D2qFcQll/pWbU87psnwi6YVcDZeNtql+VMD+TA2wAAABmXDN1WgAAAQDAEgw
RgIhAPNnKBAUSFiPjBYsu9A+UlI8ykhnoaZiFMhaDvrHGMKvAiEA02wfQcWu2753
HW54J/Iyeak0ni5z8jqayf1Rd5518Q0wDQYJKoZIhvcNAQELBQADggEBAAqYHEc6
CiVjrSPb0E4QSHYZIbqpHSYnOs8OQ7T54QM8yoMWOb4tWaMZGwdZayaL6ehyYKzS
8lhyxL4OPN9E51//mScXtemV4EbgrDm0fk3uH0gAX3oP+0DZH4X7t7L9aO8nalSl
KGJvEoHrphu2HbkAJY9OUqUo804OjXHeiY3FLUkoER7hb89w1qcaWxjRrVfflJ/Q
0pJCjtltJFSBTZbM6t0Y0uir9/XNPHcec4nMSyp3W/UEmcAoKc3kDJrT6CE2l2lI
Dd4Zns+bUA5A9z1Qy5c9MKX6I3rsHmUNUhGRz/lCyJDdc6UNoGKPmilI98JSRZYY
tXHHbX1dudpKfHM=
-----END CERTIFICATE-----
`

func TestMCPTools(t *testing.T) {
	config, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	// Encode test certificate as base64
	certData := base64.StdEncoding.EncodeToString([]byte(testCertPEM))

	parseTool := mcp.NewTool("parse_certificate_file",
		mcp.WithDescription("Parse a certificate bundle into normalized records"),
		mcp.WithString("certificate", mcp.Required()),
		mcp.WithString("filename"),
		mcp.WithString("password"),
		mcp.WithString("format", mcp.DefaultString(config.Defaults.Format)),
	)
	buildTool := mcp.NewTool("build_certificate_chain",
		mcp.WithDescription("Order parsed records into leaf-to-root chains"),
		mcp.WithString("records", mcp.Required()),
	)
	generateTool := mcp.NewTool("generate_bundle",
		mcp.WithDescription("Compose a chain plus optional key into PEM text"),
		mcp.WithString("chain", mcp.Required()),
		mcp.WithString("pems", mcp.Required()),
		mcp.WithString("private_key"),
	)

	srv := mcptest.NewUnstartedServer(t)

	tools := []server.ServerTool{
		{
			Tool: parseTool,
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleParseCertificateFile(request, config)
			},
		},
		{
			Tool:    buildTool,
			Handler: handleBuildCertificateChain,
		},
		{
			Tool:    generateTool,
			Handler: handleGenerateBundle,
		},
	}

	srv.AddTools(tools...)

	if err := srv.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer srv.Close()

	client := srv.Client()

	tests := []struct {
		name           string
		toolName       string
		args           map[string]interface{}
		expectToolErr  bool
		expectContains []string
	}{
		{
			name:     "parse_certificate_file with base64 data",
			toolName: "parse_certificate_file",
			args: map[string]interface{}{
				"certificate": certData,
			},
			expectContains: []string{`"subjectCommonName": "www.google.com"`, `"isCA": false`},
		},
		{
			name:     "parse_certificate_file table format",
			toolName: "parse_certificate_file",
			args: map[string]interface{}{
				"certificate": certData,
				"format":      "table",
			},
			expectContains: []string{"www.google.com", "Subject CN"},
		},
		{
			name:     "parse_certificate_file invalid input",
			toolName: "parse_certificate_file",
			args: map[string]interface{}{
				"certificate": "!!!not-a-path-or-base64!!!",
			},
			expectToolErr: true,
		},
		{
			name:     "build_certificate_chain single record",
			toolName: "build_certificate_chain",
			args: map[string]interface{}{
				"records": `[{"subjectCommonName":"leaf","issuerCommonName":"root","isCA":false,"isSelfSigned":false}]`,
			},
			expectContains: []string{"[[0]]"},
		},
		{
			name:     "build_certificate_chain bad json",
			toolName: "build_certificate_chain",
			args: map[string]interface{}{
				"records": "{not json",
			},
			expectToolErr: true,
		},
		{
			name:     "generate_bundle with key",
			toolName: "generate_bundle",
			args: map[string]interface{}{
				"chain":       "[1,0]",
				"pems":        `["ROOT","LEAF"]`,
				"private_key": "KEY",
			},
			expectContains: []string{"LEAF\nROOT\n\nKEY"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mcp.CallToolRequest{
				Params: mcp.CallToolParams{
					Name:      tt.toolName,
					Arguments: tt.args,
				},
			}

			result, err := client.CallTool(context.Background(), req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result == nil {
				t.Fatal("expected result but got nil")
			}

			if tt.expectToolErr {
				if !result.IsError {
					t.Errorf("expected tool error result, got success")
				}
				return
			}
			if result.IsError {
				t.Fatalf("unexpected tool error: %+v", result.Content)
			}

			content := ""
			for _, c := range result.Content {
				if tc, ok := c.(mcp.TextContent); ok {
					content += tc.Text
				}
			}

			for _, expected := range tt.expectContains {
				if !strings.Contains(content, expected) {
					t.Errorf("expected result to contain %q, but it didn't. Result: %s", expected, content)
				}
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	// Test loading default config
	config, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if config == nil {
		t.Fatal("Expected config, got nil")
	}

	if config.Defaults.Format != "json" {
		t.Errorf("Expected default format 'json', got %s", config.Defaults.Format)
	}

	if config.Defaults.MaxInputBytes != defaultMaxInputBytes {
		t.Errorf("Expected default max input bytes %d, got %d", defaultMaxInputBytes, config.Defaults.MaxInputBytes)
	}
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "defaults:\n  format: table\n  maxInputBytes: 1024\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if config.Defaults.Format != "table" {
		t.Errorf("Expected format 'table', got %s", config.Defaults.Format)
	}
	if config.Defaults.MaxInputBytes != 1024 {
		t.Errorf("Expected max input bytes 1024, got %d", config.Defaults.MaxInputBytes)
	}
}

func TestLoadConfig_JSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"defaults":{"format":"table","maxInputBytes":2048}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if config.Defaults.Format != "table" {
		t.Errorf("Expected format 'table', got %s", config.Defaults.Format)
	}
	if config.Defaults.MaxInputBytes != 2048 {
		t.Errorf("Expected max input bytes 2048, got %d", config.Defaults.MaxInputBytes)
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"defaults":{"format":"xml","maxInputBytes":-1}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	// Invalid values fall back to defaults
	if config.Defaults.Format != "json" {
		t.Errorf("Expected fallback format 'json', got %s", config.Defaults.Format)
	}
	if config.Defaults.MaxInputBytes != defaultMaxInputBytes {
		t.Errorf("Expected fallback max input bytes %d, got %d", defaultMaxInputBytes, config.Defaults.MaxInputBytes)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestReadCertificateInput_FilePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bundle.pem")
	if err := os.WriteFile(path, []byte(testCertPEM), 0644); err != nil {
		t.Fatal(err)
	}

	data, filename, err := readCertificateInput(path, "")
	if err != nil {
		t.Fatalf("readCertificateInput failed: %v", err)
	}
	if string(data) != testCertPEM {
		t.Error("expected file contents back")
	}
	if filename != path {
		t.Errorf("expected filename %q, got %q", path, filename)
	}
}

func TestReadCertificateInput_Base64(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte(testCertPEM))

	data, filename, err := readCertificateInput(encoded, "bundle.pem")
	if err != nil {
		t.Fatalf("readCertificateInput failed: %v", err)
	}
	if string(data) != testCertPEM {
		t.Error("expected decoded contents back")
	}
	if filename != "bundle.pem" {
		t.Errorf("expected filename to pass through, got %q", filename)
	}
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	x509bundle "github.com/H0llyW00dzZ/tls-cert-bundle-parser/src/internal/x509/bundle"
	x509chain "github.com/H0llyW00dzZ/tls-cert-bundle-parser/src/internal/x509/chain"
	"github.com/H0llyW00dzZ/tls-cert-bundle-parser/src/logger"
)

// ErrInputFileRequired indicates that no input bundle file was provided.
var ErrInputFileRequired = errors.New("cli: input file required")

// ErrNoChainResolved indicates that the requested chain index does not exist.
var ErrNoChainResolved = errors.New("cli: no chain resolved at requested index")

// options holds the parsed command-line flags for one invocation.
type options struct {
	inputFile  string
	outputFile string
	keyFile    string
	password   string
	chainIndex int
	jsonOut    bool
	tableOut   bool
	treeOut    bool
}

// Execute runs the root command against os.Args, writing results to stdout or
// the requested output file. The supplied logger receives non-fatal warnings.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	logger.Install(log)

	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "tls-cert-bundle-parser",
		Short:         "TLS certificate bundle parser and chain composer",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, log)
		},
	}

	rootCmd.Flags().StringVarP(&opts.inputFile, "file", "f", "", "input bundle file (PEM, DER, or PKCS#12)")
	rootCmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	rootCmd.Flags().StringVarP(&opts.keyFile, "key", "k", "", "private key PEM file appended to the bundle")
	rootCmd.Flags().StringVarP(&opts.password, "password", "p", "", "password for PKCS#12 containers")
	rootCmd.Flags().IntVarP(&opts.chainIndex, "chain", "c", 0, "index of the resolved chain to emit")
	rootCmd.Flags().BoolVarP(&opts.jsonOut, "json", "j", false, "emit parsed records and chains as JSON")
	rootCmd.Flags().BoolVarP(&opts.tableOut, "table", "t", false, "display parsed records as markdown table")
	rootCmd.Flags().BoolVar(&opts.treeOut, "tree", false, "display the selected chain as ASCII tree diagram")

	return rootCmd.ExecuteContext(ctx)
}

// run processes one bundle: parse, resolve chains, and emit the requested view.
func run(ctx context.Context, opts *options, log logger.Logger) error {
	if opts.inputFile == "" {
		return ErrInputFileRequired
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(opts.inputFile)
	if err != nil {
		return fmt.Errorf("cli: reading input file: %w", err)
	}

	outcome, err := x509bundle.ParseCertificateFile(data, opts.inputFile, opts.password)
	if err != nil {
		return fmt.Errorf("cli: parsing %s: %w", opts.inputFile, err)
	}

	if outcome.NeedsPassword {
		return fmt.Errorf("cli: %s: %s", opts.inputFile, outcome.Error)
	}
	if outcome.Error != "" {
		return fmt.Errorf("cli: %s: %s", opts.inputFile, outcome.Error)
	}

	chains := x509chain.Build(outcome.Certificates)

	switch {
	case opts.jsonOut:
		return emitJSON(opts, outcome, chains)
	case opts.tableOut:
		return emit(opts, x509chain.RenderTable(outcome.Certificates, chains))
	case opts.treeOut:
		chain, err := selectChain(chains, opts.chainIndex)
		if err != nil {
			return err
		}
		return emit(opts, x509chain.RenderASCIITree(outcome.Certificates, chain))
	default:
		return emitBundle(opts, outcome, chains, log)
	}
}

// emitBundle composes the selected chain plus an optional private key into a
// server-ready bundle.
func emitBundle(opts *options, outcome *x509bundle.ParseOutcome, chains [][]int, log logger.Logger) error {
	chain, err := selectChain(chains, opts.chainIndex)
	if err != nil {
		return err
	}

	keyPEM, err := selectKey(opts, outcome, log)
	if err != nil {
		return err
	}

	bundleText := x509bundle.Generate(chain, x509bundle.PEMTexts(outcome.Certificates), keyPEM)
	return emit(opts, bundleText+"\n")
}

// selectChain picks the chain at the requested index.
func selectChain(chains [][]int, index int) ([]int, error) {
	if index < 0 || index >= len(chains) {
		return nil, fmt.Errorf("%w: index %d of %d chains", ErrNoChainResolved, index, len(chains))
	}
	return chains[index], nil
}

// selectKey resolves the private key text: an explicit --key file wins,
// otherwise the first key found in the bundle is used.
func selectKey(opts *options, outcome *x509bundle.ParseOutcome, log logger.Logger) (string, error) {
	if opts.keyFile != "" {
		keyData, err := os.ReadFile(opts.keyFile)
		if err != nil {
			return "", fmt.Errorf("cli: reading key file: %w", err)
		}
		return string(keyData), nil
	}

	if len(outcome.PrivateKeys) == 0 {
		return "", nil
	}

	key := outcome.PrivateKeys[0]
	if key.Encrypted {
		log.Printf("Warning: bundled private key is encrypted; appending as-is")
	}
	return key.PEM, nil
}

// emitJSON writes the parse outcome and resolved chains as one JSON document.
func emitJSON(opts *options, outcome *x509bundle.ParseOutcome, chains [][]int) error {
	doc := struct {
		*x509bundle.ParseOutcome
		Chains [][]int `json:"chains"`
	}{ParseOutcome: outcome, Chains: chains}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("cli: encoding JSON output: %w", err)
	}
	return emit(opts, string(data)+"\n")
}

// emit writes output to the configured file or stdout.
func emit(opts *options, text string) error {
	if opts.outputFile != "" {
		if err := os.WriteFile(opts.outputFile, []byte(text), 0644); err != nil {
			return fmt.Errorf("cli: writing output file: %w", err)
		}
		return nil
	}

	fmt.Print(text)
	return nil
}

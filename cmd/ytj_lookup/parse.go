package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/ytj-lookup/internal/registry"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	parseCmd := &cobra.Command{
		Use:   "parse",
		Short: "Extract company data from a saved registry response",
		Long:  "Reads a registry response saved to disk (for example the registry.dump_path file), extracts the first company and prints it as JSON.",
		Args:  cobra.NoArgs,
		RunE:  runParse,
	}
	parseCmd.Flags().StringP("in", "i", "", "Path to registry response JSON file (required)")
	parseCmd.Flags().StringP("out", "o", "", "Path to output company JSON file (default: stdout)")

	if err := parseCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	return parseCmd
}

func runParse(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("in")
	output, _ := cmd.Flags().GetString("out")

	content, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read registry response file: %w", err)
	}

	resp, err := registry.Decode(content)
	if err != nil {
		return err
	}
	if _, ok := resp.First(); !ok {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Warning: registry response contains no company records")
	}

	jsonBytes, err := json.MarshalIndent(registry.Extract(resp), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal company to JSON: %w", err)
	}

	if output == "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return nil
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(output)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write company to output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", output)
	return nil
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/ytj-lookup/internal/registry"
	"github.com/jonathan/ytj-lookup/internal/schemas"
	schemafiles "github.com/jonathan/ytj-lookup/schemas"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a saved registry response against the registry schema",
		Long:  "Validates a registry response saved to disk against the bundled registry response JSON schema. A leading byte order mark is ignored.",
		Args:  cobra.NoArgs,
		RunE:  runValidate,
	}
	validateCmd.Flags().StringP("in", "i", "", "Path to registry response JSON file (required)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	return validateCmd
}

func runValidate(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("in")

	content, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read registry response file: %w", err)
	}

	err = schemas.ValidateBytes(schemafiles.RegistryResponse(), registry.StripBOM(content))
	if err == nil {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation failed with %d error(s):\n", len(validationErr.Errors))
		for _, fieldErr := range validationErr.Errors {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  - %s: %s\n", fieldErr.Field, fieldErr.Message)
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return fmt.Errorf("failed to validate registry response: %w", err)
}

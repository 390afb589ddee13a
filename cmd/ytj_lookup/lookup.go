package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/ytj-lookup/internal/businessid"
	"github.com/jonathan/ytj-lookup/internal/observability"
	"github.com/jonathan/ytj-lookup/internal/server"
	"github.com/jonathan/ytj-lookup/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newLookupCmd() *cobra.Command {
	lookupCmd := &cobra.Command{
		Use:   "lookup <business-id>...",
		Short: "Look up one or more business IDs",
		Long:  "Normalizes each business ID, queries the registry and prints the results in argument order, as a JSON array or (with --format text) as boxes. Exits non-zero when any lookup ends in ERROR.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLookup,
	}
	lookupCmd.Flags().Int("concurrency", 4, "Maximum number of concurrent registry requests")
	lookupCmd.Flags().StringP("format", "f", "json", "Output format: json or text")
	return lookupCmd
}

func runLookup(cmd *cobra.Command, args []string) error {
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if concurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1, got %d", concurrency)
	}
	format, _ := cmd.Flags().GetString("format")
	if format != "json" && format != "text" {
		return fmt.Errorf("--format must be json or text, got %q", format)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	client, err := newRegistryClient(cfg, logger)
	if err != nil {
		return err
	}

	results := make([]*types.LookupResult, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(concurrency)
	for i, arg := range args {
		g.Go(func() error {
			businessID := businessid.Normalize(arg)
			outcome, err := client.Lookup(ctx, businessID)
			results[i] = server.ResultFromLookup(businessID, outcome, err)
			return nil
		})
	}
	_ = g.Wait()

	if format == "text" {
		observability.NewPrinter(cmd.OutOrStdout()).PrintLookupResults(results)
	} else {
		jsonBytes, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results to JSON: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
	}

	failed := 0
	for _, result := range results {
		if result.Status == types.StatusError {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lookup(s) failed", failed, len(results))
	}
	return nil
}

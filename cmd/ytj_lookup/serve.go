package main

import (
	"fmt"

	"github.com/jonathan/ytj-lookup/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the lookup web server",
		Long:  `Start an HTTP server with the business ID lookup form, the JSON API at /api/companies/{businessId} and /health.`,
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().Int("port", 8080, "Port to listen on (overrides config)")
	return serveCmd
}

func runServe(cmd *cobra.Command, _ []string) error {
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

	srv, err := server.New(server.Config{
		Addr:            cfg.Server.Addr(),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		TemplatePath:    cfg.Server.TemplatePath,
	}, client, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

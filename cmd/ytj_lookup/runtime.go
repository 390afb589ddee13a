package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jonathan/ytj-lookup/internal/config"
	"github.com/jonathan/ytj-lookup/internal/logging"
	"github.com/jonathan/ytj-lookup/internal/registry"
	"github.com/spf13/cobra"
)

// flagBindings maps command line flags onto config keys. Flags override the
// config file and environment only when set explicitly.
var flagBindings = map[string]string{
	"port":         "server.port",
	"registry-url": "registry.base_url",
	"log-level":    "log.level",
}

// loadConfig layers defaults, the --config file, YTJ_* environment variables
// and explicitly set flags, then validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := config.New()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	for flagName, key := range flagBindings {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind --%s: %w", flagName, err)
		}
	}

	return config.FromViper(v)
}

func newLogger(cfg *config.Config, out io.Writer) (*slog.Logger, error) {
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, out)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

func newRegistryClient(cfg *config.Config, logger *slog.Logger) (*registry.Client, error) {
	client, err := registry.NewClient(registry.ClientConfig{
		BaseURL:     cfg.Registry.BaseURL,
		Timeout:     cfg.Registry.Timeout,
		UserAgent:   cfg.Registry.UserAgent,
		DumpPath:    cfg.Registry.DumpPath,
		SchemaCheck: cfg.Registry.SchemaCheck,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create registry client: %w", err)
	}
	return client, nil
}

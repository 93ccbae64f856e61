// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"blogctl/cli/internal/config"
)

var (
	configAPIURL   string
	configLogLevel string
	configPageSize int
)

// configCmd shows the effective configuration, or persists new values
// when any set flag is passed.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change CLI settings",
	Long: `Without flags, the config command prints the effective settings after
environment overrides. With --api-url, --page-size or --log-level it
writes the new values to the config file.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false
		if configAPIURL != "" {
			cfg.APIBaseURL = configAPIURL
			changed = true
		}
		if configLogLevel != "" {
			cfg.LogLevel = configLogLevel
			changed = true
		}
		if configPageSize > 0 {
			cfg.PageSize = configPageSize
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println("✅ Configuration saved.")
		}

		fmt.Printf("API base URL: %s\n", cfg.APIBaseURL)
		fmt.Printf("Page size:    %d\n", cfg.PageSize)
		fmt.Printf("Log level:    %s\n", cfg.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringVar(&configAPIURL, "api-url", "", "Base URL of the blog API")
	configCmd.Flags().StringVar(&configLogLevel, "log-level", "", "Log verbosity (trace, debug, info, warn, error)")
	configCmd.Flags().IntVar(&configPageSize, "page-size", 0, "Default posts per feed page")
}

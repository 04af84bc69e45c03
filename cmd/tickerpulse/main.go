// Command tickerpulse prints news sentiment snapshots for stock tickers.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seenimoa/tickerpulse/api"
	"github.com/seenimoa/tickerpulse/internal/config"
	"github.com/seenimoa/tickerpulse/internal/infra"
	"github.com/seenimoa/tickerpulse/internal/pipeline"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config and logger, set in PersistentPreRunE.
var (
	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tickerpulse",
	Short: "News sentiment snapshots for stocks",
	Long: `tickerpulse resolves a ticker or company name, pulls recent headlines
from Google News, Bing News and Yahoo Finance, and scores their sentiment.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logging.Level
		if override, _ := cmd.Flags().GetString("log-level"); override != "" {
			level = override
		}
		logger = infra.NewLogger(level, cfg.Logging.Format, os.Stderr)
		slog.SetDefault(logger)
		api.Version = version
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(sentimentCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "tickerpulse %s\n", version)
		fmt.Fprintf(out, "  commit:  %s\n", commit)
		fmt.Fprintf(out, "  built:   %s\n", date)
	},
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and API key status",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		line := "═══════════════════════════════════════"

		fmt.Fprintln(out, line)
		fmt.Fprintln(out, "  tickerpulse: System Status")
		fmt.Fprintln(out, line)
		fmt.Fprintf(out, "  Version:       %s (%s)\n", version, commit)
		if src := cfg.Source(); src != "" {
			fmt.Fprintf(out, "  Config file:   %s\n", src)
		} else {
			fmt.Fprintln(out, "  Config file:   (defaults)")
		}
		fmt.Fprintln(out)

		fmt.Fprintln(out, "  Configuration:")
		if svc, err := pipeline.NewFromConfig(cfg, nil, logger); err != nil {
			fmt.Fprintf(out, "    News sources:  invalid (%v)\n", err)
		} else {
			fmt.Fprintf(out, "    News sources:  %s\n", strings.Join(svc.Sources(), " -> "))
		}
		fmt.Fprintf(out, "    Body scoring:  %v (max %d chars)\n", cfg.Sentiment.BodyEnabled, cfg.Sentiment.BodyMaxChars)
		fmt.Fprintf(out, "    LLM Provider:  %s (model: %s)\n", cfg.LLM.Primary, cfg.LLM.Model)
		fmt.Fprintf(out, "    API Server:    %s:%d\n", cfg.API.Host, cfg.API.Port)
		fmt.Fprintln(out)

		fmt.Fprintln(out, "  API Keys:")
		for _, k := range config.CheckAPIKeys(cfg) {
			status := "not set"
			if k.IsSet {
				status = fmt.Sprintf("set (%s: %s)", k.Source, k.Masked)
			}
			fmt.Fprintf(out, "    %-25s %s\n", k.Name+":", status)
		}

		fmt.Fprintln(out, line)
		return nil
	},
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seenimoa/tickerpulse/internal/pipeline"
	"github.com/seenimoa/tickerpulse/internal/report"
)

// errNoQuery is returned when the interactive prompt gets an empty answer.
var errNoQuery = errors.New("no query provided")

// --- Sentiment Command ---

var sentimentCmd = &cobra.Command{
	Use:   "sentiment [ticker or company]",
	Short: "Score recent news headlines for a ticker or company",
	Long: `Resolve a ticker or company name, fetch recent headlines and print a
sentiment snapshot. Without an argument the command prompts for input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := pipeline.NewFromConfig(cfg, nil, logger)
		if err != nil {
			return err
		}

		formatFlag, _ := cmd.Flags().GetString("format")
		format, err := report.ParseFormat(formatFlag)
		if err != nil {
			return err
		}

		var (
			query   string
			limit   int
			useBody bool
		)
		if len(args) == 1 {
			query = args[0]
			limit, _ = cmd.Flags().GetInt("limit")
			useBody, _ = cmd.Flags().GetBool("body")
		} else {
			query, limit, useBody, err = readInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), svc.BodyAvailable())
			if err != nil {
				return err
			}
		}

		snap, err := svc.FetchSentiment(cmd.Context(), query, limit, useBody)
		if err != nil {
			return err
		}

		out, err := report.Generate(snap, report.DefaultConfig(), format)
		if err != nil {
			return err
		}
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		} else {
			fmt.Fprint(cmd.OutOrStdout(), out)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nDone.")
		return nil
	},
}

func init() {
	sentimentCmd.Flags().IntP("limit", "n", pipeline.DefaultLimit, "number of headlines to analyze (1-100)")
	sentimentCmd.Flags().Bool("body", false, "score full article text when available (slower)")
	sentimentCmd.Flags().StringP("format", "f", "text", "output format: text or html")
	sentimentCmd.Flags().StringP("output", "o", "", "write the report to a file")
}

// readInteractive asks for the query, headline count and body preference.
// A blank or unparsable count falls back to the default; counts below one
// become one. The body question is only asked when body fetching is
// available.
func readInteractive(in io.Reader, out io.Writer, bodyAvailable bool) (query string, limit int, useBody bool, err error) {
	sc := bufio.NewScanner(in)
	ask := func(prompt string) string {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			return ""
		}
		return strings.TrimSpace(sc.Text())
	}

	query = ask("Ticker or company: ")
	if query == "" {
		return "", 0, false, errNoQuery
	}

	limit = pipeline.DefaultLimit
	if raw := ask(fmt.Sprintf("How many headlines to analyze [Default %d]: ", pipeline.DefaultLimit)); raw != "" {
		if n, convErr := strconv.Atoi(raw); convErr == nil {
			limit = max(1, n)
		}
	}

	if bodyAvailable {
		switch strings.ToLower(ask("Use full article text when available (slower) [y/N]: ")) {
		case "y", "yes", "1", "true", "t":
			useBody = true
		}
	}
	return query, limit, useBody, nil
}

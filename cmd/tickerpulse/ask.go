package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seenimoa/tickerpulse/internal/agent"
	"github.com/seenimoa/tickerpulse/internal/llm"
	"github.com/seenimoa/tickerpulse/internal/pipeline"
	"github.com/seenimoa/tickerpulse/internal/report"
)

// --- Ask Command (natural-language news agent) ---

var askCmd = &cobra.Command{
	Use:   "ask [prompt]",
	Short: "Ask for a news sentiment snapshot in plain language",
	Long: `Run the news agent on a natural-language request such as
"give me 10 headlines on NVIDIA". The company and headline count are
extracted with the configured LLM, or with pattern matching when no LLM
is available.`,
	Example: `  tickerpulse ask "5 latest headlines for AAPL"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := pipeline.NewFromConfig(cfg, nil, logger)
		if err != nil {
			return err
		}

		provider, err := llm.NewFromConfig(cfg.LLM)
		if err != nil {
			if !errors.Is(err, llm.ErrDisabled) {
				logger.Warn("LLM unavailable, using pattern fallbacks", "err", err)
			}
			provider = nil
		}

		extractor := agent.NewExtractor(provider, &llm.ChatOptions{
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
		}, logger)
		useBody, _ := cmd.Flags().GetBool("body")
		newsAgent := agent.NewNewsAgent(extractor, svc, useBody && svc.BodyAvailable(), logger)

		result := newsAgent.RunPrompt(cmd.Context(), strings.Join(args, " "))
		st := result.NewsResult
		if st == nil {
			return errors.New("news agent returned no result")
		}
		if st.Err != nil {
			return st.Err
		}

		out, err := report.GenerateText(st.Snapshot, report.DefaultConfig())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		logger.Debug("agent route", "route", result.RouteTaken)
		fmt.Fprintln(cmd.OutOrStdout(), "\nDone.")
		return nil
	},
}

func init() {
	askCmd.Flags().Bool("body", false, "score full article text when available (slower)")
}

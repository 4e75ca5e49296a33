package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"fillercount/internal/config"
	"fillercount/internal/counter"
	"fillercount/internal/logging"
	"fillercount/internal/services"
	"fillercount/internal/services/animefillerlist"
)

func runCount(cmd *cobra.Command, ctx *commandContext, flags countFlags, args []string) error {
	base, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	cfg, err := applyCountFlags(cmd, *base, flags)
	if err != nil {
		return err
	}

	logger, closeLogs, err := logging.NewFromConfig(&cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closeLogs()

	client, err := animefillerlist.New(animefillerlist.Config{
		BaseURL:    cfg.Source.BaseURL,
		UserAgent:  cfg.Source.UserAgent,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout()},
	})
	if err != nil {
		return err
	}
	processor := counter.NewProcessor(pageFetcher(client), counter.Options{
		Strict:         cfg.Parsing.Strict,
		NormalizeNames: cfg.Source.NormalizeNames,
		Logger:         logger,
	})

	runID := uuid.NewString()
	runCtx := services.WithRequestID(cmd.Context(), runID)
	logging.WithContext(runCtx, logger).Info("counting shows",
		logging.Int("shows", len(args)),
		logging.String("source", cfg.Source.BaseURL),
		logging.Bool("strict", cfg.Parsing.Strict),
	)

	out := cmd.OutOrStdout()
	renderer := newRenderer(cfg.Output.Format, out, colorEnabled(cfg.Output.Color, out), runID)
	failed, runErr := processor.Run(runCtx, args, renderer.report)
	if err := renderer.flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("write output: %w", err)
	}
	if runErr != nil {
		return runErr
	}
	if failed > 0 && flags.failOnError {
		return fmt.Errorf("%d of %d shows failed", failed, len(args))
	}
	return nil
}

// applyCountFlags overlays explicitly set flags on the loaded configuration.
func applyCountFlags(cmd *cobra.Command, cfg config.Config, flags countFlags) (config.Config, error) {
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(flags.format))
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(flags.logLevel))
	}
	if cmd.Flags().Changed("strict") {
		cfg.Parsing.Strict = flags.strict
	}
	if err := cfg.Validate(); err != nil {
		return cfg, services.Wrap(services.ErrConfiguration, "", "apply flags", "", err)
	}
	return cfg, nil
}

// pageFetcher adapts the site client to the processor's Fetcher. A failed
// fetch returns a nil interface rather than a typed nil page.
func pageFetcher(client *animefillerlist.Client) counter.Fetcher {
	return counter.FetcherFunc(func(ctx context.Context, show string) (counter.Page, error) {
		page, err := client.FetchPage(ctx, show)
		if err != nil {
			return nil, err
		}
		return page, nil
	})
}

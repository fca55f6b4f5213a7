package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"room_report/internal/adapters/observability"
	"room_report/internal/app"
	"room_report/internal/shared"
	"room_report/internal/storage/jsonfile"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := shared.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "summarizer:", err)
		return app.ExitInvalidInvocation
	}

	logger, closeLog, err := observability.NewLogger(cfg.LogPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "summarizer: open log:", err)
		return app.ExitIOError
	}
	defer func() { _ = closeLog() }()

	// every line of a run carries the same run_id; app.log is shared
	// across runs in append mode
	logger = logger.With().Str("run_id", uuid.New().String()).Logger()
	log.Logger = logger

	logger.Info().
		Str("input", cfg.InputPath).
		Str("output", cfg.OutputPath).
		Msg("summarizer starting")

	loader := jsonfile.NewLoader(logger)
	writer := jsonfile.NewWriter(logger)
	pipe := app.NewPipeline(loader, writer, logger)

	if err := pipe.Run(cfg.InputPath, cfg.OutputPath); err != nil {
		logger.Error().Err(err).Msg("an error occurred")
		return app.ExitCode(err)
	}

	logger.Info().Msg("summarizer completed")
	return app.ExitSuccess
}

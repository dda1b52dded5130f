// Package main is the entry point for the terminal minesweeper.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/minesweeper/internal/difficulty"
	"github.com/samdwyer/minesweeper/internal/game"
	"github.com/samdwyer/minesweeper/internal/logging"
	"github.com/samdwyer/minesweeper/internal/telemetry"
)

func main() {
	// Load .env file for local development; env vars may also be set directly
	envErr := godotenv.Load()

	opts := parseFlags(os.Args[1:])

	log, closer, err := logging.OpenFile(opts.logLevel, opts.logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if envErr != nil {
		log.WithError(envErr).Debug(".env file not loaded")
	}

	ctx := context.Background()

	if telemetry.ApplyHoneycombEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.WithError(err).Warn("telemetry setup failed, running without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.WithError(err).Error("telemetry shutdown failed")
				}
			}()
		}
	}

	g, err := game.New(opts.game, log)
	if err != nil {
		log.WithError(err).Error("failed to initialize game")
		fmt.Fprintf(os.Stderr, "Failed to initialize game: %v\n", err)
		os.Exit(1)
	}

	log.WithFields(logrus.Fields{
		"difficulty": opts.game.Difficulty,
		"time_limit": opts.game.TimeLimit,
		"seed":       opts.game.Seed,
	}).Info("starting")

	if err := g.Run(ctx); err != nil {
		log.WithError(err).Error("game error")
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	game     game.Config
	logLevel string
	logFile  string
}

// parseFlags reads command-line flags; defaults come from MINESWEEPER_* env vars.
func parseFlags(args []string) options {
	var opts options

	fs := flag.NewFlagSet("minesweeper", flag.ExitOnError)
	fs.StringVar(&opts.game.Difficulty, "difficulty", envString("MINESWEEPER_DIFFICULTY", "easy"),
		"easy, medium, hard or custom")
	fs.IntVar(&opts.game.Custom.Width, "width", envInt("MINESWEEPER_WIDTH", 9), "board width for -difficulty custom")
	fs.IntVar(&opts.game.Custom.Height, "height", envInt("MINESWEEPER_HEIGHT", 9), "board height for -difficulty custom")
	fs.IntVar(&opts.game.Custom.Mines, "mines", envInt("MINESWEEPER_MINES", 0),
		"mine count; overrides the preset when positive, required for custom")
	fs.IntVar(&opts.game.TimeLimit, "time-limit", envInt("MINESWEEPER_TIME_LIMIT", 0), "time limit in seconds, 0 for unlimited")
	fs.Int64Var(&opts.game.Seed, "seed", 0, "mine placement seed, 0 for random")
	fs.StringVar(&opts.logLevel, "log-level", envString("MINESWEEPER_LOG_LEVEL", "info"), "log level")
	fs.StringVar(&opts.logFile, "log-file", envString("MINESWEEPER_LOG_FILE", "minesweeper.log"), "log file path")
	fs.Parse(args)

	if opts.game.Difficulty == difficulty.CustomID && opts.game.Custom.Mines == 0 {
		opts.game.Custom.Mines = 10
	}
	return opts
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"itsss/internal/config"
	"itsss/internal/flow"
	"itsss/internal/logging"
	"itsss/internal/ui/live"
	"itsss/internal/ui/plain"
)

var (
	runLive  = live.Run
	runPlain = plain.Run
)

func runAssess(cmd *Command) func(args []string, streams Streams) int {
	return func(args []string, streams Streams) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, streams.Out)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		uiMode := fs.String("ui", "", "UI mode: auto|live|plain (default from config, else auto)")
		configPath := fs.String("config", "", "Path to config file (default: search for "+config.FileName+")")
		logPath := fs.String("log", "", "Write a debug log to this file")
		bankPath := fs.String("bank", "", "Question bank file (YAML or JSON; default: built-in)")
		noColor := fs.Bool("no-color", false, "Disable colors")
		fast := fs.Bool("fast", false, "Skip transition delays")
		if !parseFlags(cmd, fs, args, streams) {
			return ExitUsage
		}
		if rejectArgs(cmd, fs, streams) {
			return ExitUsage
		}

		cfg, resolvedPath, err := config.Resolve(*configPath)
		if err != nil {
			fmt.Fprintf(streams.ErrOut, "Failed to load config: %v\n", err)
			return ExitError
		}
		if *uiMode != "" {
			cfg.UI.Mode = *uiMode
		}
		if *noColor || os.Getenv("NO_COLOR") != "" {
			cfg.UI.NoColor = true
		}
		if *logPath != "" {
			cfg.Log.Path = *logPath
		}
		if *bankPath != "" {
			cfg.Questions.Path = *bankPath
		}
		bank, err := loadBank(cfg.Questions.Path)
		if err != nil {
			fmt.Fprintf(streams.ErrOut, "Failed to load questions: %v\n", err)
			return ExitError
		}

		decision, err := resolveUIMode(cfg.UI.Mode, streams.Out)
		if err != nil {
			fmt.Fprintf(streams.ErrOut, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(streams.ErrOut, decision.warning)
		}

		logger, err := logging.New(logging.Options{Path: cfg.Log.Path, Level: cfg.Log.Level})
		if err != nil {
			fmt.Fprintf(streams.ErrOut, "Failed to open log: %v\n", err)
			return ExitError
		}
		defer func() { _ = logger.Sync() }()

		timings := timingsFromConfig(cfg.Timings)
		if *fast {
			timings = flow.Timings{}
		}
		logger.Info("assessment starting",
			zap.String("config", resolvedPath),
			zap.String("questions", cfg.Questions.Path),
			zap.Bool("live", decision.useLive),
			zap.Duration("transition", timings.Transition),
			zap.Duration("advance", timings.Advance),
			zap.Duration("processing", timings.Processing))

		machine := flow.New(bank, flow.Options{Timings: timings, Logger: logger})
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		var state flow.State
		if decision.useLive {
			state, err = runLive(ctx, machine, live.RunOptions{
				Options:   live.Options{NoColor: cfg.UI.NoColor},
				Input:     streams.In,
				Output:    streams.Out,
				AltScreen: true,
			})
		} else {
			state, err = runPlain(ctx, machine, plain.Options{
				Input:     streams.In,
				Output:    streams.Out,
				ErrOutput: streams.ErrOut,
				Width:     terminalWidth(streams.Out),
			})
		}
		if err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(streams.ErrOut, "Assessment interrupted")
			} else {
				fmt.Fprintf(streams.ErrOut, "Assessment failed: %v\n", err)
			}
			logger.Warn("assessment aborted", zap.Error(err))
			return ExitError
		}
		logger.Info("assessment finished",
			zap.String("session", state.SessionID),
			zap.Stringer("step", state.Step))
		return ExitOK
	}
}

// timingsFromConfig converts millisecond settings to flow timings.
func timingsFromConfig(cfg config.TimingsConfig) flow.Timings {
	defaults := flow.DefaultTimings()
	return flow.Timings{
		Transition: millis(cfg.TransitionMs, defaults.Transition),
		Advance:    millis(cfg.AdvanceMs, defaults.Advance),
		Processing: millis(cfg.ProcessingMs, defaults.Processing),
	}
}

func millis(value *int, fallback time.Duration) time.Duration {
	if value == nil {
		return fallback
	}
	return time.Duration(*value) * time.Millisecond
}

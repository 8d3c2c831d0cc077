package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pkg/profile"
)

func main() {
	configPath := flag.String("config", "", "Path to a yaml config file")
	workers := flag.Int("workers", 0, "Number of concurrent workers")
	samples := flag.Int("samples", 0, "Total number of samples per check")
	seed := flag.Uint64("seed", 0, "Seed of the random sources")
	cpuProfile := flag.Bool("cpuprofile", false, "Write a cpu profile")
	flag.Parse()

	config, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workers":
			config.Workers = *workers
		case "samples":
			config.Samples = *samples
		case "seed":
			config.Seed = *seed
		case "cpuprofile":
			if *cpuProfile {
				config.Profile = "cpu"
			}
		}
	})

	if err := config.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(config.Log, os.Stderr)
	slog.SetDefault(logger)

	if err := execute(config, logger); err != nil {
		logger.Error("Bench failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func execute(config Config, logger *slog.Logger) error {
	switch config.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.Quiet).Stop()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return run(ctx, config, logger)
}

func run(ctx context.Context, config Config, logger *slog.Logger) error {
	logger.Info("Starting bench",
		slog.Int("workers", config.Workers),
		slog.Int("samples", config.Samples),
		slog.Uint64("seed", config.Seed),
		slog.Float64("epsilon", config.Epsilon))

	report, err := NewRunner(config, logger).Run(ctx)
	if err != nil {
		return err
	}

	for _, c := range report.Checks {
		logger.Info("Check finished",
			slog.String("check", c.Name),
			slog.Int("count", c.Timings.Count),
			slog.Duration("mean", c.Timings.Mean()),
			slog.Duration("movingAverage", c.Timings.MovingAverage),
			slog.Duration("min", c.Timings.Min),
			slog.Duration("max", c.Timings.Max),
			slog.Float64("worstError", c.WorstError))
	}

	for _, v := range report.Violations {
		logger.Warn("Violation",
			slog.String("check", v.Check),
			slog.Int("worker", v.Worker),
			slog.Int("sample", v.Sample),
			slog.Float64("error", v.Error),
			slog.String("detail", v.Detail))
	}

	if len(report.Violations) > 0 {
		return fmt.Errorf("%d violations found", len(report.Violations))
	}

	return nil
}

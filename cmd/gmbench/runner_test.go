package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	config := Defaults()
	config.Workers = 3
	config.Samples = 200
	return config
}

func TestRunner_NoViolations(t *testing.T) {
	runner := NewRunner(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	report, err := runner.Run(context.Background())
	require.NoError(t, err)
	require.Empty(t, report.Violations)

	require.Len(t, report.Checks, len(checks))
	for _, c := range report.Checks {
		require.Equal(t, 200, c.Timings.Count, c.Name)
		require.LessOrEqual(t, c.WorstError, 1e-6, c.Name)
	}
}

func TestRunner_SelectedChecks(t *testing.T) {
	config := testConfig()
	config.Checks = []string{"identity", "then-2d"}

	report, err := NewRunner(config, slog.New(slog.NewTextHandler(io.Discard, nil))).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Checks, 2)
	require.Equal(t, "identity", report.Checks[0].Name)
	require.Equal(t, "then-2d", report.Checks[1].Name)

	// identity is exact
	require.Equal(t, 0.0, report.Checks[0].WorstError)
}

func TestRunner_ReportsViolations(t *testing.T) {
	config := testConfig()
	config.Checks = []string{"inverse-2d"}

	// with a negative tolerance every non exact sample is reported
	config.Epsilon = -1

	report, err := NewRunner(config, slog.New(slog.NewTextHandler(io.Discard, nil))).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Violations, 200)

	for idx := 1; idx < len(report.Violations); idx++ {
		require.GreaterOrEqual(t, report.Violations[idx-1].Error, report.Violations[idx].Error)
	}
}

func TestRunner_Reproducible(t *testing.T) {
	config := testConfig()
	config.Checks = []string{"inverse-3d", "gonum-inverse"}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	first, err := NewRunner(config, logger).Run(context.Background())
	require.NoError(t, err)

	second, err := NewRunner(config, logger).Run(context.Background())
	require.NoError(t, err)

	for idx := range first.Checks {
		require.Equal(t, first.Checks[idx].WorstError, second.Checks[idx].WorstError)
	}
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil))).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestChecks(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for _, c := range checks {
		t.Run(c.Name, func(t *testing.T) {
			for range 100 {
				observed, detail := c.Run(r)
				require.LessOrEqual(t, observed, 1e-6, detail)
			}
		})
	}
}

func TestRun_FailsOnViolations(t *testing.T) {
	config := testConfig()
	config.Checks = []string{"then-2d"}
	config.Epsilon = -1

	var out bytes.Buffer
	err := run(context.Background(), config, newLogger(config.Log, &out))
	require.Error(t, err)
	require.Contains(t, out.String(), "Violation")
}

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer

	logger := newLogger(LogConfig{Level: "warn", Format: "json"}, &out)
	logger.Info("hidden")
	logger.Warn("shown", slog.Int("answer", 42))

	require.NotContains(t, out.String(), "hidden")
	require.Contains(t, out.String(), `"answer":42`)

	file := t.TempDir() + "/bench.log"

	out.Reset()
	logger = newLogger(LogConfig{Level: "debug", File: file}, &out)
	logger.Debug("to both")

	require.Contains(t, out.String(), "to both")
	require.FileExists(t, file)
}

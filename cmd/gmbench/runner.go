package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

type Violation struct {
	Check  string
	Worker int
	Sample int
	Error  float64
	Detail string
}

type CheckReport struct {
	Name       string
	Timings    Timings
	WorstError float64
}

type Report struct {
	Checks     []CheckReport
	Violations []Violation
}

type Runner struct {
	Config Config
	Logger *slog.Logger

	mu     sync.Mutex
	report map[string]*CheckReport
	found  []Violation
}

func NewRunner(config Config, logger *slog.Logger) *Runner {
	return &Runner{
		Config: config,
		Logger: logger,
	}
}

func (r *Runner) selectedChecks() []check {
	if len(r.Config.Checks) == 0 {
		return checks
	}

	var selected []check
	for _, name := range r.Config.Checks {
		c, _ := checkByName(name)
		selected = append(selected, c)
	}

	return selected
}

// Run distributes the samples over the configured number of workers. Each
// worker draws from its own random source derived from the seed, so a run
// is reproducible for a fixed seed and worker count.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	r.report = map[string]*CheckReport{}
	r.found = nil

	selected := r.selectedChecks()

	group, ctx := errgroup.WithContext(ctx)

	for worker := range r.Config.Workers {
		samples := r.Config.Samples / r.Config.Workers
		if worker < r.Config.Samples%r.Config.Workers {
			samples += 1
		}

		group.Go(func() error {
			return r.runWorker(ctx, worker, samples, selected)
		})
	}

	if err := group.Wait(); err != nil {
		return Report{}, err
	}

	var report Report
	for _, c := range selected {
		if checkReport, ok := r.report[c.Name]; ok {
			report.Checks = append(report.Checks, *checkReport)
		}
	}

	report.Violations = r.found

	slices.SortFunc(report.Violations, func(a, b Violation) int {
		switch {
		case a.Error > b.Error:
			return -1
		case a.Error < b.Error:
			return 1
		default:
			return 0
		}
	})

	return report, nil
}

func (r *Runner) runWorker(ctx context.Context, worker, samples int, selected []check) error {
	rng := rand.New(rand.NewPCG(r.Config.Seed, uint64(worker)))

	logger := r.Logger.With(slog.Int("worker", worker))
	logger.Debug("Worker started", slog.Int("samples", samples))

	local := make([]CheckReport, len(selected))
	var violations []Violation

	for sample := range samples {
		if err := ctx.Err(); err != nil {
			return err
		}

		for idx, c := range selected {
			watch := startStopwatch()
			observed, detail := c.Run(rng)
			watch.Stop(&local[idx].Timings)

			local[idx].WorstError = max(local[idx].WorstError, observed)

			if observed > r.Config.Epsilon {
				violations = append(violations, Violation{
					Check:  c.Name,
					Worker: worker,
					Sample: sample,
					Error:  observed,
					Detail: detail,
				})
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for idx, c := range selected {
		merged, ok := r.report[c.Name]
		if !ok {
			merged = &CheckReport{Name: c.Name}
			r.report[c.Name] = merged
		}

		merged.Timings = merged.Timings.Merge(local[idx].Timings)
		merged.WorstError = max(merged.WorstError, local[idx].WorstError)
	}

	r.found = append(r.found, violations...)

	logger.Debug("Worker finished", slog.Int("violations", len(violations)))

	return nil
}

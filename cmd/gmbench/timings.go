package main

import (
	"time"
)

// Timings aggregates the durations of a single check.
type Timings struct {
	Count         int
	Latest        time.Duration
	MovingAverage time.Duration
	Total         time.Duration
	Min, Max      time.Duration
}

func (t Timings) Add(d time.Duration) Timings {
	t.Latest = d

	if t.Count == 0 {
		t.Min = d
		t.Max = d
		t.MovingAverage = d
	} else {
		t.Min = min(t.Min, d)
		t.Max = max(t.Max, d)
		t.MovingAverage = (95*t.MovingAverage + 5*d) / 100
	}

	t.Total += d
	t.Count += 1

	return t
}

// Merge combines the timings of two workers. The moving averages are
// weighted by their sample count.
func (t Timings) Merge(other Timings) Timings {
	switch {
	case other.Count == 0:
		return t
	case t.Count == 0:
		return other
	}

	count := t.Count + other.Count

	return Timings{
		Count:         count,
		Latest:        other.Latest,
		MovingAverage: (t.MovingAverage*time.Duration(t.Count) + other.MovingAverage*time.Duration(other.Count)) / time.Duration(count),
		Total:         t.Total + other.Total,
		Min:           min(t.Min, other.Min),
		Max:           max(t.Max, other.Max),
	}
}

func (t Timings) Mean() time.Duration {
	if t.Count == 0 {
		return 0
	}

	return t.Total / time.Duration(t.Count)
}

type stopwatch struct {
	startTime time.Time
}

func startStopwatch() stopwatch {
	return stopwatch{startTime: time.Now()}
}

func (s stopwatch) Stop(timings *Timings) {
	*timings = timings.Add(time.Since(s.startTime))
}

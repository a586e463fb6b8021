package happy

import (
	"fmt"
	"time"
)

// Result is the outcome of a single check
type Result struct {
	Number  int64
	IsHappy bool
	Steps   int
}

// Metrics records check outcomes
type Metrics interface {
	RecordCheck(isHappy bool, steps int, duration time.Duration)
}

type noopMetrics struct{}

func (noopMetrics) RecordCheck(bool, int, time.Duration) {}

// Checker validates input and evaluates the happy number predicate.
// It holds no per-request state and is safe for concurrent use.
type Checker struct {
	metrics Metrics
}

// NewChecker creates a new checker. A nil metrics recorder disables recording.
func NewChecker(metrics Metrics) *Checker {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Checker{metrics: metrics}
}

// Check validates n and reports whether it is happy
func (c *Checker) Check(n int64) (*Result, error) {
	if err := Validate(n); err != nil {
		return nil, fmt.Errorf("check %d: %w", n, err)
	}

	start := time.Now()
	path := Trace(n)
	isHappy := reachesOne(path)

	// Steps counts transform applications, so 1 is zero steps away.
	steps := len(path) - 1
	c.metrics.RecordCheck(isHappy, steps, time.Since(start))

	return &Result{
		Number:  n,
		IsHappy: isHappy,
		Steps:   steps,
	}, nil
}

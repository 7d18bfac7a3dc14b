// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"context"
	"fmt"
	"time"

	"github.com/Reelback96/MoviePollGame/logger"
)

// StepError names the step a pipeline stopped at.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

type step struct {
	name string
	run  func(context.Context) error
}

// Pipeline runs its steps strictly in order and stops at the first error.
type Pipeline struct {
	steps []step
}

func NewPipeline() *Pipeline {
	return &Pipeline{}
}

func (p *Pipeline) Add(name string, run func(context.Context) error) *Pipeline {
	p.steps = append(p.steps, step{name: name, run: run})
	return p
}

// Steps returns the step names in execution order.
func (p *Pipeline) Steps() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.name
	}
	return names
}

func (p *Pipeline) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	for _, s := range p.steps {
		if err := ctx.Err(); err != nil {
			return &StepError{Step: s.name, Err: err}
		}

		start := time.Now()
		if err := s.run(ctx); err != nil {
			log.Warn("pipeline step failed", "step", s.name, "error", err)
			return &StepError{Step: s.name, Err: err}
		}
		log.Debug("pipeline step done", "step", s.name, "duration_ms", time.Since(start).Milliseconds())
	}
	return nil
}

// SPDX-License-Identifier: MIT

package toggle

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SolveAll solves every instance and returns results in input order.
// Up to the configured number of workers run at once; each writes only its
// own slot of the result slice. Infeasible instances yield Feasible=false
// results. The first error (invalid input, search limit or ctx cancellation)
// stops the batch.
func (s *Solver) SolveAll(ctx context.Context, instances []Instance) ([]Result, error) {
	results := make([]Result, len(instances))
	err := s.each(ctx, instances, func(i int, res Result) error {
		results[i] = res
		return nil
	})
	if err != nil {
		return nil, toggleErrorf(opSolveAll, err)
	}
	return results, nil
}

// Total returns the sum of the minimum weights of all instances. An
// infeasible instance aborts the computation with ErrInfeasibleInstance
// naming its index; no partial sum is returned.
func (s *Solver) Total(ctx context.Context, instances []Instance) (int, error) {
	weights := make([]int, len(instances))
	err := s.each(ctx, instances, func(i int, res Result) error {
		if !res.Feasible {
			return fmt.Errorf("instance %d: %w", i, ErrInfeasibleInstance)
		}
		weights[i] = res.Weight
		return nil
	})
	if err != nil {
		return 0, toggleErrorf(opTotal, err)
	}

	sum := 0
	for _, w := range weights {
		sum += w
	}
	s.cfg.log.WithFields(logrus.Fields{
		"instances": len(instances),
		"total":     sum,
	}).Debug("batch solved")
	return sum, nil
}

// each solves instances on at most cfg.workers goroutines and hands every
// result to fn together with its index. fn runs on the worker goroutine and
// must only touch state owned by that index. The first error from Solve or
// fn cancels the instances not yet started.
func (s *Solver) each(ctx context.Context, instances []Instance, fn func(i int, res Result) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.workers)
	for i := range instances {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.Solve(instances[i])
			if err != nil {
				return fmt.Errorf("instance %d: %w", i, err)
			}
			return fn(i, res)
		})
	}
	return g.Wait()
}

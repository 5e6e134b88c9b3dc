// SPDX-License-Identifier: MIT

package evaluation

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/commeval/metrics"
	"github.com/katalvlaran/commeval/partition"
)

// Evaluator computes Reports. The zero value is not usable; call New.
// An Evaluator holds no mutable state and may be shared between goroutines.
type Evaluator struct {
	modularity ModularityFunc
	nmi        NMIFunc
	align      func(golden, algorithm partition.Partition) ([]int, []int, error)
	log        *zap.Logger
}

// New returns an Evaluator using quality.Modularity and
// metrics.NormalizedMutualInformation unless overridden.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		modularity: defaultModularity,
		nmi:        metrics.NormalizedMutualInformation[int],
		align:      partition.Align,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate compares algorithm against golden on g.
//
// Steps:
//  1. Align both partitions into label sequences over the golden vertices.
//  2. Modularity of algorithm over g (collaborator).
//  3. NMI with arithmetic normalization (collaborator).
//  4. NVI and pairwise Jaccard index.
//
// Any failure is returned wrapped with the step that produced it.
func (e *Evaluator) Evaluate(golden, algorithm partition.Partition, g graph.Undirected, parameter float64) (Report, error) {
	if g == nil {
		return Report{}, ErrNilGraph
	}

	trueLabels, predLabels, err := e.align(golden, algorithm)
	if err != nil {
		return Report{}, fmt.Errorf("evaluation: align labels: %w", err)
	}
	if len(trueLabels) == 0 {
		return Report{}, ErrEmptyGolden
	}

	r := Report{Parameter: parameter, CommunityCount: algorithm.Len()}

	if r.Modularity, err = e.modularity(g, algorithm); err != nil {
		return Report{}, fmt.Errorf("evaluation: modularity: %w", err)
	}
	if r.NormalizedMutualInformation, err = e.nmi(trueLabels, predLabels, metrics.Arithmetic); err != nil {
		return Report{}, fmt.Errorf("evaluation: nmi: %w", err)
	}
	if r.NormalizedVariationOfInformation, err = metrics.NormalizedVariationOfInformation(trueLabels, predLabels); err != nil {
		return Report{}, fmt.Errorf("evaluation: nvi: %w", err)
	}
	if r.JaccardIndex, err = metrics.JaccardIndex(trueLabels, predLabels); err != nil {
		return Report{}, fmt.Errorf("evaluation: jaccard: %w", err)
	}

	e.log.Debug("partition evaluated",
		zap.Float64("parameter", parameter),
		zap.Int("entities", len(trueLabels)),
		zap.Int("communityCount", r.CommunityCount),
		zap.Float64("modularity", r.Modularity),
		zap.Float64("nmi", r.NormalizedMutualInformation),
		zap.Float64("nvi", r.NormalizedVariationOfInformation),
		zap.Float64("jaccard", r.JaccardIndex),
	)

	return r, nil
}

// Run is one input of Sweep.
type Run struct {
	Parameter float64
	Golden    partition.Partition
	Algorithm partition.Partition
	Graph     graph.Undirected
}

// Sweep evaluates runs in order. It stops at the first failing run or when
// ctx is done, returning the reports completed so far together with the error.
func (e *Evaluator) Sweep(ctx context.Context, runs []Run) ([]Report, error) {
	reports := make([]Report, 0, len(runs))
	for i, run := range runs {
		if err := ctx.Err(); err != nil {
			return reports, fmt.Errorf("evaluation: sweep stopped before run %d: %w", i, err)
		}
		r, err := e.Evaluate(run.Golden, run.Algorithm, run.Graph, run.Parameter)
		if err != nil {
			e.log.Warn("sweep run failed", zap.Int("run", i), zap.Float64("parameter", run.Parameter), zap.Error(err))

			return reports, fmt.Errorf("evaluation: run %d (parameter %v): %w", i, run.Parameter, err)
		}
		reports = append(reports, r)
	}
	e.log.Info("sweep complete", zap.Int("runs", len(reports)))

	return reports, nil
}

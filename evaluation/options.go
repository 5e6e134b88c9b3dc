// SPDX-License-Identifier: MIT

package evaluation

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/commeval/metrics"
	"github.com/katalvlaran/commeval/partition"
	"github.com/katalvlaran/commeval/quality"
)

// ModularityFunc scores a partition against the graph it partitions.
// Implementations must not mutate their inputs.
type ModularityFunc func(g graph.Undirected, p partition.Partition) (float64, error)

// NMIFunc scores two equal-length label sequences in [0, 1].
type NMIFunc func(trueLabels, predLabels []int, avg metrics.AverageMethod) (float64, error)

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithModularity replaces the modularity collaborator. Panics on nil.
func WithModularity(fn ModularityFunc) Option {
	if fn == nil {
		panic("evaluation: WithModularity(nil)")
	}
	return func(e *Evaluator) { e.modularity = fn }
}

// WithNMI replaces the normalized mutual information collaborator. Panics on nil.
func WithNMI(fn NMIFunc) Option {
	if fn == nil {
		panic("evaluation: WithNMI(nil)")
	}
	return func(e *Evaluator) { e.nmi = fn }
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.log = l
		}
	}
}

// WithoutValidation derives labels with partition.AlignUnchecked, so a
// vertex present in several communities keeps the last one.
func WithoutValidation() Option {
	return func(e *Evaluator) { e.align = partition.AlignUnchecked }
}

func defaultModularity(g graph.Undirected, p partition.Partition) (float64, error) {
	return quality.Modularity(g, p)
}

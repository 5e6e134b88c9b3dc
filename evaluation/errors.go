// SPDX-License-Identifier: MIT

package evaluation

import "errors"

var (
	// ErrNilGraph indicates Evaluate was called without a graph.
	ErrNilGraph = errors.New("evaluation: graph is nil")

	// ErrEmptyGolden indicates a golden partition spanning no vertices.
	ErrEmptyGolden = errors.New("evaluation: golden partition is empty")
)

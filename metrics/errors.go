// SPDX-License-Identifier: MIT

package metrics

import "errors"

var (
	// ErrEmptyLabels indicates an empty label sequence.
	ErrEmptyLabels = errors.New("metrics: label sequence is empty")

	// ErrLengthMismatch indicates two label sequences of different lengths.
	ErrLengthMismatch = errors.New("metrics: label sequences differ in length")

	// ErrUnknownAverage indicates an AverageMethod outside the defined constants.
	ErrUnknownAverage = errors.New("metrics: unknown average method")
)

// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewBits indicates a size parameter below its minimum.
var ErrTooFewBits = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was called without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

const (
	methodRandomInstance = "RandomInstance"
	methodRandomBatch    = "RandomBatch"
)

// builderErrorf prefixes err with the method name, keeping it matchable via errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}

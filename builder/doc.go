// SPDX-License-Identifier: MIT

// Package builder generates deterministic toggle.Instance fixtures for tests,
// benchmarks and the `xorsolve gen` command.
//
// What
//
//   - RandomInstance(n, m, opts...): n target bits, m operations; every
//     (operation, bit) pair is included independently with probability p.
//   - RandomBatch(count, n, m, opts...): count independent instances, each
//     drawn from its own RNG stream derived from the configured source, so
//     instance i does not depend on how many draws instance i-1 consumed.
//
// Options
//
//   - WithSeed(seed) / WithRand(r): RNG source (required).
//   - WithDensity(p): inclusion probability, default 0.3.
//   - WithFeasible(): the target is the XOR of a random subset of the
//     generated operations, so the instance is always solvable.
//   - WithDependentOps(k): append k operations that are XOR combinations of
//     earlier ones. Each lies in the column span, so the nullspace grows by
//     exactly k (requires m > 0).
//
// Determinism
//
//	Same options and seed yield identical instances. Draw order is fixed:
//	operations (j asc, bit asc), dependent operations, then target.
//
// Errors
//
//   - ErrTooFewBits          n < 1 or m < 0.
//   - ErrInvalidProbability  p outside [0, 1].
//   - ErrNeedRandSource      no RNG configured.
package builder

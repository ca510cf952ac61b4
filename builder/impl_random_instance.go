// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/xorsolve/toggle"
)

const (
	minBits = 1
	minOps  = 0
)

// RandomInstance samples an instance with n target bits and m base
// operations (plus any WithDependentOps extras).
func RandomInstance(n, m int, opts ...Option) (toggle.Instance, error) {
	cfg := newBuilderConfig(opts...)
	if err := validate(methodRandomInstance, n, m, cfg); err != nil {
		return toggle.Instance{}, err
	}
	return sample(n, m, cfg), nil
}

// RandomBatch samples count instances, each from its own derived RNG stream.
func RandomBatch(count, n, m int, opts ...Option) ([]toggle.Instance, error) {
	cfg := newBuilderConfig(opts...)
	if count < 0 {
		return nil, builderErrorf(methodRandomBatch, "count=%d < 0: %w", count, ErrTooFewBits)
	}
	if err := validate(methodRandomBatch, n, m, cfg); err != nil {
		return nil, err
	}

	out := make([]toggle.Instance, count)
	for i := range out {
		sub := cfg
		sub.rng = deriveRNG(cfg.rng, uint64(i))
		out[i] = sample(n, m, sub)
	}
	return out, nil
}

func validate(method string, n, m int, cfg builderConfig) error {
	if n < minBits {
		return builderErrorf(method, "n=%d < min=%d: %w", n, minBits, ErrTooFewBits)
	}
	if m < minOps {
		return builderErrorf(method, "m=%d < min=%d: %w", m, minOps, ErrTooFewBits)
	}
	if cfg.density < probMin || cfg.density > probMax {
		return builderErrorf(method, "p=%.6f not in [%.1f,%.1f]: %w",
			cfg.density, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil {
		return builderErrorf(method, "%w", ErrNeedRandSource)
	}
	return nil
}

// sample draws one instance. Operation positions are ascending and unique.
func sample(n, m int, cfg builderConfig) toggle.Instance {
	rng := cfg.rng
	masks := make([][]bool, 0, m+cfg.dependentOp)

	for j := 0; j < m; j++ {
		mask := make([]bool, n)
		for i := 0; i < n; i++ {
			mask[i] = rng.Float64() < cfg.density
		}
		masks = append(masks, mask)
	}

	for d := 0; d < cfg.dependentOp && m > 0; d++ {
		mask := make([]bool, n)
		picks := 2 + rng.Intn(2)
		for p := 0; p < picks; p++ {
			src := masks[rng.Intn(len(masks))]
			for i := range mask {
				mask[i] = mask[i] != src[i]
			}
		}
		masks = append(masks, mask)
	}

	target := make([]bool, n)
	if cfg.feasible {
		for _, mask := range masks {
			if rng.Intn(2) == 1 {
				for i := range target {
					target[i] = target[i] != mask[i]
				}
			}
		}
	} else {
		for i := range target {
			target[i] = rng.Intn(2) == 1
		}
	}

	ops := make([][]int, len(masks))
	for j, mask := range masks {
		ops[j] = []int{}
		for i, on := range mask {
			if on {
				ops[j] = append(ops[j], i)
			}
		}
	}
	return toggle.Instance{Target: target, Operations: ops}
}

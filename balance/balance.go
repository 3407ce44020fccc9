// Package balance adjusts a training split for class imbalance before a
// classifier sees it. A plan selects one of four strategies:
//
//   - StrategyNone: training set unchanged.
//   - StrategyWeight: composition unchanged; every sample gets weight
//     0.5/countOfItsClass so both classes contribute total weight 0.5
//     regardless of raw counts. The effective sample count does not change.
//   - StrategyUndersample: the over-represented class is cut down to the
//     plan's target count by a seeded draw without replacement; the
//     remainder is discarded. The effective sample count shrinks.
//   - StrategyOversample: the under-represented class is drawn up to the
//     plan's target count WITH replacement. The effective sample count
//     grows, and drawn indices repeat.
//
// Target counts are always explicit plan configuration, never inferred.
package balance

import (
	"math/rand/v2"

	"github.com/rnakit/lncbench/dataset"
	"github.com/rnakit/lncbench/pkg/errors"
)

// Strategy identifies a class-balancing approach.
type Strategy int

const (
	// StrategyNone leaves the training set unchanged.
	StrategyNone Strategy = iota
	// StrategyWeight keeps all samples and equalizes total class weight.
	StrategyWeight
	// StrategyUndersample discards majority-class samples down to a target.
	StrategyUndersample
	// StrategyOversample repeats minority-class samples up to a target.
	StrategyOversample
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategyWeight:
		return "weight"
	case StrategyUndersample:
		return "undersample"
	case StrategyOversample:
		return "oversample"
	default:
		return "unknown"
	}
}

// Plan configures one balancing invocation. PcRNA and LncRNA are the exact
// per-class target counts used by the resampling strategies; StrategyNone and
// StrategyWeight ignore them.
type Plan struct {
	Strategy Strategy
	PcRNA    int
	LncRNA   int
}

// Balance applies the plan to a training split described by its labels.
//
// It returns either a sample index list (resampling strategies; indices are
// positions within the training split and may repeat under oversampling) or
// a per-sample weight vector (StrategyWeight), never both. The index list
// is nil-safe for StrategyNone and StrategyWeight: it is the identity.
func Balance(labels []dataset.Label, plan Plan, seed int64) (indices []int, weights []float64, err error) {
	if len(labels) == 0 {
		return nil, nil, errors.NewModelError("balance.Balance", "empty training split", errors.ErrEmptyData)
	}

	var pcIdx, lncIdx []int
	for i, l := range labels {
		if l == dataset.LncRNA {
			lncIdx = append(lncIdx, i)
		} else {
			pcIdx = append(pcIdx, i)
		}
	}

	switch plan.Strategy {
	case StrategyNone:
		return identity(len(labels)), nil, nil

	case StrategyWeight:
		if len(pcIdx) == 0 {
			return nil, nil, errors.Wrap(errors.ErrNoNegatives, "balance.Balance: cannot weight")
		}
		if len(lncIdx) == 0 {
			return nil, nil, errors.Wrap(errors.ErrNoPositives, "balance.Balance: cannot weight")
		}
		wPc := 0.5 / float64(len(pcIdx))
		wLnc := 0.5 / float64(len(lncIdx))
		weights = make([]float64, len(labels))
		for i, l := range labels {
			if l == dataset.LncRNA {
				weights[i] = wLnc
			} else {
				weights[i] = wPc
			}
		}
		return identity(len(labels)), weights, nil

	case StrategyUndersample:
		r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
		pc, err := drawWithoutReplacement(r, pcIdx, plan.PcRNA, dataset.PcRNA)
		if err != nil {
			return nil, nil, err
		}
		lnc, err := drawWithoutReplacement(r, lncIdx, plan.LncRNA, dataset.LncRNA)
		if err != nil {
			return nil, nil, err
		}
		return merge(r, pc, lnc), nil, nil

	case StrategyOversample:
		r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
		pc, err := drawUpTo(r, pcIdx, plan.PcRNA, dataset.PcRNA)
		if err != nil {
			return nil, nil, err
		}
		lnc, err := drawUpTo(r, lncIdx, plan.LncRNA, dataset.LncRNA)
		if err != nil {
			return nil, nil, err
		}
		return merge(r, pc, lnc), nil, nil

	default:
		return nil, nil, errors.NewValidationError("plan.Strategy", "unknown strategy", plan.Strategy)
	}
}

func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// drawWithoutReplacement returns exactly count distinct indices.
// Requesting more than available is a configuration error.
func drawWithoutReplacement(r *rand.Rand, pool []int, count int, class dataset.Label) ([]int, error) {
	if count < 0 {
		return nil, errors.NewValidationError("count", "negative target count", count)
	}
	if count > len(pool) {
		return nil, errors.NewInsufficientSamplesError("Balancer.Balance", class.String(), count, len(pool))
	}
	shuf := append([]int(nil), pool...)
	r.Shuffle(len(shuf), func(i, j int) {
		shuf[i], shuf[j] = shuf[j], shuf[i]
	})
	return shuf[:count], nil
}

// drawUpTo returns exactly count indices: without replacement while the pool
// suffices, with replacement beyond it. Replacement is what lets the minority
// class reach a target above its raw size.
func drawUpTo(r *rand.Rand, pool []int, count int, class dataset.Label) ([]int, error) {
	if count < 0 {
		return nil, errors.NewValidationError("count", "negative target count", count)
	}
	if len(pool) == 0 && count > 0 {
		return nil, errors.NewInsufficientSamplesError("Balancer.Balance", class.String(), count, 0)
	}
	if count <= len(pool) {
		return drawWithoutReplacement(r, pool, count, class)
	}
	out := make([]int, count)
	for i := range out {
		out[i] = pool[r.IntN(len(pool))]
	}
	return out, nil
}

// merge interleaves the two class draws into one shuffled training order.
func merge(r *rand.Rand, a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

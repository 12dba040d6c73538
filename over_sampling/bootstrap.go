package over_sampling

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/imbgo/pkg/errors"
)

// selectBootstrap computes the eligible pool of rows belonging to class
// and draws count row indices from it uniformly at random with
// replacement, in draw order. Duplicates in the result are expected.
//
// A class with an empty pool is a configuration error: the target mapping
// references a class absent from y.
func selectBootstrap(y []int, class, count int, rng *rand.Rand) (eligible, drawn []int, err error) {
	for i, label := range y {
		if label == class {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return nil, nil, errors.NewEmptyPoolError("RandomOverSampler.FitResample", class)
	}

	drawn = make([]int, count)
	for k := range drawn {
		drawn[k] = eligible[rng.IntN(len(eligible))]
	}
	return eligible, drawn, nil
}

package over_sampling

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/imbgo/dataset"
)

// smoothingConstant computes the Silverman-style rule-of-thumb bandwidth
// for n samples and f features. The global row and feature counts of X are
// used, not the per-class pool size; this matches the ROSE reference
// behavior and keeps the constant invariant across classes within one
// resampling call.
func smoothingConstant(n, f int) float64 {
	return math.Pow(4/(float64(f+2)*float64(n)), 1/float64(f+4))
}

// smoothedBootstrap generates the perturbed rows for one class: each
// bootstrap-drawn row plus independent Gaussian noise scaled per feature
// by shrinkage * bandwidth * class std. The noise scale is diagonal, so
// features are perturbed independently. Zero class variance in a feature
// yields zero noise there and the draw degenerates to exact duplication,
// which is accepted behavior.
//
// Normal deviates are consumed from rng in row-major order over the
// (len(drawn), features) noise matrix, after the bootstrap draws for the
// class. The result is cast back into X's representation (and sparse
// storage format), so sparse input yields sparse output.
func smoothedBootstrap(X dataset.NumericMatrix, eligible, drawn []int, shrinkage float64, rng *rand.Rand) dataset.NumericMatrix {
	n, f := X.Rows(), X.Cols()
	h := smoothingConstant(n, f)

	variance := X.ColumnVariance(eligible)
	scale := make([]float64, f)
	for j := range scale {
		scale[j] = shrinkage * h * math.Sqrt(variance[j])
	}

	block := mat.NewDense(len(drawn), f, nil)
	row := make([]float64, f)
	for k, idx := range drawn {
		X.RowTo(row, idx)
		for j := 0; j < f; j++ {
			block.Set(k, j, row[j]+rng.NormFloat64()*scale[j])
		}
	}
	return X.FromDense(block)
}

package errors

import (
	"math"
)

// CheckNumericalStability checks whether values contain NaN or Inf and
// returns a ValueError describing the operation if so. Smoothed-bootstrap
// output is intentionally not guarded with this; it exists for callers
// that want to treat non-finite resampled values as a data-quality signal.
func CheckNumericalStability(operation string, values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewValueError(operation, "non-finite value detected")
		}
	}
	return nil
}

// CheckMatrix checks all values of a matrix for NaN or Inf.
func CheckMatrix(operation string, matrix interface{ At(int, int) float64 }, rows, cols int) error {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := matrix.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return NewValueError(operation, "non-finite value detected")
			}
		}
	}
	return nil
}

// SafeDivide performs division with protection against division by zero.
// Returns 0 if the denominator is zero or close to zero.
func SafeDivide(numerator, denominator float64) float64 {
	if math.Abs(denominator) < 1e-10 {
		return 0
	}
	return numerator / denominator
}

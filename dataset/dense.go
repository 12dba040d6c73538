package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/imbgo/core/parallel"
)

// Dense is a dense feature matrix backed by a gonum *mat.Dense.
type Dense struct {
	m *mat.Dense
}

// NewDense wraps a gonum dense matrix. The matrix is used as-is; callers
// that need isolation should pass a copy.
func NewDense(m *mat.Dense) *Dense {
	return &Dense{m: m}
}

// FromMatrix copies an arbitrary gonum matrix into a new Dense.
func FromMatrix(m mat.Matrix) *Dense {
	var d mat.Dense
	d.CloneFrom(m)
	return &Dense{m: &d}
}

// Mat exposes the underlying gonum matrix.
func (d *Dense) Mat() *mat.Dense { return d.m }

// Rows implements Matrix.
func (d *Dense) Rows() int {
	r, _ := d.m.Dims()
	return r
}

// Cols implements Matrix.
func (d *Dense) Cols() int {
	_, c := d.m.Dims()
	return c
}

// Kind implements Matrix.
func (d *Dense) Kind() string { return KindDense }

// Dims implements mat.Matrix.
func (d *Dense) Dims() (r, c int) { return d.m.Dims() }

// At implements mat.Matrix.
func (d *Dense) At(i, j int) float64 { return d.m.At(i, j) }

// T implements mat.Matrix.
func (d *Dense) T() mat.Matrix { return d.m.T() }

// SelectRows implements Matrix.
func (d *Dense) SelectRows(indices []int) Matrix {
	_, c := d.m.Dims()
	out := mat.NewDense(len(indices), c, nil)
	for k, idx := range indices {
		out.SetRow(k, d.m.RawRowView(idx))
	}
	return &Dense{m: out}
}

// ColumnVariance implements NumericMatrix. The per-feature scan is
// independent across features and carries no randomness, so it is split
// across CPU cores for wide matrices.
func (d *Dense) ColumnVariance(rows []int) []float64 {
	_, c := d.m.Dims()
	n := float64(len(rows))
	variance := make([]float64, c)
	if n == 0 {
		return variance
	}

	parallel.Columns(c, func(start, end int) {
		for j := start; j < end; j++ {
			sum := 0.0
			for _, i := range rows {
				sum += d.m.At(i, j)
			}
			mean := sum / n

			sumSquares := 0.0
			for _, i := range rows {
				diff := d.m.At(i, j) - mean
				sumSquares += diff * diff
			}
			variance[j] = sumSquares / n
		}
	})
	return variance
}

// RowTo implements NumericMatrix.
func (d *Dense) RowTo(dst []float64, i int) {
	copy(dst, d.m.RawRowView(i))
}

// FromDense implements NumericMatrix.
func (d *Dense) FromDense(block *mat.Dense) NumericMatrix {
	return &Dense{m: block}
}

func stackDense(blocks []Matrix) (Matrix, error) {
	total := 0
	for _, b := range blocks {
		total += b.Rows()
	}
	cols := blocks[0].Cols()
	out := mat.NewDense(total, cols, nil)
	row := 0
	for _, b := range blocks {
		dense := b.(*Dense)
		r, _ := dense.m.Dims()
		for i := 0; i < r; i++ {
			out.SetRow(row, dense.m.RawRowView(i))
			row++
		}
	}
	return &Dense{m: out}, nil
}

// Package dataset provides the feature-matrix representations used by the
// resamplers: a dense gonum-backed matrix, compressed sparse row/column
// matrices, and a mixed string/numeric table. All representations share a
// small capability surface so that samplers never branch on the concrete
// type, and every operation preserves the input representation (dense
// stays dense, CSR stays CSR, and so on).
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/imbgo/pkg/errors"
)

// Representation kinds reported by Matrix.Kind.
const (
	KindDense = "dense"
	KindCSR   = "csr"
	KindCSC   = "csc"
	KindTable = "table"
)

// Matrix is the minimal capability surface a sampler needs from a feature
// matrix. Implementations are immutable from the sampler's point of view:
// SelectRows always allocates a new matrix and never aliases mutable
// storage with the receiver.
type Matrix interface {
	// Rows returns the number of samples.
	Rows() int

	// Cols returns the number of features.
	Cols() int

	// Kind returns the representation name: "dense", "csr", "csc" or
	// "table".
	Kind() string

	// SelectRows returns a new matrix holding the given rows in order.
	// Indices may repeat (bootstrap draws). The result has the same
	// representation as the receiver.
	SelectRows(indices []int) Matrix
}

// NumericMatrix extends Matrix with the numeric operations the smoothing
// engine requires. Dense and sparse matrices implement it; mixed tables do
// not and must be coerced through AsNumeric first.
type NumericMatrix interface {
	Matrix
	mat.Matrix

	// ColumnVariance returns the per-feature population variance
	// (ddof = 0) over the given subset of rows. Sparse implementations
	// compute it from stored entries without densifying; implicit zeros
	// are counted.
	ColumnVariance(rows []int) []float64

	// RowTo copies row i into dst, which must have length Cols().
	RowTo(dst []float64, i int)

	// FromDense casts a dense block into the receiver's representation
	// (and, for sparse receivers, the receiver's storage format). Used to
	// return generated rows in the same representation as the input.
	FromDense(d *mat.Dense) NumericMatrix
}

// AsNumeric coerces m into a NumericMatrix. Dense and sparse matrices pass
// through unchanged; a Table is converted to Dense when all of its columns
// are numeric, and fails otherwise with an error naming the offending
// column.
func AsNumeric(m Matrix) (NumericMatrix, error) {
	switch v := m.(type) {
	case NumericMatrix:
		return v, nil
	case *Table:
		return v.ToNumeric()
	default:
		return nil, errors.Newf("unsupported matrix representation %q", m.Kind())
	}
}

// VStack stacks blocks row-wise into a single matrix. All blocks must share
// the same representation (and, for sparse, the same format) and column
// count. The result is newly allocated.
func VStack(blocks []Matrix) (Matrix, error) {
	if len(blocks) == 0 {
		return nil, errors.NewValueError("VStack", "no blocks to stack")
	}
	cols := blocks[0].Cols()
	kind := blocks[0].Kind()
	for _, b := range blocks[1:] {
		if b.Kind() != kind {
			return nil, errors.NewValueError("VStack", "mixed matrix representations")
		}
		if b.Cols() != cols {
			return nil, errors.NewDimensionError("VStack", cols, b.Cols(), 1)
		}
	}

	switch kind {
	case KindDense:
		return stackDense(blocks)
	case KindCSR, KindCSC:
		return stackSparse(blocks)
	case KindTable:
		return stackTables(blocks)
	default:
		return nil, errors.Newf("unsupported matrix representation %q", kind)
	}
}

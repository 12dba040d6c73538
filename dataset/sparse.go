package dataset

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/imbgo/pkg/errors"
)

// SparseFormat selects the compressed storage layout of a Sparse matrix.
type SparseFormat int

const (
	// CSRFormat stores entries row by row (compressed sparse row).
	CSRFormat SparseFormat = iota
	// CSCFormat stores entries column by column (compressed sparse column).
	CSCFormat
)

// Sparse is a compressed sparse matrix in CSR or CSC format, using the
// conventional data/indices/indptr triplet. Within each major segment the
// minor indices are sorted ascending. Explicit zeros are permitted but
// constructors from dense data never store them.
type Sparse struct {
	format SparseFormat
	rows   int
	cols   int

	data    []float64
	indices []int
	indptr  []int
}

// NewCSR builds a CSR matrix from raw compressed storage. The slices are
// used directly, not copied.
func NewCSR(rows, cols int, indptr, indices []int, data []float64) (*Sparse, error) {
	if err := checkCompressed(rows, cols, rows, cols, indptr, indices, data); err != nil {
		return nil, err
	}
	return &Sparse{format: CSRFormat, rows: rows, cols: cols, data: data, indices: indices, indptr: indptr}, nil
}

// NewCSC builds a CSC matrix from raw compressed storage. The slices are
// used directly, not copied.
func NewCSC(rows, cols int, indptr, indices []int, data []float64) (*Sparse, error) {
	if err := checkCompressed(rows, cols, cols, rows, indptr, indices, data); err != nil {
		return nil, err
	}
	return &Sparse{format: CSCFormat, rows: rows, cols: cols, data: data, indices: indices, indptr: indptr}, nil
}

func checkCompressed(rows, cols, major, minor int, indptr, indices []int, data []float64) error {
	if rows < 0 || cols < 0 {
		return errors.NewValueError("NewSparse", "negative dimension")
	}
	if len(indptr) != major+1 {
		return errors.NewDimensionError("NewSparse", major+1, len(indptr), 0)
	}
	if indptr[0] != 0 || indptr[major] != len(data) {
		return errors.NewValueError("NewSparse", "indptr does not span the data slice")
	}
	if len(indices) != len(data) {
		return errors.NewDimensionError("NewSparse", len(data), len(indices), 0)
	}
	for seg := 0; seg < major; seg++ {
		if indptr[seg] > indptr[seg+1] {
			return errors.NewValueError("NewSparse", "indptr is not monotonically non-decreasing")
		}
		prev := -1
		for p := indptr[seg]; p < indptr[seg+1]; p++ {
			idx := indices[p]
			if idx < 0 || idx >= minor {
				return errors.NewValueError("NewSparse", "index out of bounds")
			}
			if idx <= prev {
				return errors.NewValueError("NewSparse", "indices within a segment must be strictly increasing")
			}
			prev = idx
		}
	}
	return nil
}

// CSRFromDense converts a dense matrix to CSR, dropping zero entries.
func CSRFromDense(d *mat.Dense) *Sparse {
	return compressDense(d, CSRFormat)
}

// CSCFromDense converts a dense matrix to CSC, dropping zero entries.
func CSCFromDense(d *mat.Dense) *Sparse {
	return compressDense(d, CSCFormat)
}

func compressDense(d *mat.Dense, format SparseFormat) *Sparse {
	rows, cols := d.Dims()
	major, minor := rows, cols
	if format == CSCFormat {
		major, minor = cols, rows
	}

	indptr := make([]int, major+1)
	var data []float64
	var indices []int
	for seg := 0; seg < major; seg++ {
		for idx := 0; idx < minor; idx++ {
			i, j := seg, idx
			if format == CSCFormat {
				i, j = idx, seg
			}
			if v := d.At(i, j); v != 0 {
				data = append(data, v)
				indices = append(indices, idx)
			}
		}
		indptr[seg+1] = len(data)
	}
	return &Sparse{format: format, rows: rows, cols: cols, data: data, indices: indices, indptr: indptr}
}

// Format returns the storage format of the matrix.
func (s *Sparse) Format() SparseFormat { return s.format }

// NNZ returns the number of stored entries.
func (s *Sparse) NNZ() int { return len(s.data) }

// Rows implements Matrix.
func (s *Sparse) Rows() int { return s.rows }

// Cols implements Matrix.
func (s *Sparse) Cols() int { return s.cols }

// Kind implements Matrix.
func (s *Sparse) Kind() string {
	if s.format == CSRFormat {
		return KindCSR
	}
	return KindCSC
}

// Dims implements mat.Matrix.
func (s *Sparse) Dims() (r, c int) { return s.rows, s.cols }

// At implements mat.Matrix.
func (s *Sparse) At(i, j int) float64 {
	seg, idx := i, j
	if s.format == CSCFormat {
		seg, idx = j, i
	}
	lo, hi := s.indptr[seg], s.indptr[seg+1]
	within := s.indices[lo:hi]
	p := sort.SearchInts(within, idx)
	if p < len(within) && within[p] == idx {
		return s.data[lo+p]
	}
	return 0
}

// T implements mat.Matrix.
func (s *Sparse) T() mat.Matrix { return mat.Transpose{Matrix: s} }

// ToDense expands the matrix into a new gonum dense matrix.
func (s *Sparse) ToDense() *mat.Dense {
	out := mat.NewDense(s.rows, s.cols, nil)
	s.iterate(func(i, j int, v float64) {
		out.Set(i, j, v)
	})
	return out
}

// iterate visits every stored entry as (row, col, value).
func (s *Sparse) iterate(fn func(i, j int, v float64)) {
	major := s.rows
	if s.format == CSCFormat {
		major = s.cols
	}
	for seg := 0; seg < major; seg++ {
		for p := s.indptr[seg]; p < s.indptr[seg+1]; p++ {
			if s.format == CSRFormat {
				fn(seg, s.indices[p], s.data[p])
			} else {
				fn(s.indices[p], seg, s.data[p])
			}
		}
	}
}

// SelectRows implements Matrix. The result keeps the receiver's format.
func (s *Sparse) SelectRows(indices []int) Matrix {
	if s.format == CSRFormat {
		return s.selectRowsCSR(indices)
	}
	return s.selectRowsCSC(indices)
}

func (s *Sparse) selectRowsCSR(rows []int) *Sparse {
	indptr := make([]int, len(rows)+1)
	nnz := 0
	for _, i := range rows {
		nnz += s.indptr[i+1] - s.indptr[i]
	}
	data := make([]float64, 0, nnz)
	indices := make([]int, 0, nnz)
	for k, i := range rows {
		lo, hi := s.indptr[i], s.indptr[i+1]
		data = append(data, s.data[lo:hi]...)
		indices = append(indices, s.indices[lo:hi]...)
		indptr[k+1] = len(data)
	}
	return &Sparse{format: CSRFormat, rows: len(rows), cols: s.cols, data: data, indices: indices, indptr: indptr}
}

func (s *Sparse) selectRowsCSC(rows []int) *Sparse {
	// A source row may be drawn multiple times; map each original row to
	// all of its output slots.
	slots := make(map[int][]int, len(rows))
	for k, i := range rows {
		slots[i] = append(slots[i], k)
	}

	type entry struct {
		row int
		val float64
	}
	perCol := make([][]entry, s.cols)
	for j := 0; j < s.cols; j++ {
		for p := s.indptr[j]; p < s.indptr[j+1]; p++ {
			for _, slot := range slots[s.indices[p]] {
				perCol[j] = append(perCol[j], entry{row: slot, val: s.data[p]})
			}
		}
		sort.Slice(perCol[j], func(a, b int) bool { return perCol[j][a].row < perCol[j][b].row })
	}

	indptr := make([]int, s.cols+1)
	var data []float64
	var indices []int
	for j := 0; j < s.cols; j++ {
		for _, e := range perCol[j] {
			data = append(data, e.val)
			indices = append(indices, e.row)
		}
		indptr[j+1] = len(data)
	}
	return &Sparse{format: CSCFormat, rows: len(rows), cols: s.cols, data: data, indices: indices, indptr: indptr}
}

// ColumnVariance implements NumericMatrix. The mean/variance pass runs over
// stored entries only; implicit zeros contribute through the division by
// the subset size, so the full matrix is never densified.
func (s *Sparse) ColumnVariance(rows []int) []float64 {
	variance := make([]float64, s.cols)
	n := float64(len(rows))
	if n == 0 {
		return variance
	}

	sum := make([]float64, s.cols)
	sumSquares := make([]float64, s.cols)

	if s.format == CSRFormat {
		for _, i := range rows {
			for p := s.indptr[i]; p < s.indptr[i+1]; p++ {
				j, v := s.indices[p], s.data[p]
				sum[j] += v
				sumSquares[j] += v * v
			}
		}
	} else {
		counts := make(map[int]int, len(rows))
		for _, i := range rows {
			counts[i]++
		}
		for j := 0; j < s.cols; j++ {
			for p := s.indptr[j]; p < s.indptr[j+1]; p++ {
				if c := counts[s.indices[p]]; c > 0 {
					v := s.data[p]
					sum[j] += v * float64(c)
					sumSquares[j] += v * v * float64(c)
				}
			}
		}
	}

	for j := 0; j < s.cols; j++ {
		mean := sum[j] / n
		variance[j] = sumSquares[j]/n - mean*mean
		// Floating-point cancellation can leave a tiny negative here;
		// sqrt downstream must not see it.
		if variance[j] < 0 {
			variance[j] = 0
		}
	}
	return variance
}

// RowTo implements NumericMatrix.
func (s *Sparse) RowTo(dst []float64, i int) {
	for j := range dst {
		dst[j] = 0
	}
	if s.format == CSRFormat {
		for p := s.indptr[i]; p < s.indptr[i+1]; p++ {
			dst[s.indices[p]] = s.data[p]
		}
		return
	}
	for j := 0; j < s.cols; j++ {
		lo, hi := s.indptr[j], s.indptr[j+1]
		within := s.indices[lo:hi]
		p := sort.SearchInts(within, i)
		if p < len(within) && within[p] == i {
			dst[j] = s.data[lo+p]
		}
	}
}

// FromDense implements NumericMatrix: the dense block is re-compressed
// into the receiver's storage format.
func (s *Sparse) FromDense(block *mat.Dense) NumericMatrix {
	return compressDense(block, s.format)
}

func stackSparse(blocks []Matrix) (Matrix, error) {
	first := blocks[0].(*Sparse)
	format := first.format
	cols := first.cols
	for _, b := range blocks[1:] {
		if b.(*Sparse).format != format {
			return nil, errors.NewValueError("VStack", "mixed sparse formats")
		}
	}

	totalRows := 0
	totalNNZ := 0
	for _, b := range blocks {
		sp := b.(*Sparse)
		totalRows += sp.rows
		totalNNZ += len(sp.data)
	}

	if format == CSRFormat {
		data := make([]float64, 0, totalNNZ)
		indices := make([]int, 0, totalNNZ)
		indptr := make([]int, totalRows+1)
		row := 0
		for _, b := range blocks {
			sp := b.(*Sparse)
			for i := 0; i < sp.rows; i++ {
				lo, hi := sp.indptr[i], sp.indptr[i+1]
				data = append(data, sp.data[lo:hi]...)
				indices = append(indices, sp.indices[lo:hi]...)
				row++
				indptr[row] = len(data)
			}
		}
		return &Sparse{format: CSRFormat, rows: totalRows, cols: cols, data: data, indices: indices, indptr: indptr}, nil
	}

	// CSC: merge column segments across blocks with row offsets. Blocks
	// are stacked in order, so concatenating each block's column segment
	// keeps row indices sorted.
	data := make([]float64, 0, totalNNZ)
	indices := make([]int, 0, totalNNZ)
	indptr := make([]int, cols+1)
	for j := 0; j < cols; j++ {
		offset := 0
		for _, b := range blocks {
			sp := b.(*Sparse)
			for p := sp.indptr[j]; p < sp.indptr[j+1]; p++ {
				data = append(data, sp.data[p])
				indices = append(indices, sp.indices[p]+offset)
			}
			offset += sp.rows
		}
		indptr[j+1] = len(data)
	}
	return &Sparse{format: CSCFormat, rows: totalRows, cols: cols, data: data, indices: indices, indptr: indptr}, nil
}

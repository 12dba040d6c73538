package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/imbgo/pkg/errors"
)

// Table is a feature matrix with heterogeneous columns: each column holds
// either float64 or string values. It is the Go counterpart of resampling
// an object array; plain bootstrap duplication works on it, but the
// smoothed bootstrap requires coercion to a numeric matrix first.
type Table struct {
	rows, cols int
	numeric    [][]float64 // per column; nil for string columns
	strings    [][]string  // per column; nil for numeric columns
}

// NewTable creates an empty table with the given shape. Columns must be
// populated with SetNumericColumn/SetStringColumn before use.
func NewTable(rows, cols int) *Table {
	return &Table{
		rows:    rows,
		cols:    cols,
		numeric: make([][]float64, cols),
		strings: make([][]string, cols),
	}
}

// SetNumericColumn fills column j with float64 values.
func (t *Table) SetNumericColumn(j int, values []float64) error {
	if len(values) != t.rows {
		return errors.NewDimensionError("Table.SetNumericColumn", t.rows, len(values), 0)
	}
	col := make([]float64, len(values))
	copy(col, values)
	t.numeric[j] = col
	t.strings[j] = nil
	return nil
}

// SetStringColumn fills column j with string values.
func (t *Table) SetStringColumn(j int, values []string) error {
	if len(values) != t.rows {
		return errors.NewDimensionError("Table.SetStringColumn", t.rows, len(values), 0)
	}
	col := make([]string, len(values))
	copy(col, values)
	t.strings[j] = col
	t.numeric[j] = nil
	return nil
}

// TableFromRecords builds a table from row-major records whose cells are
// float64 or string. Every row must have the same length and every column
// must hold a single cell type.
func TableFromRecords(records [][]interface{}) (*Table, error) {
	if len(records) == 0 {
		return nil, errors.NewValueError("TableFromRecords", "no records")
	}
	rows := len(records)
	cols := len(records[0])
	t := NewTable(rows, cols)

	for j := 0; j < cols; j++ {
		switch records[0][j].(type) {
		case float64:
			col := make([]float64, rows)
			for i, rec := range records {
				if len(rec) != cols {
					return nil, errors.NewDimensionError("TableFromRecords", cols, len(rec), 1)
				}
				v, ok := rec[j].(float64)
				if !ok {
					return nil, errors.Newf("column %d mixes numeric and non-numeric cells", j)
				}
				col[i] = v
			}
			t.numeric[j] = col
		case string:
			col := make([]string, rows)
			for i, rec := range records {
				if len(rec) != cols {
					return nil, errors.NewDimensionError("TableFromRecords", cols, len(rec), 1)
				}
				v, ok := rec[j].(string)
				if !ok {
					return nil, errors.Newf("column %d mixes string and non-string cells", j)
				}
				col[i] = v
			}
			t.strings[j] = col
		default:
			return nil, errors.Newf("column %d has unsupported cell type %T", j, records[0][j])
		}
	}
	return t, nil
}

// Rows implements Matrix.
func (t *Table) Rows() int { return t.rows }

// Cols implements Matrix.
func (t *Table) Cols() int { return t.cols }

// Kind implements Matrix.
func (t *Table) Kind() string { return KindTable }

// IsNumericColumn reports whether column j holds float64 values.
func (t *Table) IsNumericColumn(j int) bool { return t.numeric[j] != nil }

// FloatAt returns the float64 cell at (i, j). The column must be numeric.
func (t *Table) FloatAt(i, j int) float64 { return t.numeric[j][i] }

// StringAt returns the string cell at (i, j). The column must be a string
// column.
func (t *Table) StringAt(i, j int) string { return t.strings[j][i] }

// SelectRows implements Matrix.
func (t *Table) SelectRows(indices []int) Matrix {
	out := NewTable(len(indices), t.cols)
	for j := 0; j < t.cols; j++ {
		if t.numeric[j] != nil {
			col := make([]float64, len(indices))
			for k, i := range indices {
				col[k] = t.numeric[j][i]
			}
			out.numeric[j] = col
			continue
		}
		col := make([]string, len(indices))
		for k, i := range indices {
			col[k] = t.strings[j][i]
		}
		out.strings[j] = col
	}
	return out
}

// ToNumeric converts the table into a dense numeric matrix. It fails when
// any column holds string data; string cells are never parsed as numbers.
// A successful conversion emits a DataConversionWarning since the caller's
// representation changes.
func (t *Table) ToNumeric() (NumericMatrix, error) {
	for j := 0; j < t.cols; j++ {
		if t.strings[j] != nil {
			return nil, errors.Newf("column %d contains string data", j)
		}
	}

	out := mat.NewDense(t.rows, t.cols, nil)
	for j := 0; j < t.cols; j++ {
		for i := 0; i < t.rows; i++ {
			out.Set(i, j, t.numeric[j][i])
		}
	}
	errors.Warn(errors.NewDataConversionWarning("Table", "Dense", "numeric operation requires a uniform float matrix"))
	return &Dense{m: out}, nil
}

func stackTables(blocks []Matrix) (Matrix, error) {
	first := blocks[0].(*Table)
	total := 0
	for _, b := range blocks {
		total += b.Rows()
	}

	out := NewTable(total, first.cols)
	for j := 0; j < first.cols; j++ {
		if first.numeric[j] != nil {
			col := make([]float64, 0, total)
			for _, b := range blocks {
				tb := b.(*Table)
				if tb.numeric[j] == nil {
					return nil, errors.NewValueError("VStack", "table column types disagree across blocks")
				}
				col = append(col, tb.numeric[j]...)
			}
			out.numeric[j] = col
			continue
		}
		col := make([]string, 0, total)
		for _, b := range blocks {
			tb := b.(*Table)
			if tb.strings[j] == nil {
				return nil, errors.NewValueError("VStack", "table column types disagree across blocks")
			}
			col = append(col, tb.strings[j]...)
		}
		out.strings[j] = col
	}
	return out, nil
}

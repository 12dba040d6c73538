package over_sampling

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/imbgo/dataset"
	"github.com/YuminosukeSato/imbgo/pkg/errors"
	"github.com/YuminosukeSato/imbgo/utils"
)

// 10 rows x 2 features: rows 0-7 are class 0, rows 8-9 are class 1.
func imbalancedDense() (*dataset.Dense, []int) {
	X := dataset.NewDense(mat.NewDense(10, 2, []float64{
		0.0, 0.1,
		0.1, 0.2,
		0.2, 0.3,
		0.3, 0.4,
		0.4, 0.5,
		0.5, 0.6,
		0.6, 0.7,
		0.7, 0.8,
		5.0, 5.0,
		7.0, 9.0,
	}))
	y := []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1}
	return X, y
}

func TestFitResamplePlainBootstrap(t *testing.T) {
	X, y := imbalancedDense()
	ros := NewRandomOverSampler(
		WithSamplingStrategy(utils.Additional{Target: utils.NewTargetMap().Set(1, 6)}),
		WithRandomState(42),
	)

	XRes, yRes, err := ros.FitResample(X, y)
	if err != nil {
		t.Fatalf("FitResample failed: %v", err)
	}

	if XRes.Rows() != 16 || len(yRes) != 16 {
		t.Fatalf("Expected 16 output rows, got %d rows / %d labels", XRes.Rows(), len(yRes))
	}

	// Original rows come first, unperturbed and in order.
	out := XRes.(*dataset.Dense)
	for i := 0; i < 10; i++ {
		for j := 0; j < 2; j++ {
			if out.At(i, j) != X.At(i, j) {
				t.Errorf("Prefix row %d changed at col %d", i, j)
			}
		}
		if yRes[i] != y[i] {
			t.Errorf("Prefix label %d changed", i)
		}
	}

	// Class balance: 8 class-0 rows, 8 class-1 rows.
	counts := map[int]int{}
	for _, label := range yRes {
		counts[label]++
	}
	if counts[0] != 8 || counts[1] != 8 {
		t.Errorf("Class counts = %v, want {0:8, 1:8}", counts)
	}

	indices, err := ros.SampleIndices()
	if err != nil {
		t.Fatalf("SampleIndices failed: %v", err)
	}
	if len(indices) != 16 {
		t.Fatalf("len(SampleIndices) = %d, want 16", len(indices))
	}
	for i := 0; i < 10; i++ {
		if indices[i] != i {
			t.Errorf("indices[%d] = %d, want identity prefix", i, indices[i])
		}
	}
	// The 6 new rows are drawn only from the two class-1 rows, and each
	// generated row is byte-identical to its source row.
	for k := 10; k < 16; k++ {
		src := indices[k]
		if src != 8 && src != 9 {
			t.Errorf("indices[%d] = %d, want a class-1 row (8 or 9)", k, src)
		}
		if yRes[k] != 1 {
			t.Errorf("yRes[%d] = %d, want 1", k, yRes[k])
		}
		for j := 0; j < 2; j++ {
			if out.At(k, j) != X.At(src, j) {
				t.Errorf("Generated row %d is not an exact copy of row %d", k, src)
			}
		}
	}
}

func TestFitResampleAutoBalances(t *testing.T) {
	X, y := imbalancedDense()
	ros := NewRandomOverSampler(WithRandomState(7))

	_, yRes, err := ros.FitResample(X, y)
	if err != nil {
		t.Fatalf("FitResample failed: %v", err)
	}
	counts := map[int]int{}
	for _, label := range yRes {
		counts[label]++
	}
	if counts[0] != 8 || counts[1] != 8 {
		t.Errorf("Auto strategy should equalize classes, got %v", counts)
	}
}

func TestFitResampleReproducible(t *testing.T) {
	X, y := imbalancedDense()

	run := func() (*dataset.Dense, []int, []int) {
		ros := NewRandomOverSampler(
			WithRandomState(123),
			WithSmoothedBootstrap(true),
			WithShrinkage(1.0),
		)
		XRes, yRes, err := ros.FitResample(X, y)
		if err != nil {
			t.Fatalf("FitResample failed: %v", err)
		}
		indices, err := ros.SampleIndices()
		if err != nil {
			t.Fatalf("SampleIndices failed: %v", err)
		}
		return XRes.(*dataset.Dense), yRes, indices
	}

	X1, y1, idx1 := run()
	X2, y2, idx2 := run()

	if !mat.Equal(X1.Mat(), X2.Mat()) {
		t.Error("Identical seeds must produce bit-identical matrices")
	}
	for i := range y1 {
		if y1[i] != y2[i] {
			t.Fatalf("Labels diverge at %d", i)
		}
	}
	for i := range idx1 {
		if idx1[i] != idx2[i] {
			t.Fatalf("Sample indices diverge at %d", i)
		}
	}
}

func TestFitResampleSparsePreservesFormat(t *testing.T) {
	dense, y := imbalancedDense()

	for _, format := range []dataset.SparseFormat{dataset.CSRFormat, dataset.CSCFormat} {
		var X dataset.Matrix
		if format == dataset.CSRFormat {
			X = dataset.CSRFromDense(dense.Mat())
		} else {
			X = dataset.CSCFromDense(dense.Mat())
		}

		ros := NewRandomOverSampler(WithRandomState(42))
		XRes, yRes, err := ros.FitResample(X, y)
		if err != nil {
			t.Fatalf("FitResample failed: %v", err)
		}

		sp, ok := XRes.(*dataset.Sparse)
		if !ok {
			t.Fatalf("Expected sparse output, got %T", XRes)
		}
		if sp.Format() != format {
			t.Error("Output sparse format differs from input")
		}
		if sp.Rows() != 16 || len(yRes) != 16 {
			t.Errorf("Expected 16 output rows, got %d", sp.Rows())
		}

		indices, err := ros.SampleIndices()
		if err != nil {
			t.Fatalf("SampleIndices failed: %v", err)
		}
		for k := 10; k < 16; k++ {
			for j := 0; j < 2; j++ {
				if sp.At(k, j) != dense.At(indices[k], j) {
					t.Errorf("%s generated row %d differs from source row %d", sp.Kind(), k, indices[k])
				}
			}
		}
	}
}

func TestFitResampleSmoothedSparseStaysSparse(t *testing.T) {
	dense, y := imbalancedDense()
	X := dataset.CSRFromDense(dense.Mat())

	ros := NewRandomOverSampler(
		WithRandomState(42),
		WithSmoothedBootstrap(true),
	)
	XRes, _, err := ros.FitResample(X, y)
	if err != nil {
		t.Fatalf("FitResample failed: %v", err)
	}
	sp, ok := XRes.(*dataset.Sparse)
	if !ok {
		t.Fatalf("Expected sparse output, got %T", XRes)
	}
	if sp.Format() != dataset.CSRFormat {
		t.Error("Smoothed bootstrap changed the sparse format")
	}
}

func TestFitResampleTablePlainBootstrap(t *testing.T) {
	tbl, err := dataset.TableFromRecords([][]interface{}{
		{1.0, "a"},
		{2.0, "a"},
		{3.0, "a"},
		{4.0, "b"},
	})
	if err != nil {
		t.Fatalf("TableFromRecords failed: %v", err)
	}
	y := []int{0, 0, 0, 1}

	ros := NewRandomOverSampler(WithRandomState(1))
	XRes, yRes, err := ros.FitResample(tbl, y)
	if err != nil {
		t.Fatalf("FitResample failed: %v", err)
	}
	out, ok := XRes.(*dataset.Table)
	if !ok {
		t.Fatalf("Expected table output, got %T", XRes)
	}
	if out.Rows() != 6 || len(yRes) != 6 {
		t.Fatalf("Expected 6 output rows, got %d", out.Rows())
	}
	// Every generated class-1 row duplicates the single class-1 source.
	for i := 4; i < 6; i++ {
		if out.FloatAt(i, 0) != 4.0 || out.StringAt(i, 1) != "b" {
			t.Errorf("Row %d should duplicate the class-1 row", i)
		}
	}
}

func TestFitResampleSmoothedRejectsStringTable(t *testing.T) {
	tbl, err := dataset.TableFromRecords([][]interface{}{
		{1.0, "a"},
		{2.0, "b"},
	})
	if err != nil {
		t.Fatalf("TableFromRecords failed: %v", err)
	}
	y := []int{0, 1}

	ros := NewRandomOverSampler(
		WithRandomState(1),
		WithSmoothedBootstrap(true),
	)
	_, _, err = ros.FitResample(tbl, y)
	if err == nil {
		t.Fatal("Expected NonNumericDataError")
	}
	var numErr *errors.NonNumericDataError
	if !errors.As(err, &numErr) {
		t.Fatalf("Expected *NonNumericDataError, got %T: %v", err, err)
	}
	// No partial results.
	if _, idxErr := ros.SampleIndices(); idxErr == nil {
		t.Error("Sampler must not be fitted after a configuration error")
	}
}

func TestFitResampleIncompleteShrinkageMap(t *testing.T) {
	X, y := imbalancedDense()

	ros := NewRandomOverSampler(
		WithRandomState(1),
		WithSmoothedBootstrap(true),
		WithShrinkageMap(map[int]float64{0: 1.0}), // class 1 missing
	)
	_, _, err := ros.FitResample(X, y)
	if err == nil {
		t.Fatal("Expected IncompleteShrinkageError")
	}
	var shrinkErr *errors.IncompleteShrinkageError
	if !errors.As(err, &shrinkErr) {
		t.Fatalf("Expected *IncompleteShrinkageError, got %T: %v", err, err)
	}
	if len(shrinkErr.MissingClasses) != 1 || shrinkErr.MissingClasses[0] != 1 {
		t.Errorf("MissingClasses = %v, want [1]", shrinkErr.MissingClasses)
	}
}

func TestFitResampleEmptyPool(t *testing.T) {
	X, y := imbalancedDense()

	ros := NewRandomOverSampler(
		WithRandomState(1),
		WithSamplingStrategy(utils.Additional{Target: utils.NewTargetMap().Set(5, 3)}),
	)
	_, _, err := ros.FitResample(X, y)
	if err == nil {
		t.Fatal("Expected EmptyPoolError")
	}
	var poolErr *errors.EmptyPoolError
	if !errors.As(err, &poolErr) {
		t.Fatalf("Expected *EmptyPoolError, got %T: %v", err, err)
	}
	if poolErr.Class != 5 {
		t.Errorf("Class = %d, want 5", poolErr.Class)
	}
}

func TestFitResampleNegativeShrinkage(t *testing.T) {
	X, y := imbalancedDense()

	ros := NewRandomOverSampler(
		WithSmoothedBootstrap(true),
		WithShrinkage(-0.5),
	)
	if _, _, err := ros.FitResample(X, y); err == nil {
		t.Error("Expected validation error for negative shrinkage")
	}
}

func TestFitResampleLengthMismatch(t *testing.T) {
	X, _ := imbalancedDense()

	ros := NewRandomOverSampler()
	if _, _, err := ros.FitResample(X, []int{0, 1}); err == nil {
		t.Error("Expected dimension error for mismatched lengths")
	}
}

func TestFitResampleRejectsNegativeLabels(t *testing.T) {
	X, _ := imbalancedDense()
	y := []int{0, 0, 0, 0, 0, 0, 0, 0, -1, -1}

	ros := NewRandomOverSampler(WithRandomState(42))
	_, _, err := ros.FitResample(X, y)
	if err == nil {
		t.Fatal("Expected error for negative class labels")
	}
	var valueErr *errors.ValueError
	if !errors.As(err, &valueErr) {
		t.Fatalf("Expected *errors.ValueError, got %T", err)
	}
}

func TestSampleIndicesBeforeFit(t *testing.T) {
	ros := NewRandomOverSampler()

	if _, err := ros.SampleIndices(); err == nil {
		t.Error("Expected NotFittedError before FitResample")
	}
	var notFitted *errors.NotFittedError
	_, err := ros.ResolvedShrinkage()
	if !errors.As(err, &notFitted) {
		t.Errorf("Expected *NotFittedError, got %T", err)
	}
}

func TestResolvedShrinkage(t *testing.T) {
	X, y := imbalancedDense()

	// Disabled smoothing: nil shrinkage.
	ros := NewRandomOverSampler(WithRandomState(1))
	if _, _, err := ros.FitResample(X, y); err != nil {
		t.Fatalf("FitResample failed: %v", err)
	}
	used, err := ros.ResolvedShrinkage()
	if err != nil {
		t.Fatalf("ResolvedShrinkage failed: %v", err)
	}
	if used != nil {
		t.Errorf("ResolvedShrinkage = %v, want nil without smoothing", used)
	}

	// Scalar broadcast over every resampled class.
	ros = NewRandomOverSampler(
		WithRandomState(1),
		WithSmoothedBootstrap(true),
		WithShrinkage(0.5),
	)
	if _, _, err := ros.FitResample(X, y); err != nil {
		t.Fatalf("FitResample failed: %v", err)
	}
	used, err = ros.ResolvedShrinkage()
	if err != nil {
		t.Fatalf("ResolvedShrinkage failed: %v", err)
	}
	if len(used) != 1 || used[1] != 0.5 {
		t.Errorf("ResolvedShrinkage = %v, want {1: 0.5}", used)
	}
}

func TestFitResampleDoesNotMutateInputs(t *testing.T) {
	X, y := imbalancedDense()
	var before mat.Dense
	before.CloneFrom(X.Mat())
	yBefore := append([]int(nil), y...)

	ros := NewRandomOverSampler(WithRandomState(42), WithSmoothedBootstrap(true))
	if _, _, err := ros.FitResample(X, y); err != nil {
		t.Fatalf("FitResample failed: %v", err)
	}

	if !mat.Equal(&before, X.Mat()) {
		t.Error("FitResample mutated the input matrix")
	}
	for i := range y {
		if y[i] != yBefore[i] {
			t.Fatal("FitResample mutated the input labels")
		}
	}
}

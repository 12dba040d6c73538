package metrics

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/imbgo/pkg/errors"
)

func TestSensitivityScore(t *testing.T) {
	yTrue := []int{1, 1, 1, 1, 0, 0, 0, 0}
	yPred := []int{1, 1, 1, 0, 0, 0, 1, 0}

	// 3 of 4 positives recovered.
	got, err := SensitivityScore(yTrue, yPred, 1)
	if err != nil {
		t.Fatalf("SensitivityScore failed: %v", err)
	}
	if math.Abs(got-0.75) > 1e-12 {
		t.Errorf("SensitivityScore = %v, want 0.75", got)
	}
}

func TestSpecificityScore(t *testing.T) {
	yTrue := []int{1, 1, 1, 1, 0, 0, 0, 0}
	yPred := []int{1, 1, 1, 0, 0, 0, 1, 0}

	// 3 of 4 negatives recovered.
	got, err := SpecificityScore(yTrue, yPred, 1)
	if err != nil {
		t.Fatalf("SpecificityScore failed: %v", err)
	}
	if math.Abs(got-0.75) > 1e-12 {
		t.Errorf("SpecificityScore = %v, want 0.75", got)
	}
}

func TestGeometricMeanScore(t *testing.T) {
	yTrue := []int{1, 1, 1, 1, 0, 0, 0, 0, 0, 0}
	yPred := []int{1, 1, 0, 0, 0, 0, 0, 0, 0, 1}

	// sensitivity = 0.5, specificity = 5/6.
	got, err := GeometricMeanScore(yTrue, yPred, 1)
	if err != nil {
		t.Fatalf("GeometricMeanScore failed: %v", err)
	}
	want := math.Sqrt(0.5 * 5.0 / 6.0)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("GeometricMeanScore = %v, want %v", got, want)
	}
}

func TestGeometricMeanIgnoredMinority(t *testing.T) {
	// Predicting the majority class everywhere scores a high accuracy but a
	// zero geometric mean.
	yTrue := []int{1, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	yPred := []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	got, err := GeometricMeanScore(yTrue, yPred, 1)
	if err != nil {
		t.Fatalf("GeometricMeanScore failed: %v", err)
	}
	if got != 0 {
		t.Errorf("GeometricMeanScore = %v, want 0", got)
	}
}

func TestSensitivityUndefinedWarns(t *testing.T) {
	var captured error
	errors.SetWarningHandler(func(w error) { captured = w })
	defer errors.SetWarningHandler(func(w error) {})

	yTrue := []int{0, 0, 0}
	yPred := []int{0, 1, 0}

	got, err := SensitivityScore(yTrue, yPred, 1)
	if err != nil {
		t.Fatalf("SensitivityScore failed: %v", err)
	}
	if got != 0 {
		t.Errorf("SensitivityScore = %v, want 0 when undefined", got)
	}

	var warning *errors.UndefinedMetricWarning
	if !errors.As(captured, &warning) {
		t.Fatalf("Expected UndefinedMetricWarning, got %v", captured)
	}
	if warning.Metric != "SensitivityScore" {
		t.Errorf("Warning metric = %q, want SensitivityScore", warning.Metric)
	}
}

func TestSpecificityUndefinedWarns(t *testing.T) {
	var captured error
	errors.SetWarningHandler(func(w error) { captured = w })
	defer errors.SetWarningHandler(func(w error) {})

	yTrue := []int{1, 1}
	yPred := []int{1, 0}

	got, err := SpecificityScore(yTrue, yPred, 1)
	if err != nil {
		t.Fatalf("SpecificityScore failed: %v", err)
	}
	if got != 0 {
		t.Errorf("SpecificityScore = %v, want 0 when undefined", got)
	}
	var warning *errors.UndefinedMetricWarning
	if !errors.As(captured, &warning) {
		t.Fatalf("Expected UndefinedMetricWarning, got %v", captured)
	}
}

func TestMetricValidation(t *testing.T) {
	if _, err := SensitivityScore(nil, nil, 1); err == nil {
		t.Error("Expected error for empty input")
	}
	if _, err := SpecificityScore([]int{1, 0}, []int{1}, 1); err == nil {
		t.Error("Expected error for mismatched lengths")
	}
	var dimErr *errors.DimensionError
	_, err := GeometricMeanScore([]int{1, 0, 1}, []int{1, 0}, 1)
	if !errors.As(err, &dimErr) {
		t.Fatalf("Expected *DimensionError, got %T", err)
	}
}

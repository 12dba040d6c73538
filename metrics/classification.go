// Package metrics provides evaluation metrics suited to imbalanced binary
// classification, where plain accuracy is dominated by the majority class.
package metrics

import (
	"math"

	"github.com/YuminosukeSato/imbgo/pkg/errors"
)

// confusion tallies the binary confusion counts of yPred against yTrue with
// the given positive label. Every label other than posLabel counts as
// negative.
func confusion(yTrue, yPred []int, posLabel int) (tp, fp, tn, fn int) {
	for i := range yTrue {
		actualPos := yTrue[i] == posLabel
		predictedPos := yPred[i] == posLabel
		switch {
		case actualPos && predictedPos:
			tp++
		case actualPos && !predictedPos:
			fn++
		case !actualPos && predictedPos:
			fp++
		default:
			tn++
		}
	}
	return tp, fp, tn, fn
}

func checkLabels(op string, yTrue, yPred []int) error {
	if len(yTrue) == 0 {
		return errors.NewValueError(op, "empty label vector")
	}
	if len(yPred) != len(yTrue) {
		return errors.NewDimensionError(op, len(yTrue), len(yPred), 0)
	}
	return nil
}

// SensitivityScore computes the recall of the positive class,
// TP / (TP + FN). When yTrue contains no positive samples the score is
// undefined; an UndefinedMetricWarning is emitted and 0 is returned.
func SensitivityScore(yTrue, yPred []int, posLabel int) (float64, error) {
	if err := checkLabels("SensitivityScore", yTrue, yPred); err != nil {
		return 0, err
	}

	tp, _, _, fn := confusion(yTrue, yPred, posLabel)
	if tp+fn == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning(
			"SensitivityScore", "no positive samples in yTrue", 0))
	}
	return errors.SafeDivide(float64(tp), float64(tp+fn)), nil
}

// SpecificityScore computes the recall of the negative class,
// TN / (TN + FP). When yTrue contains no negative samples the score is
// undefined; an UndefinedMetricWarning is emitted and 0 is returned.
func SpecificityScore(yTrue, yPred []int, posLabel int) (float64, error) {
	if err := checkLabels("SpecificityScore", yTrue, yPred); err != nil {
		return 0, err
	}

	_, fp, tn, _ := confusion(yTrue, yPred, posLabel)
	if tn+fp == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning(
			"SpecificityScore", "no negative samples in yTrue", 0))
	}
	return errors.SafeDivide(float64(tn), float64(tn+fp)), nil
}

// GeometricMeanScore computes sqrt(sensitivity * specificity), the standard
// aggregate for imbalanced binary problems. It is 0 whenever either class
// recall is 0, which makes it sensitive to a classifier that ignores the
// minority class entirely.
func GeometricMeanScore(yTrue, yPred []int, posLabel int) (float64, error) {
	if err := checkLabels("GeometricMeanScore", yTrue, yPred); err != nil {
		return 0, err
	}

	sensitivity, err := SensitivityScore(yTrue, yPred, posLabel)
	if err != nil {
		return 0, err
	}
	specificity, err := SpecificityScore(yTrue, yPred, posLabel)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(sensitivity * specificity), nil
}

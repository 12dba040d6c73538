// Package utils provides the validation and sampling-strategy helpers
// shared by all samplers: label canonicalization, class distribution
// counting, and resolution of a user-facing sampling strategy into the
// concrete per-class sample counts a sampler consumes.
package utils

import (
	"sort"

	"github.com/YuminosukeSato/imbgo/pkg/errors"
)

// CheckConsistentLength verifies that the feature matrix and label vector
// describe the same number of samples.
func CheckConsistentLength(op string, xRows, yLen int) error {
	if xRows != yLen {
		return errors.NewDimensionError(op, xRows, yLen, 0)
	}
	return nil
}

// CheckTargetType validates y as a classification target and reports
// whether it is a binarized one-vs-all view, i.e. labels drawn from
// {0, 1} only. Class ids are non-negative by construction of
// EncodeLabels; a negative label means y is not a valid encoding.
func CheckTargetType(y []int) (binarized bool, err error) {
	if len(y) == 0 {
		return false, errors.NewValueError("CheckTargetType", "empty label vector")
	}
	binarized = true
	for _, label := range y {
		if label < 0 {
			return false, errors.NewValueError("CheckTargetType", "negative class label")
		}
		if label > 1 {
			binarized = false
		}
	}
	return binarized, nil
}

// EncodeLabels canonicalizes arbitrary string labels into integer class
// ids. Classes are numbered by sorted label order, so the encoding is
// deterministic regardless of input order. The returned classes slice maps
// id back to the original label.
func EncodeLabels(raw []string) (y []int, classes []string) {
	seen := make(map[string]bool, len(raw))
	for _, label := range raw {
		if !seen[label] {
			seen[label] = true
			classes = append(classes, label)
		}
	}
	sort.Strings(classes)

	ids := make(map[string]int, len(classes))
	for id, label := range classes {
		ids[label] = id
	}

	y = make([]int, len(raw))
	for i, label := range raw {
		y[i] = ids[label]
	}
	return y, classes
}

// DecodeLabels maps integer class ids back to their original labels using
// the classes slice produced by EncodeLabels.
func DecodeLabels(y []int, classes []string) ([]string, error) {
	out := make([]string, len(y))
	for i, id := range y {
		if id < 0 || id >= len(classes) {
			return nil, errors.NewValueError("DecodeLabels", "class id out of range")
		}
		out[i] = classes[id]
	}
	return out, nil
}

// ClassCounts holds the class distribution of a label vector. Classes are
// kept in ascending order so that iteration is deterministic.
type ClassCounts struct {
	classes []int
	counts  map[int]int
}

// CountClasses computes the class distribution of y.
func CountClasses(y []int) *ClassCounts {
	counts := make(map[int]int)
	var classes []int
	for _, class := range y {
		if _, ok := counts[class]; !ok {
			classes = append(classes, class)
		}
		counts[class]++
	}
	sort.Ints(classes)
	return &ClassCounts{classes: classes, counts: counts}
}

// Classes returns the classes in ascending order.
func (c *ClassCounts) Classes() []int {
	out := make([]int, len(c.classes))
	copy(out, c.classes)
	return out
}

// Count returns the number of samples of the given class, zero when the
// class is absent.
func (c *ClassCounts) Count(class int) int {
	return c.counts[class]
}

// NumClasses returns the number of distinct classes.
func (c *ClassCounts) NumClasses() int {
	return len(c.classes)
}

// Majority returns the class with the most samples. Ties resolve to the
// smallest class id.
func (c *ClassCounts) Majority() (class, count int) {
	for _, cl := range c.classes {
		if c.counts[cl] > count {
			class, count = cl, c.counts[cl]
		}
	}
	return class, count
}

// Minority returns the class with the fewest samples. Ties resolve to the
// smallest class id.
func (c *ClassCounts) Minority() (class, count int) {
	first := true
	for _, cl := range c.classes {
		if first || c.counts[cl] < count {
			class, count = cl, c.counts[cl]
			first = false
		}
	}
	return class, count
}

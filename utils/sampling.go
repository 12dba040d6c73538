package utils

import (
	"sort"

	"github.com/YuminosukeSato/imbgo/pkg/errors"
)

// TargetMap is an insertion-ordered mapping from class to the number of
// additional samples to generate for that class. Go maps are unordered, so
// samplers that must process classes in a caller-determined, reproducible
// order iterate this structure instead.
type TargetMap struct {
	classes []int
	counts  map[int]int
}

// NewTargetMap creates an empty target mapping.
func NewTargetMap() *TargetMap {
	return &TargetMap{counts: make(map[int]int)}
}

// Set records the number of additional samples for a class. The first Set
// of a class fixes its iteration position; later Sets overwrite the count
// in place.
func (t *TargetMap) Set(class, count int) *TargetMap {
	if _, ok := t.counts[class]; !ok {
		t.classes = append(t.classes, class)
	}
	t.counts[class] = count
	return t
}

// Count returns the additional sample count for a class, zero when absent.
func (t *TargetMap) Count(class int) int {
	return t.counts[class]
}

// Has reports whether the class is present in the mapping.
func (t *TargetMap) Has(class int) bool {
	_, ok := t.counts[class]
	return ok
}

// Classes returns the classes in insertion order.
func (t *TargetMap) Classes() []int {
	out := make([]int, len(t.classes))
	copy(out, t.classes)
	return out
}

// Len returns the number of classes in the mapping.
func (t *TargetMap) Len() int {
	return len(t.classes)
}

// Total returns the sum of all additional sample counts.
func (t *TargetMap) Total() int {
	total := 0
	for _, c := range t.classes {
		total += t.counts[c]
	}
	return total
}

// SamplingStrategy resolves a user-facing over-sampling specification into
// the concrete per-class additional sample counts.
type SamplingStrategy interface {
	Resolve(counts *ClassCounts) (*TargetMap, error)
}

// StrategyMode is a named over-sampling strategy. Modes iterate classes in
// ascending order, so the resolved TargetMap order is deterministic.
type StrategyMode string

const (
	// StrategyAuto equalizes all classes to the majority count
	// (equivalent to StrategyNotMajority).
	StrategyAuto StrategyMode = "auto"
	// StrategyMinority resamples only the minority class.
	StrategyMinority StrategyMode = "minority"
	// StrategyNotMinority resamples all classes but the minority class.
	StrategyNotMinority StrategyMode = "not minority"
	// StrategyNotMajority resamples all classes but the majority class.
	StrategyNotMajority StrategyMode = "not majority"
	// StrategyAll resamples all classes, the majority receiving zero
	// additional samples.
	StrategyAll StrategyMode = "all"
)

// Resolve implements SamplingStrategy.
func (m StrategyMode) Resolve(counts *ClassCounts) (*TargetMap, error) {
	majorityClass, majorityCount := counts.Majority()
	minorityClass, _ := counts.Minority()

	target := NewTargetMap()
	switch m {
	case StrategyAuto, StrategyNotMajority:
		for _, class := range counts.Classes() {
			if class == majorityClass {
				continue
			}
			target.Set(class, majorityCount-counts.Count(class))
		}
	case StrategyMinority:
		target.Set(minorityClass, majorityCount-counts.Count(minorityClass))
	case StrategyNotMinority:
		for _, class := range counts.Classes() {
			if class == minorityClass {
				continue
			}
			target.Set(class, majorityCount-counts.Count(class))
		}
	case StrategyAll:
		for _, class := range counts.Classes() {
			target.Set(class, majorityCount-counts.Count(class))
		}
	default:
		return nil, errors.NewValidationError("samplingStrategy", "unknown strategy mode", string(m))
	}
	return target, nil
}

// Ratio is a binary-classification over-sampling strategy: the minority
// class is grown until minority/majority equals the ratio. Only values in
// (0, 1] are meaningful for over-sampling.
type Ratio float64

// Resolve implements SamplingStrategy.
func (r Ratio) Resolve(counts *ClassCounts) (*TargetMap, error) {
	if r <= 0 || r > 1 {
		return nil, errors.NewValidationError("samplingStrategy", "ratio must be in (0, 1]", float64(r))
	}
	if counts.NumClasses() != 2 {
		return nil, errors.NewValidationError("samplingStrategy", "a ratio is only supported for binary classification", counts.NumClasses())
	}

	_, majorityCount := counts.Majority()
	minorityClass, minorityCount := counts.Minority()

	desired := int(float64(r) * float64(majorityCount))
	if desired < minorityCount {
		return nil, errors.NewValidationError("samplingStrategy", "ratio would require removing samples; use an under-sampler instead", float64(r))
	}
	return NewTargetMap().Set(minorityClass, desired-minorityCount), nil
}

// DesiredCounts is an explicit over-sampling strategy: it maps each class
// to the desired total number of samples after resampling. Classes iterate
// in ascending order.
type DesiredCounts map[int]int

// Resolve implements SamplingStrategy.
func (d DesiredCounts) Resolve(counts *ClassCounts) (*TargetMap, error) {
	classes := make([]int, 0, len(d))
	for class := range d {
		classes = append(classes, class)
	}
	sort.Ints(classes)

	target := NewTargetMap()
	for _, class := range classes {
		current := counts.Count(class)
		if current == 0 {
			return nil, errors.NewValidationError("samplingStrategy", "class is not present in y", class)
		}
		if d[class] < current {
			return nil, errors.NewValidationError("samplingStrategy", "desired count is below the current count; use an under-sampler instead", d[class])
		}
		target.Set(class, d[class]-current)
	}
	return target, nil
}

// Additional is an explicit over-sampling strategy that passes a
// ready-made TargetMap of additional per-class counts straight through,
// preserving its insertion order.
type Additional struct {
	Target *TargetMap
}

// Resolve implements SamplingStrategy.
func (a Additional) Resolve(counts *ClassCounts) (*TargetMap, error) {
	if a.Target == nil {
		return nil, errors.NewValidationError("samplingStrategy", "nil target mapping", nil)
	}
	for _, class := range a.Target.Classes() {
		if a.Target.Count(class) < 0 {
			return nil, errors.NewValidationError("samplingStrategy", "negative additional count", a.Target.Count(class))
		}
	}
	return a.Target, nil
}

// ResolveSamplingStrategy resolves a strategy against the class
// distribution of y.
func ResolveSamplingStrategy(strategy SamplingStrategy, y []int) (*TargetMap, error) {
	if strategy == nil {
		strategy = StrategyAuto
	}
	if len(y) == 0 {
		return nil, errors.NewValueError("ResolveSamplingStrategy", "empty label vector")
	}
	return strategy.Resolve(CountClasses(y))
}

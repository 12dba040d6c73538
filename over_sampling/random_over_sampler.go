package over_sampling

import (
	"math/rand/v2"
	"time"

	"github.com/YuminosukeSato/imbgo/core/model"
	"github.com/YuminosukeSato/imbgo/dataset"
	"github.com/YuminosukeSato/imbgo/pkg/errors"
	"github.com/YuminosukeSato/imbgo/pkg/log"
	"github.com/YuminosukeSato/imbgo/utils"
)

// RandomOverSampler over-samples the minority class(es) by picking samples
// at random with replacement. The bootstrap can be generated in a smoothed
// manner (ROSE).
//
// The sampler never mutates its inputs: the resampled matrix and label
// vector are newly allocated, with the original rows first, followed by
// one block of generated rows per resampled class in target-mapping order.
type RandomOverSampler struct {
	state *model.StateManager

	// Hyperparameters
	samplingStrategy  utils.SamplingStrategy
	randomState       uint64
	hasRandomState    bool
	smoothedBootstrap bool
	shrinkage         float64
	shrinkageMap      map[int]float64

	// Artifacts of the last FitResample call
	sampleIndices []int
	shrinkageUsed map[int]float64
}

// NewRandomOverSampler creates a RandomOverSampler with the given options.
// Defaults: auto sampling strategy, plain (non-smoothed) bootstrap,
// shrinkage 1.0, clock-seeded randomness.
func NewRandomOverSampler(opts ...Option) *RandomOverSampler {
	ros := &RandomOverSampler{
		state:            model.NewStateManager(),
		samplingStrategy: utils.StrategyAuto,
		shrinkage:        1.0,
	}
	for _, opt := range opts {
		opt(ros)
	}
	return ros
}

// FitResample resamples X and y, returning the combined dataset and label
// vector. The output keeps X's representation: dense stays dense, sparse
// stays sparse in the same storage format. When the smoothed bootstrap is
// enabled a mixed table of purely numeric columns is coerced to dense
// before resampling; tables with string columns fail with a
// NonNumericDataError before any sampling work begins.
func (ros *RandomOverSampler) FitResample(X dataset.Matrix, y []int) (_ dataset.Matrix, _ []int, err error) {
	defer errors.Recover(&err, "RandomOverSampler.FitResample")
	const op = "RandomOverSampler.FitResample"

	if X == nil {
		return nil, nil, errors.NewValueError(op, "nil feature matrix")
	}
	if err := utils.CheckConsistentLength(op, X.Rows(), len(y)); err != nil {
		return nil, nil, err
	}
	if _, err := utils.CheckTargetType(y); err != nil {
		return nil, nil, err
	}

	target, err := utils.ResolveSamplingStrategy(ros.samplingStrategy, y)
	if err != nil {
		return nil, nil, err
	}

	// Configuration errors surface before any sampling work.
	workX := X
	var shrinkageUsed map[int]float64
	if ros.smoothedBootstrap {
		shrinkageUsed, err = ros.resolveShrinkage(target)
		if err != nil {
			return nil, nil, err
		}
		numeric, coerceErr := dataset.AsNumeric(X)
		if coerceErr != nil {
			return nil, nil, errors.NewNonNumericDataError(op, coerceErr)
		}
		workX = numeric
	}

	logger := log.GetLoggerWithName("over_sampling.random").With(
		log.SamplerNameKey, "RandomOverSampler",
	)
	start := time.Now()
	logger.Info("resampling started",
		log.OperationKey, "fit_resample",
		log.SamplesKey, X.Rows(),
		log.FeaturesKey, X.Cols(),
		log.RepresentationKey, X.Kind(),
		log.SmoothedKey, ros.smoothedBootstrap,
	)

	rng := ros.newRNG()

	total := len(y) + target.Total()
	xBlocks := []dataset.Matrix{workX}
	yOut := make([]int, 0, total)
	yOut = append(yOut, y...)
	sampleIndices := make([]int, 0, total)
	for i := range y {
		sampleIndices = append(sampleIndices, i)
	}

	for _, class := range target.Classes() {
		count := target.Count(class)

		// Bootstrap draws consume the rng before any normal draws for
		// the class, which pins the randomness stream order.
		eligible, drawn, selErr := selectBootstrap(y, class, count, rng)
		if selErr != nil {
			return nil, nil, selErr
		}
		if count == 0 {
			continue
		}

		logger.Debug("resampling class",
			log.ClassKey, class,
			log.ResampleCountKey, count,
		)

		sampleIndices = append(sampleIndices, drawn...)
		if ros.smoothedBootstrap {
			numeric := workX.(dataset.NumericMatrix)
			xBlocks = append(xBlocks, smoothedBootstrap(numeric, eligible, drawn, shrinkageUsed[class], rng))
		} else {
			xBlocks = append(xBlocks, workX.SelectRows(drawn))
		}
		for range drawn {
			yOut = append(yOut, class)
		}
	}

	XOut, err := dataset.VStack(xBlocks)
	if err != nil {
		return nil, nil, err
	}

	ros.sampleIndices = sampleIndices
	ros.shrinkageUsed = shrinkageUsed
	ros.state.SetDimensions(X.Cols(), X.Rows())
	ros.state.SetFitted()

	logger.Info("resampling completed",
		log.OperationKey, "fit_resample",
		log.OutputSamplesKey, XOut.Rows(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return XOut, yOut, nil
}

// SampleIndices returns the provenance of the last FitResample call: one
// original-matrix row index per output row. The first Rows(X) entries are
// the identity (the originals in order); the remaining entries are the
// bootstrap draws in class-iteration and draw order.
func (ros *RandomOverSampler) SampleIndices() ([]int, error) {
	if !ros.state.IsFitted() {
		return nil, errors.NewNotFittedError("RandomOverSampler", "SampleIndices")
	}
	out := make([]int, len(ros.sampleIndices))
	copy(out, ros.sampleIndices)
	return out, nil
}

// ResolvedShrinkage returns the per-class shrinkage factors used by the
// last FitResample call, nil when the smoothed bootstrap was disabled.
func (ros *RandomOverSampler) ResolvedShrinkage() (map[int]float64, error) {
	if !ros.state.IsFitted() {
		return nil, errors.NewNotFittedError("RandomOverSampler", "ResolvedShrinkage")
	}
	if ros.shrinkageUsed == nil {
		return nil, nil
	}
	out := make(map[int]float64, len(ros.shrinkageUsed))
	for class, factor := range ros.shrinkageUsed {
		out[class] = factor
	}
	return out, nil
}

// GetParams returns the sampler's hyperparameters.
func (ros *RandomOverSampler) GetParams() map[string]interface{} {
	params := map[string]interface{}{
		"sampling_strategy":  ros.samplingStrategy,
		"smoothed_bootstrap": ros.smoothedBootstrap,
		"shrinkage":          ros.shrinkage,
	}
	if ros.shrinkageMap != nil {
		params["shrinkage"] = ros.shrinkageMap
	}
	if ros.hasRandomState {
		params["random_state"] = ros.randomState
	}
	return params
}

// resolveShrinkage broadcasts the scalar shrinkage over the target classes
// or validates that an explicit per-class map covers them all.
func (ros *RandomOverSampler) resolveShrinkage(target *utils.TargetMap) (map[int]float64, error) {
	resolved := make(map[int]float64, target.Len())
	if ros.shrinkageMap != nil {
		var missing []int
		for _, class := range target.Classes() {
			factor, ok := ros.shrinkageMap[class]
			if !ok {
				missing = append(missing, class)
				continue
			}
			if factor < 0 {
				return nil, errors.NewValidationError("shrinkage", "shrinkage factor must be non-negative", factor)
			}
			resolved[class] = factor
		}
		if len(missing) > 0 {
			return nil, errors.NewIncompleteShrinkageError(missing)
		}
		return resolved, nil
	}

	if ros.shrinkage < 0 {
		return nil, errors.NewValidationError("shrinkage", "shrinkage factor must be non-negative", ros.shrinkage)
	}
	for _, class := range target.Classes() {
		resolved[class] = ros.shrinkage
	}
	return resolved, nil
}

func (ros *RandomOverSampler) newRNG() *rand.Rand {
	seed := ros.randomState
	if !ros.hasRandomState {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Interface guards.
var (
	_ model.Sampler           = (*RandomOverSampler)(nil)
	_ model.ProvenanceSampler = (*RandomOverSampler)(nil)
	_ model.ParameterGetter   = (*RandomOverSampler)(nil)
)

package over_sampling

import (
	"github.com/YuminosukeSato/imbgo/utils"
)

// Option is a function that configures RandomOverSampler.
type Option func(*RandomOverSampler)

// WithSamplingStrategy sets how the per-class additional sample counts are
// determined. Defaults to utils.StrategyAuto (equalize every class to the
// majority count).
func WithSamplingStrategy(strategy utils.SamplingStrategy) Option {
	return func(ros *RandomOverSampler) {
		ros.samplingStrategy = strategy
	}
}

// WithRandomState seeds the sampler's random number generator. Two
// samplers configured with the same seed and inputs produce bit-identical
// output. Without a seed the generator is seeded from the clock.
func WithRandomState(seed uint64) Option {
	return func(ros *RandomOverSampler) {
		ros.randomState = seed
		ros.hasRandomState = true
	}
}

// WithSmoothedBootstrap enables ROSE smoothed bootstrap generation. The
// data to be resampled must be purely numerical, since a Gaussian
// perturbation is generated and added to each bootstrap sample.
func WithSmoothedBootstrap(smoothed bool) Option {
	return func(ros *RandomOverSampler) {
		ros.smoothedBootstrap = smoothed
	}
}

// WithShrinkage sets a single shrinkage factor shared by every resampled
// class. The factor scales the bandwidth-derived smoothing noise; zero
// collapses the smoothed bootstrap to exact duplication. Defaults to 1.0.
func WithShrinkage(shrinkage float64) Option {
	return func(ros *RandomOverSampler) {
		ros.shrinkage = shrinkage
		ros.shrinkageMap = nil
	}
}

// WithShrinkageMap sets a per-class shrinkage factor. The map must contain
// an entry for every class that will be resampled; FitResample fails
// otherwise, naming the missing classes.
func WithShrinkageMap(shrinkage map[int]float64) Option {
	return func(ros *RandomOverSampler) {
		ros.shrinkageMap = make(map[int]float64, len(shrinkage))
		for class, factor := range shrinkage {
			ros.shrinkageMap[class] = factor
		}
	}
}

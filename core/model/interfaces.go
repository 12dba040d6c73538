package model

import (
	"github.com/YuminosukeSato/imbgo/dataset"
)

// Sampler is the interface implemented by all resamplers: given a feature
// matrix and its label vector, it returns a resampled copy of both.
// Inputs are never mutated; outputs are newly allocated.
type Sampler interface {
	FitResample(X dataset.Matrix, y []int) (dataset.Matrix, []int, error)
}

// ProvenanceSampler is a Sampler that records, for every output row, the
// index of the original row it was copied or derived from.
type ProvenanceSampler interface {
	Sampler

	// SampleIndices returns the provenance of the last FitResample call:
	// one original-matrix index per output row, original rows first.
	SampleIndices() ([]int, error)
}

// ParameterGetter is the interface for samplers that expose their
// parameters.
type ParameterGetter interface {
	// GetParams returns the sampler's hyperparameters.
	GetParams() map[string]interface{}
}

// Package imbgo provides dataset re-sampling tools for learning from
// imbalanced data in Go, with an API modeled after Python's
// imbalanced-learn.
//
// The library centers on over-sampling: growing the minority class(es)
// of a labeled dataset by drawing bootstrap samples with replacement,
// optionally smoothing the bootstrap with class-conditional Gaussian
// noise (the ROSE technique) so that generated points are similar to,
// but not exact copies of, existing ones.
//
// # Features
//
// - Random over-sampling with full sample provenance tracking
// - Smoothed bootstrap (ROSE) with per-class shrinkage control
// - Dense (gonum mat.Dense), compressed sparse (CSR/CSC), and mixed
//   string/numeric table representations, preserved end to end
// - Deterministic, seed-reproducible resampling
// - Imbalance-aware evaluation metrics (sensitivity, specificity,
//   geometric mean)
// - Structured logging and rich, typed errors with stack traces
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/imbgo/dataset"
//	    "github.com/YuminosukeSato/imbgo/over_sampling"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := dataset.NewDense(mat.NewDense(6, 2, []float64{
//	        0.1, 0.2,
//	        0.2, 0.1,
//	        0.3, 0.3,
//	        0.2, 0.2,
//	        5.0, 5.1,
//	        5.1, 5.0,
//	    }))
//	    y := []int{0, 0, 0, 0, 1, 1}
//
//	    ros := over_sampling.NewRandomOverSampler(
//	        over_sampling.WithRandomState(42),
//	    )
//	    XRes, yRes, err := ros.FitResample(X, y)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(XRes.Rows(), len(yRes)) // 8 8
//	}
//
// # Packages
//
//   - over_sampling: RandomOverSampler (plain and ROSE smoothed bootstrap)
//   - dataset: dense, sparse and mixed feature-matrix representations
//   - datasets: utilities to build imbalanced datasets from balanced ones
//   - metrics: evaluation metrics for imbalanced classification
//   - utils: label validation and sampling-strategy resolution
package imbgo

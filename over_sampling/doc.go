// Package over_sampling provides over-sampling algorithms that grow the
// minority class(es) of an imbalanced dataset.
//
// RandomOverSampler picks samples at random with replacement from each
// class that needs additional samples. The bootstrap can optionally be
// generated in a smoothed manner: each drawn sample is perturbed by
// Gaussian noise scaled to the class's per-feature dispersion, a method
// also known as Random Over-Sampling Examples (ROSE).
//
// Reference: G. Menardi, N. Torelli, "Training and assessing
// classification rules with imbalanced data", Data Mining and Knowledge
// Discovery, 28(1), pp. 92-122, 2014.
package over_sampling

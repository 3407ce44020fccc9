// Package preprocessing provides the centering/scaling step applied between
// partitioning and classification. Statistics are fitted on the training
// split only and applied identically to every split, which is what keeps
// validation and test data out of the fitted state.
package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/rnakit/lncbench/core/model"
	"github.com/rnakit/lncbench/core/parallel"
	"github.com/rnakit/lncbench/pkg/errors"
)

// zero-variance detection threshold on the training standard deviation
const degenerateStdTol = 1e-12

var _ model.Transformer = (*StandardScaler)(nil)

// StandardScaler transforms features to zero mean and unit variance.
//
// Fit must be called with training rows only; once fitted the profile is
// immutable and Transform applies the same (x - mean) / std to any split,
// including the one it was fitted from. A feature with zero training
// standard deviation fails the fit with DegenerateFeatureError: near-zero
// variance filtering belongs upstream, and silently clamping the scale
// would hide a broken feature.
type StandardScaler struct {
	model.BaseEstimator

	// Mean holds the per-feature training means.
	Mean []float64

	// Scale holds the per-feature training standard deviations.
	Scale []float64

	// NFeatures is the fitted feature count.
	NFeatures int

	// FeatureNames, when set before Fit, names features in error messages.
	FeatureNames []string
}

// NewStandardScaler creates an unfitted StandardScaler.
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// WithFeatureNames attaches feature names used in degenerate-feature errors.
func (s *StandardScaler) WithFeatureNames(names []string) *StandardScaler {
	s.FeatureNames = append([]string(nil), names...)
	return s
}

// Fit computes per-feature mean and standard deviation from X.
// X must contain training rows only.
func (s *StandardScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("StandardScaler.Fit", "empty data", errors.ErrEmptyData)
	}
	if s.FeatureNames != nil && len(s.FeatureNames) != c {
		return errors.NewDimensionError("StandardScaler.Fit", len(s.FeatureNames), c, 1)
	}

	mean := make([]float64, c)
	scale := make([]float64, c)

	col := make([]float64, r)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			col[i] = X.At(i, j)
		}
		m, v := stat.MeanVariance(col, nil)
		sd := math.Sqrt(v * float64(r-1) / float64(r)) // population std
		if r == 1 {
			sd = 0
		}
		if sd < degenerateStdTol {
			name := ""
			if s.FeatureNames != nil {
				name = s.FeatureNames[j]
			}
			return errors.NewDegenerateFeatureError("StandardScaler.Fit", name, j)
		}
		mean[j] = m
		scale[j] = sd
	}

	// Commit only after every feature passed, so a failed fit leaves the
	// scaler in its previous state.
	s.Mean = mean
	s.Scale = scale
	s.NFeatures = c
	s.SetFitted()
	return nil
}

// Transform standardizes X with the fitted training statistics.
func (s *StandardScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "Transform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.Transform", s.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	parallel.Parallelize(r, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < c; j++ {
				result.Set(i, j, (X.At(i, j)-s.Mean[j])/s.Scale[j])
			}
		}
	})

	return result, nil
}

// FitTransform fits on X and returns the transformed X.
// Only valid for the training split.
func (s *StandardScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// InverseTransform maps standardized data back to the original scale.
func (s *StandardScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "InverseTransform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.InverseTransform", s.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			result.Set(i, j, X.At(i, j)*s.Scale[j]+s.Mean[j])
		}
	}

	return result, nil
}

// GetParams returns the scaler's parameters.
func (s *StandardScaler) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"feature_names": s.FeatureNames,
	}
}

// String returns a short description of the scaler.
func (s *StandardScaler) String() string {
	if !s.IsFitted() {
		return "StandardScaler(unfitted)"
	}
	return fmt.Sprintf("StandardScaler(n_features=%d)", s.NFeatures)
}

package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/rnakit/lncbench/dataset"
)

// FitDataset fits the scaler on a training split, adopting the split's
// feature names for degenerate-feature diagnostics.
func (s *StandardScaler) FitDataset(train *dataset.Dataset) error {
	s.WithFeatureNames(train.Schema())
	return s.Fit(train.X())
}

// TransformDataset returns a new dataset whose features are scaled with the
// fitted training statistics. Labels and identifiers carry over unchanged.
func (s *StandardScaler) TransformDataset(ds *dataset.Dataset) (*dataset.Dataset, error) {
	scaled, err := s.Transform(ds.X())
	if err != nil {
		return nil, err
	}
	return dataset.New(ds.Schema(), mat.DenseCopyOf(scaled), ds.Labels(), ds.IDs())
}

// ScaleSplits fits a fresh scaler on the training split only and applies the
// resulting statistics to every split, training included. Validation and
// test rows never influence the fit.
func ScaleSplits(train *dataset.Dataset, others ...*dataset.Dataset) (*dataset.Dataset, []*dataset.Dataset, error) {
	scaler := NewStandardScaler()
	if err := scaler.FitDataset(train); err != nil {
		return nil, nil, err
	}
	scaledTrain, err := scaler.TransformDataset(train)
	if err != nil {
		return nil, nil, err
	}
	scaledOthers := make([]*dataset.Dataset, len(others))
	for i, ds := range others {
		if scaledOthers[i], err = scaler.TransformDataset(ds); err != nil {
			return nil, nil, err
		}
	}
	return scaledTrain, scaledOthers, nil
}

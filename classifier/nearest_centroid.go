package classifier

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/rnakit/lncbench/core/model"
	"github.com/rnakit/lncbench/pkg/errors"
)

const coincidentCentroidTol = 1e-12

var _ Interface = (*NearestCentroid)(nil)

// NearestCentroid classifies a sample by the closer of two class centroids.
// Centroids are weighted means, so sample weights shift the decision
// boundary the same way resampling would. Scores come from a sigmoid over
// the distance margin between the two centroids.
type NearestCentroid struct {
	state model.BaseEstimator

	// Temperature scales the distance margin before the sigmoid. Larger
	// values sharpen scores toward 0 and 1.
	Temperature float64

	centroidNeg []float64 // class 0
	centroidPos []float64 // class 1
	nFeatures   int
}

// NewNearestCentroid creates an unfitted NearestCentroid with unit
// temperature.
func NewNearestCentroid() *NearestCentroid {
	return &NearestCentroid{Temperature: 1.0}
}

// Name returns the algorithm name used in logs and errors.
func (nc *NearestCentroid) Name() string {
	return "nearest_centroid"
}

// Fit computes the weighted centroid of each class. A nil sampleWeight means
// uniform weights. Fitting fails when either class is absent, or when the
// two centroids coincide and no decision boundary exists.
func (nc *NearestCentroid) Fit(X, y mat.Matrix, sampleWeight []float64) error {
	if X == nil || y == nil {
		return errors.NewValueError("NearestCentroid.Fit", "nil input matrix")
	}
	r, c := X.Dims()
	yr, yc := y.Dims()
	if yc != 1 {
		return errors.NewDimensionError("NearestCentroid.Fit", 1, yc, 1)
	}
	if yr != r {
		return errors.NewDimensionError("NearestCentroid.Fit", r, yr, 0)
	}
	if r == 0 {
		return errors.WithStack(errors.ErrEmptyData)
	}
	if sampleWeight != nil && len(sampleWeight) != r {
		return errors.NewDimensionError("NearestCentroid.Fit", r, len(sampleWeight), 0)
	}

	neg := make([]float64, c)
	pos := make([]float64, c)
	var negW, posW float64
	for i := 0; i < r; i++ {
		w := 1.0
		if sampleWeight != nil {
			w = sampleWeight[i]
		}
		label := y.At(i, 0)
		switch label {
		case 0:
			negW += w
			for j := 0; j < c; j++ {
				neg[j] += w * X.At(i, j)
			}
		case 1:
			posW += w
			for j := 0; j < c; j++ {
				pos[j] += w * X.At(i, j)
			}
		default:
			return errors.NewValueError("NearestCentroid.Fit", "labels must be binary (0 or 1)")
		}
	}
	if posW <= 0 {
		return errors.WithStack(errors.ErrNoPositives)
	}
	if negW <= 0 {
		return errors.WithStack(errors.ErrNoNegatives)
	}

	sep := 0.0
	for j := 0; j < c; j++ {
		neg[j] /= negW
		pos[j] /= posW
		d := pos[j] - neg[j]
		sep += d * d
	}
	if math.Sqrt(sep) < coincidentCentroidTol {
		return errors.NewFitDivergenceError(nc.Name(), 1, "class centroids coincide")
	}

	nc.centroidNeg = neg
	nc.centroidPos = pos
	nc.nFeatures = c
	nc.state.SetFitted()
	return nil
}

// Predict returns a hard 0/1 label per row.
func (nc *NearestCentroid) Predict(X mat.Matrix) (mat.Matrix, error) {
	margins, err := nc.margins(X, "Predict")
	if err != nil {
		return nil, err
	}
	n := len(margins)
	out := mat.NewDense(n, 1, nil)
	for i, m := range margins {
		if m > 0 {
			out.Set(i, 0, 1)
		}
	}
	return out, nil
}

// PredictProba returns a positive-class score in (0, 1) per row, a sigmoid
// over the temperature-scaled distance margin.
func (nc *NearestCentroid) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	margins, err := nc.margins(X, "PredictProba")
	if err != nil {
		return nil, err
	}
	n := len(margins)
	out := mat.NewDense(n, 1, nil)
	for i, m := range margins {
		out.Set(i, 0, 1/(1+math.Exp(-nc.Temperature*m)))
	}
	return out, nil
}

// margins returns, per row, the signed distance margin d(negative centroid)
// minus d(positive centroid). Positive margins favor class 1.
func (nc *NearestCentroid) margins(X mat.Matrix, method string) ([]float64, error) {
	if !nc.state.IsFitted() {
		return nil, errors.NewNotFittedError("NearestCentroid", method)
	}
	if X == nil {
		return nil, errors.NewValueError("NearestCentroid."+method, "nil input matrix")
	}
	r, c := X.Dims()
	if c != nc.nFeatures {
		return nil, errors.NewDimensionError("NearestCentroid."+method, nc.nFeatures, c, 1)
	}

	margins := make([]float64, r)
	for i := 0; i < r; i++ {
		var dNeg, dPos float64
		for j := 0; j < c; j++ {
			v := X.At(i, j)
			dn := v - nc.centroidNeg[j]
			dp := v - nc.centroidPos[j]
			dNeg += dn * dn
			dPos += dp * dp
		}
		margins[i] = math.Sqrt(dNeg) - math.Sqrt(dPos)
	}
	return margins, nil
}

// GetParams returns the hyperparameters of the classifier.
func (nc *NearestCentroid) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"temperature": nc.Temperature,
	}
}

// SetParams updates hyperparameters from a map, for grid sweeps.
func (nc *NearestCentroid) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "temperature":
			v, ok := toFloat(value)
			if !ok {
				return errors.NewValidationError("temperature", "must be numeric", value)
			}
			if v <= 0 {
				return errors.NewValidationError("temperature", "must be positive", value)
			}
			nc.Temperature = v
		default:
			return errors.NewValidationError(key, "unknown parameter", value)
		}
	}
	return nil
}

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

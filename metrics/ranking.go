package metrics

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/rnakit/lncbench/pkg/errors"
)

// ROCPoint is one cut-point of a ROC curve.
type ROCPoint struct {
	Threshold float64
	FPR       float64 // false positive rate at this threshold
	TPR       float64 // true positive rate at this threshold
}

// PRPoint is one cut-point of a precision-recall curve.
type PRPoint struct {
	Threshold float64
	Recall    float64
	Precision float64
}

// scorePair couples one sample's truth with its positive-class score.
type scorePair struct {
	truth float64
	score float64
}

func sortedPairs(op string, yTrue, scores *mat.VecDense) ([]scorePair, int, int, error) {
	if yTrue == nil || scores == nil || yTrue.Len() == 0 {
		return nil, 0, 0, errors.NewValueError(op, "empty vector")
	}
	n := yTrue.Len()
	if scores.Len() != n {
		return nil, 0, 0, errors.NewDimensionError(op, n, scores.Len(), 0)
	}
	if err := errors.CheckNumericalStability(op, scores.RawVector().Data); err != nil {
		return nil, 0, 0, err
	}

	pairs := make([]scorePair, n)
	pos, neg := 0, 0
	for i := 0; i < n; i++ {
		truth := yTrue.AtVec(i)
		if truth != 0 && truth != 1 {
			return nil, 0, 0, errors.NewValueError(op, "labels must be binary (0 or 1)")
		}
		if truth == 1 {
			pos++
		} else {
			neg++
		}
		pairs[i] = scorePair{truth: truth, score: scores.AtVec(i)}
	}

	// descending score; ties are processed as one threshold group
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].score > pairs[j].score
	})

	return pairs, pos, neg, nil
}

// ROCCurve computes the ROC curve at every distinct score threshold,
// beginning with the degenerate (0, 0) point. Both rates are normalized per
// class, so the curve is invariant to the evaluation set's class ratio:
// duplicating or subsampling one class while keeping its score distribution
// leaves every point in place.
func ROCCurve(yTrue, scores *mat.VecDense) ([]ROCPoint, error) {
	pairs, pos, neg, err := sortedPairs("ROCCurve", yTrue, scores)
	if err != nil {
		return nil, err
	}
	if pos == 0 {
		return nil, errors.WithStack(errors.ErrNoPositives)
	}
	if neg == 0 {
		return nil, errors.WithStack(errors.ErrNoNegatives)
	}

	points := []ROCPoint{{Threshold: pairs[0].score, FPR: 0, TPR: 0}}
	tp, fp := 0, 0
	for i := 0; i < len(pairs); {
		threshold := pairs[i].score
		for i < len(pairs) && pairs[i].score == threshold {
			if pairs[i].truth == 1 {
				tp++
			} else {
				fp++
			}
			i++
		}
		points = append(points, ROCPoint{
			Threshold: threshold,
			FPR:       float64(fp) / float64(neg),
			TPR:       float64(tp) / float64(pos),
		})
	}

	return points, nil
}

// AUC returns the area under the ROC curve by trapezoidal integration, which
// credits score ties with half their span. Evaluation sets containing only
// one class make the area undefined; 0.5 is returned with an
// UndefinedMetricWarning.
func AUC(yTrue, scores *mat.VecDense) (float64, error) {
	points, err := ROCCurve(yTrue, scores)
	if err != nil {
		if errors.Is(err, errors.ErrNoPositives) || errors.Is(err, errors.ErrNoNegatives) {
			errors.Warn(errors.NewUndefinedMetricWarning("auc", "single-class evaluation set", 0.5))
			return 0.5, nil
		}
		return 0, err
	}

	area := 0.0
	for i := 1; i < len(points); i++ {
		dx := points[i].FPR - points[i-1].FPR
		area += dx * (points[i].TPR + points[i-1].TPR) / 2
	}
	return area, nil
}

// PRCurve computes the precision-recall curve at every distinct score
// threshold. Precision depends on the prevalence of positives, so unlike the
// ROC curve these values shift when the evaluation set's class balance
// changes.
func PRCurve(yTrue, scores *mat.VecDense) ([]PRPoint, error) {
	pairs, pos, _, err := sortedPairs("PRCurve", yTrue, scores)
	if err != nil {
		return nil, err
	}
	if pos == 0 {
		return nil, errors.WithStack(errors.ErrNoPositives)
	}

	var points []PRPoint
	tp, fp := 0, 0
	for i := 0; i < len(pairs); {
		threshold := pairs[i].score
		for i < len(pairs) && pairs[i].score == threshold {
			if pairs[i].truth == 1 {
				tp++
			} else {
				fp++
			}
			i++
		}
		points = append(points, PRPoint{
			Threshold: threshold,
			Recall:    float64(tp) / float64(pos),
			Precision: float64(tp) / float64(tp+fp),
		})
	}

	return points, nil
}

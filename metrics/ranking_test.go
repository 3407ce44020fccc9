package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestAUC(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "perfect classifier",
			yTrue: []float64{0, 0, 0, 1, 1, 1},
			yPred: []float64{0.1, 0.2, 0.3, 0.7, 0.8, 0.9},
			want:  1.0,
		},
		{
			name:  "worst classifier",
			yTrue: []float64{0, 0, 0, 1, 1, 1},
			yPred: []float64{0.9, 0.8, 0.7, 0.3, 0.2, 0.1},
			want:  0.0,
		},
		{
			name:  "uninformative scores",
			yTrue: []float64{0, 1, 0, 1},
			yPred: []float64{0.5, 0.5, 0.5, 0.5},
			want:  0.5,
		},
		{
			name:  "typical case",
			yTrue: []float64{0, 0, 1, 1},
			yPred: []float64{0.1, 0.4, 0.35, 0.8},
			want:  0.75,
		},
		{
			name:  "all positive labels",
			yTrue: []float64{1, 1, 1, 1},
			yPred: []float64{0.1, 0.4, 0.35, 0.8},
			want:  0.5, // undefined case, returns 0.5
		},
		{
			name:  "all negative labels",
			yTrue: []float64{0, 0, 0, 0},
			yPred: []float64{0.1, 0.4, 0.35, 0.8},
			want:  0.5, // undefined case, returns 0.5
		},
		{
			name:    "non-binary labels",
			yTrue:   []float64{0, 0.5, 1},
			yPred:   []float64{0.1, 0.5, 0.9},
			wantErr: true,
		},
		{
			name:    "dimension mismatch",
			yTrue:   []float64{0, 1},
			yPred:   []float64{0.5},
			wantErr: true,
		},
		{
			name:    "empty vectors",
			yTrue:   []float64{},
			yPred:   []float64{},
			wantErr: true,
		},
		{
			name:    "NaN score",
			yTrue:   []float64{0, 1},
			yPred:   []float64{0.5, math.NaN()},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AUC(vec(tt.yTrue), vec(tt.yPred))
			if (err != nil) != tt.wantErr {
				t.Errorf("AUC() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("AUC() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestROCCurvePoints(t *testing.T) {
	yTrue := vec([]float64{0, 0, 1, 1})
	scores := vec([]float64{0.1, 0.4, 0.35, 0.8})

	points, err := ROCCurve(yTrue, scores)
	if err != nil {
		t.Fatalf("ROCCurve() error = %v", err)
	}

	// (0,0) start plus one point per distinct threshold.
	want := []ROCPoint{
		{Threshold: 0.8, FPR: 0, TPR: 0},
		{Threshold: 0.8, FPR: 0, TPR: 0.5},
		{Threshold: 0.4, FPR: 0.5, TPR: 0.5},
		{Threshold: 0.35, FPR: 0.5, TPR: 1},
		{Threshold: 0.1, FPR: 1, TPR: 1},
	}
	if len(points) != len(want) {
		t.Fatalf("ROCCurve() returned %d points, want %d", len(points), len(want))
	}
	for i, w := range want {
		if math.Abs(points[i].FPR-w.FPR) > 1e-12 || math.Abs(points[i].TPR-w.TPR) > 1e-12 {
			t.Errorf("point %d = %+v, want %+v", i, points[i], w)
		}
	}

	if _, err := ROCCurve(vec([]float64{1, 1}), vec([]float64{0.1, 0.2})); err == nil {
		t.Error("ROCCurve() without negatives should fail")
	}
}

func TestPRCurvePoints(t *testing.T) {
	yTrue := vec([]float64{0, 0, 1, 1})
	scores := vec([]float64{0.1, 0.4, 0.35, 0.8})

	points, err := PRCurve(yTrue, scores)
	if err != nil {
		t.Fatalf("PRCurve() error = %v", err)
	}

	want := []PRPoint{
		{Threshold: 0.8, Recall: 0.5, Precision: 1},
		{Threshold: 0.4, Recall: 0.5, Precision: 0.5},
		{Threshold: 0.35, Recall: 1, Precision: 2.0 / 3.0},
		{Threshold: 0.1, Recall: 1, Precision: 0.5},
	}
	if len(points) != len(want) {
		t.Fatalf("PRCurve() returned %d points, want %d", len(points), len(want))
	}
	for i, w := range want {
		if math.Abs(points[i].Recall-w.Recall) > 1e-12 || math.Abs(points[i].Precision-w.Precision) > 1e-12 {
			t.Errorf("point %d = %+v, want %+v", i, points[i], w)
		}
	}
}

// TestROCInvariantPRSensitiveToClassRatio evaluates the same scorer on two
// sets differing only in how often each negative appears. The ROC curve must
// not move; the PR curve must.
func TestROCInvariantPRSensitiveToClassRatio(t *testing.T) {
	posScores := []float64{0.95, 0.9, 0.8, 0.75, 0.6, 0.55, 0.4, 0.35, 0.3, 0.2}
	negScores := []float64{0.85, 0.7, 0.65, 0.5, 0.45, 0.25, 0.15, 0.1, 0.05, 0.01}

	build := func(negCopies int) (*mat.VecDense, *mat.VecDense) {
		var yTrue, scores []float64
		for _, s := range posScores {
			yTrue = append(yTrue, 1)
			scores = append(scores, s)
		}
		for c := 0; c < negCopies; c++ {
			for _, s := range negScores {
				yTrue = append(yTrue, 0)
				scores = append(scores, s)
			}
		}
		return vec(yTrue), vec(scores)
	}

	// 10 negatives vs 60 negatives, identical score distribution.
	yA, sA := build(1)
	yB, sB := build(6)

	rocA, err := ROCCurve(yA, sA)
	if err != nil {
		t.Fatalf("ROCCurve(A) error = %v", err)
	}
	rocB, err := ROCCurve(yB, sB)
	if err != nil {
		t.Fatalf("ROCCurve(B) error = %v", err)
	}

	if len(rocA) != len(rocB) {
		t.Fatalf("ROC point counts differ: %d vs %d", len(rocA), len(rocB))
	}
	for i := range rocA {
		if math.Abs(rocA[i].FPR-rocB[i].FPR) > 1e-9 || math.Abs(rocA[i].TPR-rocB[i].TPR) > 1e-9 {
			t.Errorf("ROC point %d moved under negative resampling: %+v vs %+v",
				i, rocA[i], rocB[i])
		}
	}

	aucA, _ := AUC(yA, sA)
	aucB, _ := AUC(yB, sB)
	if math.Abs(aucA-aucB) > 1e-9 {
		t.Errorf("AUC moved under negative resampling: %v vs %v", aucA, aucB)
	}

	prA, err := PRCurve(yA, sA)
	if err != nil {
		t.Fatalf("PRCurve(A) error = %v", err)
	}
	prB, err := PRCurve(yB, sB)
	if err != nil {
		t.Fatalf("PRCurve(B) error = %v", err)
	}

	// Precision depends on prevalence: at least one cut-point must differ.
	moved := false
	for i := range prA {
		if i < len(prB) && math.Abs(prA[i].Precision-prB[i].Precision) > 1e-9 {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("PR curve did not move under negative resampling")
	}
}

func BenchmarkAUC(b *testing.B) {
	n := 1000
	yTrue := make([]float64, n)
	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		if i >= n/2 {
			yTrue[i] = 1
		}
		scores[i] = float64(i) / float64(n)
	}
	yTrueVec := mat.NewVecDense(n, yTrue)
	scoresVec := mat.NewVecDense(n, scores)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = AUC(yTrueVec, scoresVec)
	}
}

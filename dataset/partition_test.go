package dataset

import (
	"testing"

	"github.com/rnakit/lncbench/pkg/errors"
)

func TestPartitionDisjointness(t *testing.T) {
	ds := makeDataset(t, 200) // 100 per class

	spec := PartitionSpec{
		Train:    SplitCounts{PcRNA: 40, LncRNA: 40},
		Validate: SplitCounts{PcRNA: 30, LncRNA: 30},
		Test:     SplitCounts{PcRNA: 30, LncRNA: 30},
	}

	for _, seed := range []int64{0, 1, 7, 42, 1234567} {
		part, err := NewPartitioner(seed).Partition(ds, spec)
		if err != nil {
			t.Fatalf("seed %d: Partition() error = %v", seed, err)
		}

		seen := make(map[int]string)
		for _, split := range []struct {
			name string
			idx  []int
		}{
			{"train", part.Train},
			{"validate", part.Validate},
			{"test", part.Test},
		} {
			for _, i := range split.idx {
				if i < 0 || i >= ds.Len() {
					t.Errorf("seed %d: index %d out of range in %s", seed, i, split.name)
				}
				if prev, ok := seen[i]; ok {
					t.Errorf("seed %d: index %d in both %s and %s", seed, i, prev, split.name)
				}
				seen[i] = split.name
			}
		}

		if len(part.Train) != 80 || len(part.Validate) != 60 || len(part.Test) != 60 {
			t.Errorf("seed %d: split sizes = %d/%d/%d, want 80/60/60",
				seed, len(part.Train), len(part.Validate), len(part.Test))
		}
	}
}

func TestPartitionStratification(t *testing.T) {
	ds := makeDataset(t, 200)

	spec := PartitionSpec{
		Train:    SplitCounts{PcRNA: 60, LncRNA: 10}, // 6:1 skew
		Validate: SplitCounts{PcRNA: 20, LncRNA: 20},
		Test:     SplitCounts{PcRNA: 20, LncRNA: 20},
	}

	part, err := NewPartitioner(3).Partition(ds, spec)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	countClasses := func(idx []int) (pc, lnc int) {
		for _, i := range idx {
			if ds.Label(i) == LncRNA {
				lnc++
			} else {
				pc++
			}
		}
		return pc, lnc
	}

	if pc, lnc := countClasses(part.Train); pc != 60 || lnc != 10 {
		t.Errorf("train class counts = (%d, %d), want (60, 10)", pc, lnc)
	}
	if pc, lnc := countClasses(part.Validate); pc != 20 || lnc != 20 {
		t.Errorf("validate class counts = (%d, %d), want (20, 20)", pc, lnc)
	}
	if pc, lnc := countClasses(part.Test); pc != 20 || lnc != 20 {
		t.Errorf("test class counts = (%d, %d), want (20, 20)", pc, lnc)
	}
}

func TestPartitionDeterminism(t *testing.T) {
	ds := makeDataset(t, 100)
	spec := Balanced(10)

	first, err := NewPartitioner(99).Partition(ds, spec)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}
	second, err := NewPartitioner(99).Partition(ds, spec)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	for i := range first.Train {
		if first.Train[i] != second.Train[i] {
			t.Fatalf("same seed produced different train sets at %d: %d vs %d",
				i, first.Train[i], second.Train[i])
		}
	}
	for i := range first.Test {
		if first.Test[i] != second.Test[i] {
			t.Fatalf("same seed produced different test sets at %d", i)
		}
	}

	// A different seed should reshuffle. Compare as sets of first elements;
	// with 50 samples per class a collision of the whole prefix is implausible.
	third, err := NewPartitioner(100).Partition(ds, spec)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}
	same := true
	for i := range first.Train {
		if first.Train[i] != third.Train[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical train sets")
	}
}

func TestPartitionInsufficientSamples(t *testing.T) {
	ds := makeDataset(t, 20) // 10 per class

	tests := []struct {
		name string
		spec PartitionSpec
	}{
		{
			name: "pcRNA exhausted",
			spec: PartitionSpec{
				Train:    SplitCounts{PcRNA: 8, LncRNA: 2},
				Validate: SplitCounts{PcRNA: 2, LncRNA: 2},
				Test:     SplitCounts{PcRNA: 1, LncRNA: 2},
			},
		},
		{
			name: "lncRNA exhausted",
			spec: PartitionSpec{
				Train:    SplitCounts{PcRNA: 2, LncRNA: 5},
				Validate: SplitCounts{PcRNA: 2, LncRNA: 5},
				Test:     SplitCounts{PcRNA: 2, LncRNA: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPartitioner(1).Partition(ds, tt.spec)
			if err == nil {
				t.Fatal("Partition() should fail when a class is over-requested")
			}
			var insErr *errors.InsufficientSamplesError
			if !errors.As(err, &insErr) {
				t.Errorf("error type = %T, want *InsufficientSamplesError", err)
			}
		})
	}
}

func TestPartitionSpecValidation(t *testing.T) {
	ds := makeDataset(t, 20)

	_, err := NewPartitioner(1).Partition(ds, PartitionSpec{
		Train: SplitCounts{PcRNA: -1, LncRNA: 2},
	})
	if err == nil {
		t.Error("negative count should fail validation")
	}

	_, err = NewPartitioner(1).Partition(ds, PartitionSpec{
		Test: SplitCounts{PcRNA: 2, LncRNA: 2},
	})
	if err == nil {
		t.Error("empty training split should fail validation")
	}
}

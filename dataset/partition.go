package dataset

import (
	"math/rand/v2"

	"github.com/rnakit/lncbench/pkg/errors"
)

// SplitCounts requests an exact number of samples per class for one split.
// Balanced and skewed (e.g. 1:6) splits differ only in these counts.
type SplitCounts struct {
	PcRNA  int
	LncRNA int
}

// Total returns the split's sample count.
func (s SplitCounts) Total() int {
	return s.PcRNA + s.LncRNA
}

// PartitionSpec requests per-class counts for the three splits.
type PartitionSpec struct {
	Train    SplitCounts
	Validate SplitCounts
	Test     SplitCounts
}

// Balanced returns a spec with the same per-class count in every slot.
func Balanced(perClassPerSplit int) PartitionSpec {
	c := SplitCounts{PcRNA: perClassPerSplit, LncRNA: perClassPerSplit}
	return PartitionSpec{Train: c, Validate: c, Test: c}
}

// Partition holds disjoint train/validate/test index sets over one Dataset.
type Partition struct {
	Train    []int
	Validate []int
	Test     []int
}

// Partitioner produces deterministic, class-stratified partitions.
type Partitioner struct {
	Seed int64
}

// NewPartitioner creates a Partitioner with the given seed.
func NewPartitioner(seed int64) *Partitioner {
	return &Partitioner{Seed: seed}
}

// Partition shuffles each class's indices independently with the configured
// seed and slices contiguous, non-overlapping blocks per split according to
// the requested per-class counts. The three returned index sets are pairwise
// disjoint. The dataset is not mutated.
//
// Returns InsufficientSamplesError when a class's cumulative request exceeds
// its available samples.
func (p *Partitioner) Partition(ds *Dataset, spec PartitionSpec) (Partition, error) {
	if err := validateSpec(spec); err != nil {
		return Partition{}, err
	}

	pcIdx, lncIdx := ds.ClassIndices()

	needPc := spec.Train.PcRNA + spec.Validate.PcRNA + spec.Test.PcRNA
	if needPc > len(pcIdx) {
		return Partition{}, errors.NewInsufficientSamplesError(
			"Partitioner.Partition", PcRNA.String(), needPc, len(pcIdx))
	}
	needLnc := spec.Train.LncRNA + spec.Validate.LncRNA + spec.Test.LncRNA
	if needLnc > len(lncIdx) {
		return Partition{}, errors.NewInsufficientSamplesError(
			"Partitioner.Partition", LncRNA.String(), needLnc, len(lncIdx))
	}

	r := rand.New(rand.NewPCG(uint64(p.Seed), uint64(p.Seed)))
	pcShuf := shuffled(r, pcIdx)
	lncShuf := shuffled(r, lncIdx)

	var part Partition
	pcOff, lncOff := 0, 0
	for _, slot := range []struct {
		counts SplitCounts
		out    *[]int
	}{
		{spec.Train, &part.Train},
		{spec.Validate, &part.Validate},
		{spec.Test, &part.Test},
	} {
		idx := make([]int, 0, slot.counts.Total())
		idx = append(idx, pcShuf[pcOff:pcOff+slot.counts.PcRNA]...)
		idx = append(idx, lncShuf[lncOff:lncOff+slot.counts.LncRNA]...)
		pcOff += slot.counts.PcRNA
		lncOff += slot.counts.LncRNA
		*slot.out = idx
	}

	return part, nil
}

func validateSpec(spec PartitionSpec) error {
	for _, c := range []SplitCounts{spec.Train, spec.Validate, spec.Test} {
		if c.PcRNA < 0 || c.LncRNA < 0 {
			return errors.NewValidationError("spec", "negative class count", c)
		}
	}
	if spec.Train.Total() == 0 {
		return errors.NewValidationError("spec", "empty training split", spec.Train)
	}
	return nil
}

func shuffled(r *rand.Rand, indices []int) []int {
	out := append([]int(nil), indices...)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

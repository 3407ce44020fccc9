// Package dataset defines the labeled transcript dataset model and the
// ratio-controlled train/validate/test partitioner.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/rnakit/lncbench/pkg/errors"
)

// Label is the binary class of a transcript.
type Label int8

const (
	// PcRNA is the protein-coding class, the negative class.
	PcRNA Label = 0
	// LncRNA is the long non-coding class, the positive class.
	LncRNA Label = 1
)

// String returns the class name.
func (l Label) String() string {
	if l == LncRNA {
		return "lncRNA"
	}
	return "pcRNA"
}

// Dataset is an ordered collection of samples sharing one feature schema.
// It is immutable after construction: subset and feature-selection operations
// return new Dataset values backed by copied data.
type Dataset struct {
	schema []string
	x      *mat.Dense
	labels []Label
	ids    []string
}

// New creates a Dataset from a feature schema, a samples-by-features matrix,
// and per-sample labels. ids may be nil; when present it must match the row
// count. Every row's width must equal the schema length.
func New(schema []string, x *mat.Dense, labels []Label, ids []string) (*Dataset, error) {
	if x == nil {
		return nil, errors.NewModelError("dataset.New", "empty data", errors.ErrEmptyData)
	}
	r, c := x.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewModelError("dataset.New", "empty data", errors.ErrEmptyData)
	}
	if c != len(schema) {
		return nil, errors.NewDimensionError("dataset.New", len(schema), c, 1)
	}
	if r != len(labels) {
		return nil, errors.NewDimensionError("dataset.New", r, len(labels), 0)
	}
	if ids != nil && len(ids) != r {
		return nil, errors.NewDimensionError("dataset.New", r, len(ids), 0)
	}

	ds := &Dataset{
		schema: append([]string(nil), schema...),
		x:      mat.DenseCopyOf(x),
		labels: append([]Label(nil), labels...),
	}
	if ids != nil {
		ds.ids = append([]string(nil), ids...)
	}
	return ds, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	r, _ := d.x.Dims()
	return r
}

// NumFeatures returns the schema length.
func (d *Dataset) NumFeatures() int {
	return len(d.schema)
}

// Schema returns a copy of the ordered feature names.
func (d *Dataset) Schema() []string {
	return append([]string(nil), d.schema...)
}

// X returns the feature matrix. Callers must not mutate it.
func (d *Dataset) X() mat.Matrix {
	return d.x
}

// Labels returns a copy of the per-sample labels.
func (d *Dataset) Labels() []Label {
	return append([]Label(nil), d.labels...)
}

// Label returns the label of sample i.
func (d *Dataset) Label(i int) Label {
	return d.labels[i]
}

// IDs returns a copy of the sample identifiers, or nil when none were
// provided.
func (d *Dataset) IDs() []string {
	if d.ids == nil {
		return nil
	}
	return append([]string(nil), d.ids...)
}

// ID returns the identifier of sample i, or "" when none were provided.
func (d *Dataset) ID(i int) string {
	if d.ids == nil {
		return ""
	}
	return d.ids[i]
}

// LabelVector returns the labels as a float column vector (pcRNA=0, lncRNA=1)
// in the form classifier adapters and metrics consume.
func (d *Dataset) LabelVector() *mat.VecDense {
	v := mat.NewVecDense(len(d.labels), nil)
	for i, l := range d.labels {
		v.SetVec(i, float64(l))
	}
	return v
}

// Counts returns the pcRNA and lncRNA sample counts.
func (d *Dataset) Counts() (pc, lnc int) {
	for _, l := range d.labels {
		if l == LncRNA {
			lnc++
		} else {
			pc++
		}
	}
	return pc, lnc
}

// ClassIndices returns the sample indices of each class, in dataset order.
func (d *Dataset) ClassIndices() (pc, lnc []int) {
	for i, l := range d.labels {
		if l == LncRNA {
			lnc = append(lnc, i)
		} else {
			pc = append(pc, i)
		}
	}
	return pc, lnc
}

// Subset returns a new Dataset holding the given samples, in the given order.
// Indices may repeat; oversampled training sets are built this way.
func (d *Dataset) Subset(indices []int) (*Dataset, error) {
	n := d.Len()
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, errors.NewValidationError("indices", "index out of range", idx)
		}
	}

	_, c := d.x.Dims()
	x := mat.NewDense(len(indices), c, nil)
	labels := make([]Label, len(indices))
	var ids []string
	if d.ids != nil {
		ids = make([]string, len(indices))
	}

	for i, idx := range indices {
		x.SetRow(i, d.x.RawRowView(idx))
		labels[i] = d.labels[idx]
		if ids != nil {
			ids[i] = d.ids[idx]
		}
	}

	return &Dataset{
		schema: append([]string(nil), d.schema...),
		x:      x,
		labels: labels,
		ids:    ids,
	}, nil
}

// SelectFeatures returns a new Dataset restricted to the named features, in
// the order given. Ablation sweeps use this to replay a feature ranking.
func (d *Dataset) SelectFeatures(names []string) (*Dataset, error) {
	if len(names) == 0 {
		return nil, errors.NewValidationError("names", "empty feature selection", names)
	}

	cols := make([]int, len(names))
	for i, name := range names {
		col := -1
		for j, s := range d.schema {
			if s == name {
				col = j
				break
			}
		}
		if col < 0 {
			return nil, errors.NewValidationError("names", "unknown feature", name)
		}
		cols[i] = col
	}

	r, _ := d.x.Dims()
	x := mat.NewDense(r, len(cols), nil)
	for i := 0; i < r; i++ {
		for j, col := range cols {
			x.Set(i, j, d.x.At(i, col))
		}
	}

	return &Dataset{
		schema: append([]string(nil), names...),
		x:      x,
		labels: append([]Label(nil), d.labels...),
		ids:    d.ids,
	}, nil
}

// DropFeature returns a new Dataset without the named feature.
// Leave-one-out importance sweeps drop exactly one feature per run.
func (d *Dataset) DropFeature(name string) (*Dataset, error) {
	kept := make([]string, 0, len(d.schema)-1)
	found := false
	for _, s := range d.schema {
		if s == name {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return nil, errors.NewValidationError("name", "unknown feature", name)
	}
	if len(kept) == 0 {
		return nil, errors.NewValidationError("name", "cannot drop the only feature", name)
	}
	return d.SelectFeatures(kept)
}

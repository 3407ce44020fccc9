package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/rnakit/lncbench/pkg/errors"
)

// CSVOptions controls how a tabular transcript file is read.
type CSVOptions struct {
	// LabelColumn names the header column holding the class label.
	// Accepted values per row: "lncRNA" or "pcRNA".
	LabelColumn string

	// IDColumn, when non-empty, names the column holding transcript
	// identifiers. All other columns must be numeric features.
	IDColumn string
}

// ReadCSV loads a dataset from a headered CSV stream. Every column except
// the label and optional ID columns becomes a numeric feature; categorical
// columns must be encoded upstream before reaching this loader.
func ReadCSV(r io.Reader, opts CSVOptions) (*Dataset, error) {
	if opts.LabelColumn == "" {
		return nil, errors.NewValidationError("LabelColumn", "must be set", opts.LabelColumn)
	}

	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "dataset.ReadCSV: reading header")
	}

	labelIdx, idIdx := -1, -1
	var schema []string
	var featureIdx []int
	for i, name := range header {
		switch name {
		case opts.LabelColumn:
			labelIdx = i
		case opts.IDColumn:
			idIdx = i
		default:
			schema = append(schema, name)
			featureIdx = append(featureIdx, i)
		}
	}
	if labelIdx < 0 {
		return nil, errors.NewValidationError("LabelColumn", "not found in header", opts.LabelColumn)
	}
	if opts.IDColumn != "" && idIdx < 0 {
		return nil, errors.NewValidationError("IDColumn", "not found in header", opts.IDColumn)
	}
	if len(schema) == 0 {
		return nil, errors.NewValueError("dataset.ReadCSV", "no feature columns")
	}

	var rows []float64
	var labels []Label
	var ids []string
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "dataset.ReadCSV: line %d", line)
		}

		switch record[labelIdx] {
		case "lncRNA":
			labels = append(labels, LncRNA)
		case "pcRNA":
			labels = append(labels, PcRNA)
		default:
			return nil, errors.Newf("lncbench: dataset.ReadCSV: line %d: unknown label %q", line, record[labelIdx])
		}
		if idIdx >= 0 {
			ids = append(ids, record[idIdx])
		}
		for _, j := range featureIdx {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "dataset.ReadCSV: line %d: column %q", line, header[j])
			}
			rows = append(rows, v)
		}
	}
	if len(labels) == 0 {
		return nil, errors.NewModelError("dataset.ReadCSV", "empty data", errors.ErrEmptyData)
	}

	x := mat.NewDense(len(labels), len(schema), rows)
	return New(schema, x, labels, ids)
}

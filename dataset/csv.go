package dataset

import (
	"encoding/csv"
	"io"

	"tlog.app/go/errors"
)

// CSV is comma separated values with a header line.
type CSV struct{}

func (CSV) FormatName() string { return "csv" }

func (CSV) Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	recs, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}

	return fromRecords(recs)
}

func (CSV) Write(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	err := cw.Write(t.Columns)
	if err != nil {
		return errors.Wrap(err, "header")
	}

	for _, r := range t.rows {
		err = cw.Write(r.Values)
		if err != nil {
			return errors.Wrap(err, "row %d", r.Num)
		}
	}

	cw.Flush()

	return cw.Error()
}

package dataset

import (
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
	"tlog.app/go/errors"
)

// XLSX is an Excel workbook. The first sheet is read, its first row is the header.
type XLSX struct{}

const xlsxSheet = "Sheet1"

func (XLSX) FormatName() string { return "xlsx" }

func (XLSX) Read(r io.Reader) (_ *Table, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}

	defer func() {
		e := f.Close()
		if err == nil && e != nil {
			err = errors.Wrap(e, "close workbook")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Wrap(ErrBadHeader, "no sheets")
	}

	recs, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "sheet %q", sheets[0])
	}

	return fromRecords(recs)
}

// Write stores cells that are plain decimal numbers as numbers, the rest as text.
func (XLSX) Write(w io.Writer, t *Table) (err error) {
	f := excelize.NewFile()

	defer func() {
		e := f.Close()
		if err == nil && e != nil {
			err = errors.Wrap(e, "close workbook")
		}
	}()

	row := make([]interface{}, len(t.Columns))

	put := func(n int, vals []string) error {
		for i, v := range vals {
			if x, ok := number(v); ok && n != 1 && strconv.FormatFloat(x, 'f', -1, 64) == v {
				row[i] = x
			} else {
				row[i] = v
			}
		}

		cell, err := excelize.CoordinatesToCellName(1, n)
		if err != nil {
			return err
		}

		return f.SetSheetRow(xlsxSheet, cell, &row)
	}

	err = put(1, t.Columns)
	if err != nil {
		return errors.Wrap(err, "header")
	}

	for i, r := range t.rows {
		err = put(i+2, r.Values)
		if err != nil {
			return errors.Wrap(err, "row %d", r.Num)
		}
	}

	_, err = f.WriteTo(w)
	if err != nil {
		return errors.Wrap(err, "write workbook")
	}

	return nil
}

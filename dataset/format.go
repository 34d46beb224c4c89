package dataset

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"tlog.app/go/errors"
)

type (
	// Format reads and writes tables in some file format.
	Format interface {
		FormatName() string
		Read(r io.Reader) (*Table, error)
		Write(w io.Writer, t *Table) error
	}
)

var ErrUnknownFormat = errors.New("unknown file format")

// Formats maps file extensions without the dot to formats.
var Formats = map[string]Format{}

func init() {
	for _, f := range []Format{
		CSV{},
		XLSX{},
	} {
		Formats[f.FormatName()] = f
	}
}

// FormatFor picks the format by file extension.
func FormatFor(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	f := Formats[ext]
	if f == nil {
		return nil, errors.Wrap(ErrUnknownFormat, "%q", path)
	}

	return f, nil
}

func Load(path string) (_ *Table, err error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	r, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}

	defer func() {
		e := r.Close()
		if err == nil && e != nil {
			err = errors.Wrap(e, "close")
		}
	}()

	t, err := f.Read(r)
	if err != nil {
		return nil, errors.Wrap(err, "read %v", f.FormatName())
	}

	return t, nil
}

func Save(path string, t *Table) (err error) {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}

	w, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create")
	}

	defer func() {
		e := w.Close()
		if err == nil && e != nil {
			err = errors.Wrap(e, "close")
		}
	}()

	err = f.Write(w, t)
	if err != nil {
		return errors.Wrap(err, "write %v", f.FormatName())
	}

	return nil
}

// fromRecords builds a table from a header record followed by data records.
// Short records are padded with empty cells.
func fromRecords(recs [][]string) (*Table, error) {
	if len(recs) == 0 {
		return nil, errors.Wrap(ErrBadHeader, "empty file")
	}

	t, err := NewTable(recs[0])
	if err != nil {
		return nil, err
	}

	for i, rec := range recs[1:] {
		if len(rec) > len(t.Columns) {
			return nil, errors.Wrap(ErrRowWidth, "record %d: %d cells for %d columns", i+1, len(rec), len(t.Columns))
		}

		vals := make([]string, len(t.Columns))
		copy(vals, rec)

		if _, err = t.Append(vals); err != nil {
			return nil, err
		}
	}

	return t, nil
}

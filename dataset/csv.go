package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nathanhack/matgen/entry"
)

var Header = []string{
	"timestamp",
	"matrix 1 rows", "matrix 1 cols", "matrix 1 nnz", "matrix 1 nnz density",
	"matrix 2 rows", "matrix 2 cols", "matrix 2 nnz", "matrix 2 nnz density",
	"product rows", "product cols", "product nnz", "product nnz density",
	"matrix 1 path", "matrix 2 path", "product path",
}

func sizeFields(info entry.MatrixInfo) []string {
	return []string{
		strconv.Itoa(info.Rows),
		strconv.Itoa(info.Cols),
		strconv.Itoa(info.NonZeros),
		strconv.FormatFloat(info.Density, 'g', -1, 64),
	}
}

//WriteCSV writes the header followed by one row per record.
func WriteCSV(w io.Writer, records []entry.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, r := range records {
		row := make([]string, 0, len(Header))
		row = append(row, r.Timestamp)
		row = append(row, sizeFields(r.M1)...)
		row = append(row, sizeFields(r.M2)...)
		row = append(row, sizeFields(r.Product)...)
		row = append(row, r.M1.Path, r.M2.Path, r.Product.Path)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

//SaveCSV writes records to path, creating its directory.
func SaveCSV(path string, records []entry.Record) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = WriteCSV(f, records)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("error while saving csv to %v: %w", path, err)
	}
	return nil
}

//ReadCSV parses what WriteCSV wrote.
func ReadCSV(r io.Reader) ([]entry.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("missing csv header")
	}
	for i, name := range Header {
		if rows[0][i] != name {
			return nil, fmt.Errorf("unexpected csv header column %v: expected %q but found %q", i, name, rows[0][i])
		}
	}

	records := make([]entry.Record, 0, len(rows)-1)
	for line, row := range rows[1:] {
		record, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("csv line %v: %w", line+2, err)
		}
		records = append(records, record)
	}
	return records, nil
}

//LoadCSV reads the csv file at path.
func LoadCSV(path string) ([]entry.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("error while reading %v: %w", path, err)
	}
	return records, nil
}

func parseRow(row []string) (entry.Record, error) {
	var err error
	atoi := func(s string) int {
		if err != nil {
			return 0
		}
		var v int
		v, err = strconv.Atoi(s)
		return v
	}
	atof := func(s string) float64 {
		if err != nil {
			return 0
		}
		var v float64
		v, err = strconv.ParseFloat(s, 64)
		return v
	}
	info := func(fields []string, path string) entry.MatrixInfo {
		return entry.MatrixInfo{
			Path:     path,
			Rows:     atoi(fields[0]),
			Cols:     atoi(fields[1]),
			NonZeros: atoi(fields[2]),
			Density:  atof(fields[3]),
		}
	}

	record := entry.Record{
		Timestamp: row[0],
		M1:        info(row[1:5], row[13]),
		M2:        info(row[5:9], row[14]),
		Product:   info(row[9:13], row[15]),
	}
	return record, err
}

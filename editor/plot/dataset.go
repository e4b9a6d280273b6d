package plot

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Dataset is a row-oriented table read from a CSV file, with cells
// addressed by column name.
type Dataset struct {
	Columns []string
	rows    []map[string]string
}

// LoadCSV reads a dataset from a CSV file with a header row.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ds, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ds, nil
}

// ReadCSV reads a dataset from CSV content with a header row.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	ds := &Dataset{Columns: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		ds.rows = append(ds.rows, row)
	}
	return ds, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Value returns the cell at row i, column col.
func (d *Dataset) Value(i int, col string) string {
	return d.rows[i][col]
}

// Float parses the cell at row i, column col as a float.
func (d *Dataset) Float(i int, col string) (float64, error) {
	v, err := strconv.ParseFloat(d.rows[i][col], 64)
	if err != nil {
		return 0, fmt.Errorf("row %d column %s: %w", i, col, err)
	}
	return v, nil
}

// Int parses the cell at row i, column col as an integer.
func (d *Dataset) Int(i int, col string) (int, error) {
	v, err := strconv.Atoi(d.rows[i][col])
	if err != nil {
		return 0, fmt.Errorf("row %d column %s: %w", i, col, err)
	}
	return v, nil
}

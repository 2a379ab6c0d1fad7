package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// FromCSV reads CSV data into a Table. The first record is the header and
// provides the column names. Cells that parse as numbers become float64,
// empty cells become nil, everything else stays a string.
func FromCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv data has no header row")
	}

	header := records[0]
	columns := make([][]any, len(header))
	for _, record := range records[1:] {
		for i := range header {
			columns[i] = append(columns[i], parseCell(record[i]))
		}
	}

	t := NewTable()
	for i, name := range header {
		if err := t.AddColumn(name, columns[i]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// LoadCSV reads a CSV file into a Table.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer func() { _ = f.Close() }()

	t, err := FromCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func parseCell(s string) any {
	if s == "" {
		return nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	return s
}

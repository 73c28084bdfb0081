package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

func loadCSVFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadCSV(f)
}

func loadCSVBytes(data []byte) (*Store, error) {
	return loadCSV(bytes.NewReader(data))
}

func loadCSV(r io.Reader) (*Store, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty csv")
	}
	return buildStore(rows[0], rows[1:])
}

package dataset

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

func loadXLSXFile(path string) (*Store, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return loadXLSX(f)
}

func loadXLSXBytes(data []byte) (*Store, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return loadXLSX(f)
}

// loadXLSX reads the first sheet; the header row is the first row
func loadXLSX(f *excelize.File) (*Store, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}
	return buildStore(rows[0], rows[1:])
}

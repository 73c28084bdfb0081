package dataset

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTempXLSX(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "data.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeTempXLSX(t, [][]interface{}{
		{"Company", "Fiscal Year", "Total Revenue (USD mn)", "Net Income (USD mn)",
			"Total Assets (USD mn)", "Total Liabilities (USD mn)", "Cash Flow from Operations (USD mn)"},
		{"Apple", 2023, 383285, 96995, 352583, 290437, 110543},
		{"Apple", 2024, 391035, 93736, 364980, 308030, 118254},
	})

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", store.Len())
	}

	rec, err := store.Lookup("apple", 2024)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if rec.NetIncome.String() != "93736" {
		t.Fatalf("expected net income 93736, got %s", rec.NetIncome.String())
	}
}

func TestLoadXLSXMissingColumn(t *testing.T) {
	path := writeTempXLSX(t, [][]interface{}{
		{"Company", "Fiscal Year", "Total Revenue (USD mn)"},
		{"Apple", 2024, 391035},
	})

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for missing columns")
	}
}

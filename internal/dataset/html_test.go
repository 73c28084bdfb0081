package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadHTMLTable(t *testing.T) {
	store, err := Load(filepath.Join("testdata", "financials.html"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", store.Len())
	}

	rec, err := store.Lookup("Tesla", 2024)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if rec.NetIncome.String() != "7091" {
		t.Fatalf("expected net income 7091, got %s", rec.NetIncome.String())
	}
}

func TestLoadHTMLWithoutTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.html")
	if err := os.WriteFile(path, []byte("<html><body><p>no table here</p></body></html>"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for html without a table")
	}
}

package dataset

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// required column names in canonical form
const (
	colCompany     = "Company"
	colFiscalYear  = "FiscalYear"
	colRevenue     = "TotalRevenue"
	colNetIncome   = "NetIncome"
	colAssets      = "TotalAssets"
	colLiabilities = "TotalLiabilities"
	colCFO         = "CFO"
)

var requiredColumns = []string{
	colCompany, colFiscalYear, colRevenue, colNetIncome,
	colAssets, colLiabilities, colCFO,
}

// headerAliases maps spreadsheet-style headers to canonical column names.
// The upstream dataset is exported from Excel with unit suffixes.
var headerAliases = map[string]string{
	"fiscal year":                        colFiscalYear,
	"total revenue (usd mn)":             colRevenue,
	"net income (usd mn)":                colNetIncome,
	"total assets (usd mn)":              colAssets,
	"total liabilities (usd mn)":         colLiabilities,
	"cash flow from operations (usd mn)": colCFO,
	"cash flow from operations":          colCFO,
}

// LoadOption adjusts loader behavior
type LoadOption func(*loadOptions)

type loadOptions struct {
	httpTimeout time.Duration
}

// WithHTTPTimeout sets the timeout for http(s) dataset sources
func WithHTTPTimeout(d time.Duration) LoadOption {
	return func(o *loadOptions) { o.httpTimeout = d }
}

// Load reads the dataset from a source and builds the Store. The source may
// be a local CSV, XLSX or HTML-table file, or an http(s) URL serving one of
// those formats. Any failure is wrapped in *LoadError.
func Load(source string, opts ...LoadOption) (*Store, error) {
	o := loadOptions{httpTimeout: 30 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}

	store, err := loadSource(source, o)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	if store.Len() == 0 {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("no data rows")}
	}
	return store, nil
}

func loadSource(source string, o loadOptions) (*Store, error) {
	if isRemote(source) {
		return loadRemote(source, o.httpTimeout)
	}

	if _, err := os.Stat(source); err != nil {
		return nil, fmt.Errorf("missing file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".xlsx", ".xlsm":
		return loadXLSXFile(source)
	case ".html", ".htm":
		return loadHTMLFile(source)
	default:
		return loadCSVFile(source)
	}
}

func isRemote(source string) bool {
	u, err := url.Parse(source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

// buildStore turns a header row plus data rows into a Store. All loaders
// funnel through here so header aliasing and validation happen once.
func buildStore(header []string, rows [][]string) (*Store, error) {
	cols, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	store := newStore()
	for i, row := range rows {
		rec, err := parseRow(cols, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := store.add(rec); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	return store, nil
}

// mapHeader resolves each required column to its position in the header
func mapHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := canonicalColumn(h)
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func canonicalColumn(h string) string {
	trimmed := strings.TrimSpace(h)
	if alias, ok := headerAliases[strings.ToLower(trimmed)]; ok {
		return alias
	}
	// tolerate spacing and case differences in already-canonical headers
	squashed := strings.ReplaceAll(strings.ToLower(trimmed), " ", "")
	for _, c := range requiredColumns {
		if squashed == strings.ToLower(c) {
			return c
		}
	}
	return trimmed
}

func parseRow(cols map[string]int, row []string) (MetricRecord, error) {
	cell := func(name string) string {
		idx := cols[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	year, err := strconv.Atoi(cell(colFiscalYear))
	if err != nil {
		return MetricRecord{}, fmt.Errorf("invalid fiscal year %q", cell(colFiscalYear))
	}

	rec := MetricRecord{
		Company:    cell(colCompany),
		FiscalYear: year,
	}

	for _, f := range []struct {
		col string
		dst *decimal.Decimal
	}{
		{colRevenue, &rec.TotalRevenue},
		{colNetIncome, &rec.NetIncome},
		{colAssets, &rec.TotalAssets},
		{colLiabilities, &rec.TotalLiabilities},
		{colCFO, &rec.CFO},
	} {
		v, err := decimal.NewFromString(strings.ReplaceAll(cell(f.col), ",", ""))
		if err != nil {
			return MetricRecord{}, fmt.Errorf("invalid %s value %q", f.col, cell(f.col))
		}
		*f.dst = v
	}
	return rec, nil
}

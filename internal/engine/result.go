package engine

import (
	"github.com/shopspring/decimal"

	"github.com/dyike/finchat/internal/dataset"
)

// Value is a single resolved metric value
type Value struct {
	Company string
	Metric  dataset.Metric
	Year    int
	Amount  decimal.Decimal
}

// Change is a resolved year-over-year change between consecutive fiscal years
type Change struct {
	Company   string
	Metric    dataset.Metric
	Year      int
	PriorYear int
	Prior     decimal.Decimal
	Current   decimal.Decimal
	Pct       decimal.Decimal
}

// Entry is one per-company outcome. Exactly one of Value, Change or Err is
// set; Err only appears inside comparisons, where a failing company must not
// suppress the others.
type Entry struct {
	Company string
	Value   *Value
	Change  *Change
	Err     error
}

// Result is a resolved query: one entry for a single-company question, one
// entry per company for a comparison.
type Result struct {
	Compare bool
	Entries []Entry
}

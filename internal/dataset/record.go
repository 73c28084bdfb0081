package dataset

import "github.com/shopspring/decimal"

// MetricRecord holds one fiscal year of metrics for a company.
// All values are in USD millions. Records are immutable once loaded.
type MetricRecord struct {
	Company          string          `json:"company"`
	FiscalYear       int             `json:"fiscal_year"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	NetIncome        decimal.Decimal `json:"net_income"`
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	CFO              decimal.Decimal `json:"cfo"`
}

// Value returns the record's value for the given metric
func (r *MetricRecord) Value(m Metric) decimal.Decimal {
	switch m {
	case MetricRevenue:
		return r.TotalRevenue
	case MetricNetIncome:
		return r.NetIncome
	case MetricAssets:
		return r.TotalAssets
	case MetricLiabilities:
		return r.TotalLiabilities
	case MetricCFO:
		return r.CFO
	default:
		return decimal.Zero
	}
}

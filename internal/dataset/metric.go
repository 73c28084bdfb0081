package dataset

// Metric identifies one of the supported financial metrics
type Metric string

const (
	MetricRevenue     Metric = "total_revenue"
	MetricNetIncome   Metric = "net_income"
	MetricAssets      Metric = "total_assets"
	MetricLiabilities Metric = "total_liabilities"
	MetricCFO         Metric = "cfo"
)

// AllMetrics returns the supported metrics in canonical order
func AllMetrics() []Metric {
	return []Metric{
		MetricRevenue,
		MetricNetIncome,
		MetricAssets,
		MetricLiabilities,
		MetricCFO,
	}
}

// DisplayName returns a user-friendly name for the metric
func (m Metric) DisplayName() string {
	switch m {
	case MetricRevenue:
		return "Total Revenue"
	case MetricNetIncome:
		return "Net Income"
	case MetricAssets:
		return "Total Assets"
	case MetricLiabilities:
		return "Total Liabilities"
	case MetricCFO:
		return "CFO"
	default:
		return string(m)
	}
}

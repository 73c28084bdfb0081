package intent

import "github.com/dyike/finchat/internal/dataset"

// companyAliases maps lowercase names and tickers to canonical companies
var companyAliases = map[string]string{
	"apple":     "Apple",
	"aapl":      "Apple",
	"microsoft": "Microsoft",
	"msft":      "Microsoft",
	"tesla":     "Tesla",
	"tsla":      "Tesla",
}

// metricKeywords is scanned in order; the first matching entry wins.
// Single words match whole tokens, phrases match as substrings.
var metricKeywords = []struct {
	metric  dataset.Metric
	tokens  []string
	phrases []string
}{
	{dataset.MetricRevenue, []string{"revenue", "revenues", "sales"}, []string{"top line"}},
	{dataset.MetricNetIncome, []string{"profit", "profits", "earnings"}, []string{"net income"}},
	{dataset.MetricAssets, []string{"assets"}, nil},
	{dataset.MetricLiabilities, []string{"liabilities", "debt"}, nil},
	{dataset.MetricCFO, []string{"cfo"}, []string{
		"operating cash flow",
		"cash flow from operations",
		"cash flow from operating",
		"operating cash",
	}},
}

var yoyTokens = []string{
	"change", "changed", "growth", "grow", "grew", "yoy",
	"increased", "decreased", "delta",
}

var yoyPhrases = []string{"year over year", "year-over-year"}

var compareTokens = []string{"compare", "vs", "versus", "difference"}

var comparePhrases = []string{"which company"}

// allTokens trigger the compare-all intent across the whole company set
var allTokens = []string{"all", "companies"}

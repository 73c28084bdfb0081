// Package answer renders resolved query results into response sentences.
// Templates are deterministic: the same result always renders byte-identical
// output.
package answer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dyike/finchat/internal/dataset"
	"github.com/dyike/finchat/internal/engine"
)

const compareSeparator = " | "

// Formatter renders results and recoverable errors as reply text
type Formatter struct {
	// PctPrecision is the number of decimal places for percentage changes
	PctPrecision int32
}

// NewFormatter returns a formatter with the given percentage precision
func NewFormatter(pctPrecision int32) Formatter {
	if pctPrecision < 0 {
		pctPrecision = 2
	}
	return Formatter{PctPrecision: pctPrecision}
}

// Reply renders a resolve outcome, whichever of result or error is set
func (f Formatter) Reply(res engine.Result, err error) string {
	if err != nil {
		return f.RenderError(err)
	}
	return f.Render(res)
}

// Render formats a successful result
func (f Formatter) Render(res engine.Result) string {
	parts := make([]string, 0, len(res.Entries))
	for _, entry := range res.Entries {
		parts = append(parts, f.renderEntry(entry))
	}
	return strings.Join(parts, compareSeparator)
}

func (f Formatter) renderEntry(entry engine.Entry) string {
	switch {
	case entry.Value != nil:
		return f.renderValue(entry.Value)
	case entry.Change != nil:
		return f.renderChange(entry.Change)
	default:
		// A zero prior value is still a defined answer ("undefined"), not
		// missing data; everything else degrades to data-not-available.
		var div *engine.DivisionByZeroError
		if errors.As(entry.Err, &div) {
			return f.renderUndefined(div)
		}
		return fmt.Sprintf("%s: data not available.", entry.Company)
	}
}

func (f Formatter) renderValue(v *engine.Value) string {
	return fmt.Sprintf("%s's %s in %d was $%sM.",
		v.Company, v.Metric.DisplayName(), v.Year, v.Amount.String())
}

func (f Formatter) renderChange(c *engine.Change) string {
	return fmt.Sprintf("%s's %s changed by %s%% from %d to %d (from $%sM to $%sM).",
		c.Company, c.Metric.DisplayName(),
		c.Pct.StringFixed(f.PctPrecision),
		c.PriorYear, c.Year,
		c.Prior.String(), c.Current.String())
}

func (f Formatter) renderUndefined(e *engine.DivisionByZeroError) string {
	return fmt.Sprintf("%s's %s change from %d to %d is undefined (prior value was zero).",
		e.Company, e.Metric.DisplayName(), e.PriorYear, e.Year)
}

// RenderError formats a recoverable per-query failure
func (f Formatter) RenderError(err error) string {
	var (
		noCompany   *engine.UnrecognizedCompanyError
		noMetric    *engine.UnrecognizedMetricError
		notFound    *dataset.NotFoundError
		noHistory   *engine.InsufficientHistoryError
		zeroDivided *engine.DivisionByZeroError
	)

	switch {
	case errors.As(err, &noCompany):
		return fmt.Sprintf("Sorry, I couldn't recognize a company in your question. Supported companies: %s.",
			strings.Join(dataset.SupportedCompanies, ", "))

	case errors.As(err, &noMetric):
		return "Sorry, I couldn't recognize a metric in your question. Supported metrics: revenue, net income, assets, liabilities, operating cash flow (CFO)."

	case errors.As(err, &notFound):
		if notFound.Year == 0 {
			return fmt.Sprintf("Sorry, I have no data for %s.", notFound.Company)
		}
		return fmt.Sprintf("Sorry, I have no data for %s in FY%d.", notFound.Company, notFound.Year)

	case errors.As(err, &noHistory):
		return fmt.Sprintf("Sorry, I can't compute %s's %s change for FY%d: no FY%d data in the dataset.",
			noHistory.Company, noHistory.Metric.DisplayName(), noHistory.Year, noHistory.PriorYear)

	case errors.As(err, &zeroDivided):
		return f.renderUndefined(zeroDivided)

	default:
		return fmt.Sprintf("Sorry, something went wrong: %v.", err)
	}
}

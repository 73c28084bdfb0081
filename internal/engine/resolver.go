// Package engine resolves structured queries against the dataset store.
package engine

import (
	"github.com/shopspring/decimal"

	"github.com/dyike/finchat/internal/dataset"
	"github.com/dyike/finchat/internal/intent"
)

var hundred = decimal.NewFromInt(100)

// Resolve computes the answer for a structured query. Single-company
// failures are returned as the error; comparison failures are isolated
// per entry.
func Resolve(q intent.Query, store *dataset.Store) (Result, error) {
	if len(q.Companies) == 0 {
		return Result{}, &UnrecognizedCompanyError{}
	}
	if q.Metric == "" {
		return Result{}, &UnrecognizedMetricError{}
	}

	if q.Compare {
		res := Result{Compare: true}
		for _, company := range q.Companies {
			entry := resolveCompany(company, q, store)
			res.Entries = append(res.Entries, entry)
		}
		return res, nil
	}

	entry := resolveCompany(q.Companies[0], q, store)
	if entry.Err != nil {
		return Result{}, entry.Err
	}
	return Result{Entries: []Entry{entry}}, nil
}

// resolveCompany answers the query for one company. The year defaults to
// the company's latest available fiscal year.
func resolveCompany(company string, q intent.Query, store *dataset.Store) Entry {
	entry := Entry{Company: company}

	year := q.Year
	if year == 0 {
		latest, err := store.LatestYear(company)
		if err != nil {
			entry.Err = err
			return entry
		}
		year = latest
	}

	current, err := store.Lookup(company, year)
	if err != nil {
		entry.Err = err
		return entry
	}

	if !q.YoY {
		entry.Value = &Value{
			Company: current.Company,
			Metric:  q.Metric,
			Year:    year,
			Amount:  current.Value(q.Metric),
		}
		return entry
	}

	prior, err := store.Lookup(company, year-1)
	if err != nil {
		entry.Err = &InsufficientHistoryError{
			Company:   current.Company,
			Metric:    q.Metric,
			Year:      year,
			PriorYear: year - 1,
		}
		return entry
	}

	priorVal := prior.Value(q.Metric)
	currentVal := current.Value(q.Metric)
	if priorVal.IsZero() {
		entry.Err = &DivisionByZeroError{
			Company:   current.Company,
			Metric:    q.Metric,
			Year:      year,
			PriorYear: year - 1,
		}
		return entry
	}

	// (current - prior) / |prior| * 100, sign preserved
	pct := currentVal.Sub(priorVal).Div(priorVal.Abs()).Mul(hundred)

	entry.Change = &Change{
		Company:   current.Company,
		Metric:    q.Metric,
		Year:      year,
		PriorYear: year - 1,
		Prior:     priorVal,
		Current:   currentVal,
		Pct:       pct,
	}
	return entry
}

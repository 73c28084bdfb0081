package engine

import (
	"fmt"

	"github.com/dyike/finchat/internal/dataset"
)

// UnrecognizedCompanyError means no company keyword matched the question
type UnrecognizedCompanyError struct{}

func (e *UnrecognizedCompanyError) Error() string {
	return "no recognized company in question"
}

// UnrecognizedMetricError means no metric keyword matched the question
type UnrecognizedMetricError struct{}

func (e *UnrecognizedMetricError) Error() string {
	return "no recognized metric in question"
}

// InsufficientHistoryError means a YoY change was requested but the prior
// fiscal year has no record.
type InsufficientHistoryError struct {
	Company   string
	Metric    dataset.Metric
	Year      int
	PriorYear int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("no FY%d data for %s, cannot compute change into FY%d",
		e.PriorYear, e.Company, e.Year)
}

// DivisionByZeroError means the prior-year value is exactly zero, so the
// percentage change is undefined. It carries the full context so the
// formatter can render the undefined sentence.
type DivisionByZeroError struct {
	Company   string
	Metric    dataset.Metric
	Year      int
	PriorYear int
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s %s change from FY%d to FY%d is undefined: prior value is zero",
		e.Company, e.Metric.DisplayName(), e.PriorYear, e.Year)
}

// Package dataset loads the fixed financial metrics table and answers
// (company, fiscal year) lookups against it.
package dataset

import (
	"fmt"
	"sort"
	"strings"
)

// SupportedCompanies is the fixed company set in canonical order
var SupportedCompanies = []string{"Apple", "Microsoft", "Tesla"}

// LoadError reports a dataset source that could not be loaded.
// It is fatal: the process refuses to start without a usable dataset.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NotFoundError reports a missing (company, year) record.
// Year is zero when the company itself is unknown.
type NotFoundError struct {
	Company string
	Year    int
}

func (e *NotFoundError) Error() string {
	if e.Year == 0 {
		return fmt.Sprintf("no data for %s", e.Company)
	}
	return fmt.Sprintf("no data for %s in FY%d", e.Company, e.Year)
}

// Store is the in-memory dataset, read-only after Load.
type Store struct {
	records []MetricRecord
	byKey   map[string]map[int]int // lowercase company -> year -> records index
	names   map[string]string      // lowercase company -> canonical name
}

func newStore() *Store {
	s := &Store{
		byKey: make(map[string]map[int]int),
		names: make(map[string]string),
	}
	for _, c := range SupportedCompanies {
		s.names[strings.ToLower(c)] = c
	}
	return s
}

// add appends a record, enforcing at most one record per (company, year)
func (s *Store) add(rec MetricRecord) error {
	key := strings.ToLower(rec.Company)
	canonical, ok := s.names[key]
	if !ok {
		return fmt.Errorf("unsupported company %q (supported: %s)",
			rec.Company, strings.Join(SupportedCompanies, ", "))
	}
	rec.Company = canonical

	years, ok := s.byKey[key]
	if !ok {
		years = make(map[int]int)
		s.byKey[key] = years
	}
	if _, dup := years[rec.FiscalYear]; dup {
		return fmt.Errorf("duplicate row for %s FY%d", canonical, rec.FiscalYear)
	}

	s.records = append(s.records, rec)
	years[rec.FiscalYear] = len(s.records) - 1
	return nil
}

// Lookup returns the record for a company and fiscal year.
// Company matching is case-insensitive exact match.
func (s *Store) Lookup(company string, year int) (*MetricRecord, error) {
	years, ok := s.byKey[strings.ToLower(company)]
	if !ok || len(years) == 0 {
		return nil, &NotFoundError{Company: s.displayName(company)}
	}
	idx, ok := years[year]
	if !ok {
		return nil, &NotFoundError{Company: s.displayName(company), Year: year}
	}
	return &s.records[idx], nil
}

// LatestYear returns the company's maximum available fiscal year
func (s *Store) LatestYear(company string) (int, error) {
	years, ok := s.byKey[strings.ToLower(company)]
	if !ok || len(years) == 0 {
		return 0, &NotFoundError{Company: s.displayName(company)}
	}
	latest := 0
	for y := range years {
		if y > latest {
			latest = y
		}
	}
	return latest, nil
}

// Companies returns the companies with data, in canonical order
func (s *Store) Companies() []string {
	var out []string
	for _, c := range SupportedCompanies {
		if len(s.byKey[strings.ToLower(c)]) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Years returns a company's fiscal years in ascending order
func (s *Store) Years(company string) []int {
	var out []int
	for y := range s.byKey[strings.ToLower(company)] {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// Len returns the number of loaded records
func (s *Store) Len() int { return len(s.records) }

// displayName maps a lookup name back to its canonical spelling when known
func (s *Store) displayName(company string) string {
	if canonical, ok := s.names[strings.ToLower(company)]; ok {
		return canonical
	}
	return company
}

// Package intent maps free-text questions to structured queries using fixed
// keyword rules. Detection of company, metric and year is independent and
// order-insensitive.
package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dyike/finchat/internal/dataset"
)

// Query is the structured form of one user question
type Query struct {
	// Companies holds recognized companies in the order they were mentioned.
	// Empty means no company was recognized.
	Companies []string

	// AllCompanies is set when the question targets the whole company set
	AllCompanies bool

	// Metric is empty when no metric keyword matched
	Metric dataset.Metric

	// Year is zero when unset; resolution defaults to each company's
	// latest available fiscal year.
	Year int

	YoY     bool
	Compare bool
}

var (
	tokenSplit = regexp.MustCompile(`[^a-z0-9]+`)
	yearToken  = regexp.MustCompile(`\b20\d{2}\b`)
)

// Extract classifies a raw question into a Query
func Extract(text string) Query {
	lowered := strings.ToLower(text)
	tokens := tokenSplit.Split(lowered, -1)
	tokenSet := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		if tok != "" {
			tokenSet[tok] = true
		}
	}

	q := Query{
		Companies: extractCompanies(tokens),
		Metric:    extractMetric(lowered, tokenSet),
		Year:      extractYear(lowered),
		YoY:       matchAny(lowered, tokenSet, yoyTokens, yoyPhrases),
	}

	if matchAny(lowered, tokenSet, allTokens, nil) {
		q.Companies = append([]string(nil), dataset.SupportedCompanies...)
		q.AllCompanies = true
	}

	q.Compare = q.AllCompanies ||
		len(q.Companies) > 1 ||
		matchAny(lowered, tokenSet, compareTokens, comparePhrases)

	return q
}

// extractCompanies walks tokens in text order so mention order is preserved
func extractCompanies(tokens []string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, tok := range tokens {
		canonical, ok := companyAliases[tok]
		if !ok || seen[canonical] {
			continue
		}
		seen[canonical] = true
		found = append(found, canonical)
	}
	return found
}

func extractMetric(lowered string, tokens map[string]bool) dataset.Metric {
	for _, mk := range metricKeywords {
		if matchAny(lowered, tokens, mk.tokens, mk.phrases) {
			return mk.metric
		}
	}
	return ""
}

func extractYear(lowered string) int {
	m := yearToken.FindString(lowered)
	if m == "" {
		return 0
	}
	year, _ := strconv.Atoi(m)
	return year
}

func matchAny(lowered string, tokens map[string]bool, words, phrases []string) bool {
	for _, w := range words {
		if tokens[w] {
			return true
		}
	}
	for _, p := range phrases {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}

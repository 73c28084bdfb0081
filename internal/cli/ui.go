package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dyike/finchat/internal/dataset"
)

// UI styles
var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7C3AED")).
			Padding(0, 2)

	taglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Italic(true).
			MarginBottom(1)

	botStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#3B82F6"))

	tableCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D1D5DB"))
)

// DisplayWelcomeBanner shows the interactive-mode banner
func DisplayWelcomeBanner() {
	fmt.Println(bannerStyle.Render("📊 finchat — financial metrics chatbot"))
	fmt.Println(taglineStyle.Render("Rule-based Q&A over Apple, Microsoft and Tesla 10-K metrics"))
	fmt.Println("Ask naturally, e.g.:")
	for _, q := range ExampleQuestions {
		fmt.Println(hintStyle.Render("  - " + q))
	}
	fmt.Println(hintStyle.Render("Type 'help' for commands, 'exit' to quit."))
	fmt.Println()
}

// ClearScreen clears the terminal screen
func ClearScreen() {
	fmt.Print("\033[2J\033[H")
}

// RenderDataTable renders the loaded dataset as an aligned text table
func RenderDataTable(store *dataset.Store) string {
	var b strings.Builder

	header := fmt.Sprintf("%-10s %-6s %14s %12s %14s %18s %10s",
		"Company", "FY", "Revenue", "Net Income", "Assets", "Liabilities", "CFO")
	b.WriteString(tableHeaderStyle.Render(header))
	b.WriteString("\n")

	for _, company := range store.Companies() {
		for _, year := range store.Years(company) {
			rec, err := store.Lookup(company, year)
			if err != nil {
				continue
			}
			row := fmt.Sprintf("%-10s %-6d %14s %12s %14s %18s %10s",
				rec.Company, rec.FiscalYear,
				rec.TotalRevenue.String(), rec.NetIncome.String(),
				rec.TotalAssets.String(), rec.TotalLiabilities.String(),
				rec.CFO.String())
			b.WriteString(tableCellStyle.Render(row))
			b.WriteString("\n")
		}
	}

	b.WriteString(hintStyle.Render("All values in USD millions."))
	return b.String()
}

// Package observability provides human-readable output for CLI lookups.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/ytj-lookup/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for text mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens a line to the box's inner width, counting runes so that
// names such as "Ääkkönen Oy" keep the border aligned.
func truncate(line string) string {
	if utf8.RuneCountInString(line) <= boxWidth-4 {
		return line
	}
	runes := []rune(line)
	return string(runes[:boxWidth-7]) + "..."
}

// PrintLookupResult outputs a human-readable summary of one lookup.
func (p *Printer) PrintLookupResult(result *types.LookupResult) {
	if result == nil {
		return
	}

	switch result.Status {
	case types.StatusOK:
		if result.Company == nil {
			p.printBox("✅ "+result.BusinessID, "(no company data)")
			return
		}
		p.printBox("✅ "+result.BusinessID, formatCompany(result.Company))
	case types.StatusNotFound:
		p.printBox("∅ "+result.BusinessID, result.Message)
	default:
		p.printBox("⚠ "+result.BusinessID, result.Message)
	}
}

// PrintLookupResults outputs every result followed by a one-line tally.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintLookupResults(results []*types.LookupResult) {
	counts := make(map[types.LookupStatus]int)
	for _, result := range results {
		if result == nil {
			continue
		}
		p.PrintLookupResult(result)
		counts[result.Status]++
	}
	fmt.Fprintf(p.out, "%d found, %d not found, %d failed\n",
		counts[types.StatusOK], counts[types.StatusNotFound], counts[types.StatusError])
}

func formatCompany(company *types.NormalizedCompany) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:        %s\n", orDash(company.CompanyName)))
	sb.WriteString(fmt.Sprintf("Business ID: %s\n", orDash(company.BusinessID)))
	sb.WriteString(fmt.Sprintf("Registered:  %s\n", orDash(company.RegistrationDate)))
	sb.WriteString(fmt.Sprintf("Status:      %s\n", orDash(company.Status)))
	if company.Website != "" {
		sb.WriteString(fmt.Sprintf("Website:     %s\n", company.Website))
	}

	address := company.Address
	if address != (types.Address{}) {
		sb.WriteString(fmt.Sprintf("Address:     %s\n", orDash(address.Street)))
		sb.WriteString(fmt.Sprintf("             %s %s\n", address.PostCode, address.City))
	}

	return sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

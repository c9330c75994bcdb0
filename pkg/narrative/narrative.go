// Package narrative describes generation of a text summary for a compared
// indicator. Implementations live in internal/ionarrative.
package narrative

import (
	"context"
	"fmt"
	"strings"

	"github.com/gnames/cfazone/pkg/median"
)

// Narrator creates a short analysis of medians comparison.
type Narrator interface {
	// Summarize returns Markdown text describing the comparison.
	Summarize(ctx context.Context, req Request) (string, error)
}

// Request contains everything a narrator knows about a comparison.
type Request struct {
	// Indicator is the label of the indicator.
	Indicator string

	// Years are the years where both cohort medians are known.
	Years []int

	// Verdict tells which cohort had the higher median more often.
	Verdict median.Dominance

	// Description explains what the indicator measures.
	Description string

	// Unit of the indicator values.
	Unit string
}

// System is the instruction given to text-generation services.
const System = "You are an economist who writes short, neutral and " +
	"factual analyses of macroeconomic data for a general audience. " +
	"Answer in Markdown without headings."

// Prompt builds a request text for a text-generation service.
func Prompt(req Request) string {
	var sb strings.Builder
	fmt.Fprintf(&sb,
		"Analyze the indicator %q for African countries that use the CFA "+
			"franc compared to Non-CFA countries of Middle Africa and "+
			"Western Africa.\n", req.Indicator)
	if req.Description != "" {
		fmt.Fprintf(&sb, "Indicator description: %s\n", req.Description)
	}
	if req.Unit != "" {
		fmt.Fprintf(&sb, "Unit: %s\n", req.Unit)
	}
	fmt.Fprintf(&sb, "Years compared: %s\n", YearsRange(req.Years))
	fmt.Fprintf(&sb,
		"Group whose median was higher in more years: %s\n",
		req.Verdict.Phrase())
	sb.WriteString(
		"Explain in two or three paragraphs what this could mean for the " +
			"economies of both groups, mention the role of the currency " +
			"union, and avoid claims that the data cannot support.",
	)
	return sb.String()
}

// YearsRange formats years as a list of ranges, for example
// '1980-1985, 1990, 1992-2000'. Years must be sorted.
func YearsRange(years []int) string {
	if len(years) == 0 {
		return "none"
	}
	var parts []string
	start, prev := years[0], years[0]
	flush := func() {
		if start == prev {
			parts = append(parts, fmt.Sprintf("%d", start))
			return
		}
		parts = append(parts, fmt.Sprintf("%d-%d", start, prev))
	}
	for _, y := range years[1:] {
		if y == prev+1 {
			prev = y
			continue
		}
		flush()
		start, prev = y, y
	}
	flush()
	return strings.Join(parts, ", ")
}

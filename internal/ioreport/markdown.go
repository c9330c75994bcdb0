package ioreport

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/gnames/cfazone/pkg/median"
	"github.com/gnames/gn"
	"github.com/olekukonko/tablewriter"
)

// Title of the report document.
const Title = "African CFA Franc Zone Economic Indicators"

// Heading returns the heading of the section of an indicator.
func Heading(label string) string {
	return "## " + label + " comparison between African CFA Zone " +
		"Countries to Non-CFA Middle Africa and Western Africa Countries"
}

// Markdown assembles the report as a Markdown document.
func (rep *Report) Markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", Title)
	fmt.Fprintf(&sb, "Created: %s  \nRun: %s\n\n",
		rep.Created.Format("2006-01-02 15:04"), rep.RunID)
	for _, s := range rep.Sections {
		sb.WriteString(s.Markdown())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Markdown returns the section as Markdown text.
func (s Section) Markdown() string {
	var sb strings.Builder
	sb.WriteString(Heading(s.Indicator.Title()))
	sb.WriteString("\n\n")

	if s.Empty() {
		sb.WriteString("_No years with data for both groups of countries._\n")
		return sb.String()
	}

	if s.Chart != "" {
		fmt.Fprintf(&sb, "![%s](%s)\n\n", s.Indicator.Title(), s.Chart)
	}

	sb.WriteString(Table(s.Rows))
	sb.WriteString("\n")

	fmt.Fprintf(&sb,
		"Median was higher for CFA countries in %d years, "+
			"for Non-CFA countries in %d years.\n\n",
		s.Verdict.CFAGreater, s.Verdict.NonCFAGreater)

	if s.Narrative != "" {
		sb.WriteString(s.Narrative)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Table formats median rows as a Markdown table.
func Table(rows []median.Row) string {
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"Year", "CFA median", "Non-CFA median",
		"CFA abs. median", "Non-CFA abs. median"})
	table.SetAutoFormatHeaders(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, r := range rows {
		table.Append([]string{
			strconv.Itoa(r.Year),
			formatValue(r.CFAMedian),
			formatValue(r.NonCFAMedian),
			formatValue(r.AbsCFAMedian),
			formatValue(r.AbsNonCFAMedian),
		})
	}
	table.Render()
	return sb.String()
}

func formatValue(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// Render formats Markdown for the terminal.
func Render(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", RenderError(err)
	}
	res, err := r.Render(md)
	if err != nil {
		return "", RenderError(err)
	}
	return res, nil
}

// Write saves the report to the configured output file, or renders it
// to the writer of the Reporter if no output file is set.
func (r *Reporter) Write(rep *Report) error {
	md := rep.Markdown()

	if path := r.cfg.Report.Output; path != "" {
		if err := os.WriteFile(path, []byte(md), 0644); err != nil {
			return ExportError(path, err)
		}
		gn.Info("Report is saved to <em>%s</em>", path)
		return nil
	}

	out, err := Render(md)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(r.out, out)
	return err
}

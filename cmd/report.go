/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/cfazone/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getReportCmd returns the report command.
func getReportCmd() *cobra.Command {
	var (
		codes   []string
		refresh bool
		output  string
		export  string
		format  string
	)

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Compare CFA and Non-CFA countries by indicators",
		Long: `Create a report that compares African countries of the CFA franc
zone with Non-CFA countries of Middle Africa and Western Africa.

For every indicator the report contains yearly medians of both groups,
a chart, the group that had the higher median more often, and a short
summary. Indicators that are not in the store yet are fetched first.

Summaries are created by 'narrative.provider' from config.yaml:
  template  offline summary (default)
  openai    needs OPENAI_API_KEY
  gemini    needs GEMINI_API_KEY

Examples:
  cfazone report
  cfazone report -i NGDP_RPCH,PCPIPCH -o report.md
  cfazone report --refresh -e xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var reportOpts []config.Option
			reportOpts = append(reportOpts, indicatorsOption(cmd, codes)...)
			if cmd.Flags().Changed("refresh") {
				reportOpts = append(reportOpts, config.OptReportRefresh(refresh))
			}
			if cmd.Flags().Changed("output") {
				reportOpts = append(reportOpts, config.OptReportOutput(output))
			}
			if cmd.Flags().Changed("export") {
				reportOpts = append(reportOpts, config.OptReportExport(export))
			}
			if cmd.Flags().Changed("chart-format") {
				reportOpts = append(reportOpts, config.OptReportChartFormat(format))
			}
			cfg.Update(reportOpts)

			err := runReport()
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	indicatorsFlag(reportCmd, &codes)
	reportCmd.Flags().BoolVarP(&refresh, "refresh", "r", false,
		"download indicators even if they are stored")
	reportCmd.Flags().StringVarP(&output, "output", "o", "",
		"save markdown report to a file instead of printing it")
	reportCmd.Flags().StringVarP(&export, "export", "e", "",
		"export median tables: csv, tsv, json, xlsx")
	reportCmd.Flags().StringVarP(&format, "chart-format", "c", "",
		"chart format: png, svg")

	return reportCmd
}

func runReport() error {
	ctx := context.Background()

	c, err := newComponents(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.close()

	r, err := c.reporter(ctx, cfg)
	if err != nil {
		return err
	}

	rep, err := r.Run(ctx)
	if err != nil {
		return err
	}

	if err = r.Write(rep); err != nil {
		return err
	}

	for _, v := range rep.Exports {
		gn.Info("Exported medians to <em>%s</em>", v)
	}
	gn.Info("Charts are saved to <em>%s</em>", cfg.ReportDir())
	return nil
}

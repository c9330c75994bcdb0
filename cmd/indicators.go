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
	"fmt"
	"os"
	"strings"

	"github.com/gnames/cfazone/internal/iocohort"
	"github.com/gnames/cfazone/internal/ioimf"
	"github.com/gnames/cfazone/pkg/obs"
	"github.com/gnames/gn"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// getIndicatorsCmd returns the indicators command.
func getIndicatorsCmd() *cobra.Command {
	var search string

	indicatorsCmd := &cobra.Command{
		Use:   "indicators",
		Short: "List indicators provided by IMF DataMapper",
		Long: `List codes and labels of indicators provided by IMF DataMapper API.
Use the codes with the -i flag of 'fetch' and 'report' commands or in
'report.indicators' of config.yaml.

Examples:
  cfazone indicators
  cfazone indicators -s inflation`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runIndicators(search)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	indicatorsCmd.Flags().StringVarP(&search, "search", "s", "",
		"show only indicators with the text in code or label")

	return indicatorsCmd
}

func runIndicators(search string) error {
	ctx := context.Background()

	members, err := iocohort.Load(cfg)
	if err != nil {
		return err
	}
	srcOpts := []ioimf.Option{ioimf.OptProgress(false)}
	if cache := openCache(cfg); cache != nil {
		defer cache.Close()
		srcOpts = append(srcOpts, ioimf.OptCache(cache))
	}
	src := ioimf.New(cfg, members, srcOpts...)

	inds, err := src.Indicators(ctx)
	if err != nil {
		return err
	}
	inds = filterIndicators(inds, search)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Code", "Label", "Unit"})
	table.SetAutoWrapText(false)
	for _, v := range inds {
		table.Append([]string{v.Code, v.Label, v.Unit})
	}
	table.Render()
	fmt.Printf("%d indicators\n", len(inds))
	return nil
}

func filterIndicators(inds []obs.Indicator, search string) []obs.Indicator {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return inds
	}
	var res []obs.Indicator
	for _, v := range inds {
		if strings.Contains(strings.ToLower(v.Code), search) ||
			strings.Contains(strings.ToLower(v.Label), search) {
			res = append(res, v)
		}
	}
	return res
}

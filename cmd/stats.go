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
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// getStatsCmd returns the stats command.
func getStatsCmd() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show indicators kept in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runStats()
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	return statsCmd
}

func runStats() error {
	ctx := context.Background()
	store := newStore(cfg)
	if err := store.Open(ctx); err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats(ctx)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		gn.Warn("The store is empty, run <em>cfazone fetch</em>")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"Code", "Label", "Records", "Countries", "Years", "Fetched",
	})
	for _, v := range stats {
		years := strconv.Itoa(v.FirstYear) + "-" + strconv.Itoa(v.LastYear)
		table.Append([]string{
			v.Indicator.Code,
			v.Indicator.Title(),
			humanize.Comma(int64(v.Records)),
			strconv.Itoa(v.Countries),
			years,
			humanize.Time(v.FetchedAt),
		})
	}
	table.Render()
	return nil
}

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

// getFetchCmd returns the fetch command.
func getFetchCmd() *cobra.Command {
	var (
		codes      []string
		clearCache bool
	)

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download indicators from IMF DataMapper into the store",
		Long: `Download indicator values for all configured countries from
IMF DataMapper API and replace stored records of these indicators.

Examples:
  # Fetch indicators listed in config.yaml
  cfazone fetch

  # Fetch specific indicators
  cfazone fetch -i NGDP_RPCH,PCPIPCH

  # Remove all cached API responses before fetching
  cfazone fetch --clear-cache`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runFetch(cmd, codes, clearCache)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	indicatorsFlag(fetchCmd, &codes)
	fetchCmd.Flags().BoolVar(&clearCache, "clear-cache", false,
		"remove all cached IMF responses before download")

	return fetchCmd
}

func runFetch(cmd *cobra.Command, codes []string, clearCache bool) error {
	ctx := context.Background()
	cfg.Update(indicatorsOption(cmd, codes))
	// fetch always downloads fresh data, cached responses are only updated
	cfg.Update([]config.Option{config.OptReportRefresh(true)})

	c, err := newComponents(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.close()

	if clearCache && c.cache != nil {
		if err = c.cache.Clear(); err != nil {
			return err
		}
		gn.Info("Removed cached IMF responses")
	}

	return c.fetcher(cfg).Fetch(ctx, cfg.Report.Indicators)
}

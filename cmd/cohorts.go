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
	"os"
	"strconv"
	"time"

	"github.com/gnames/cfazone/internal/iocohort"
	"github.com/gnames/cfazone/pkg/cohort"
	"github.com/gnames/gn"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// getCohortsCmd returns the cohorts command.
func getCohortsCmd() *cobra.Command {
	var year int

	cohortsCmd := &cobra.Command{
		Use:   "cohorts",
		Short: "Show which countries are compared in a year",
		Long: `Show configured countries, their region and cohort in a given year.
Countries that joined the CFA franc zone later belong to the Non-CFA
cohort before the year they joined.

Countries are configured in ~/.config/cfazone/cohorts.yaml.

Examples:
  cfazone cohorts
  cfazone cohorts -y 1983`,
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := iocohort.Load(cfg)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			printCohorts(members, year)
			return nil
		},
	}
	cohortsCmd.Flags().IntVarP(&year, "year", "y", time.Now().Year(),
		"year of membership")

	return cohortsCmd
}

func printCohorts(m *cohort.Membership, year int) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Code", "Country", "Region", "Joined", "Cohort"})
	for _, c := range m.Countries() {
		_, region, _ := m.Lookup(c.Code)
		joined := ""
		if c.Joined > 0 {
			joined = strconv.Itoa(c.Joined)
		}
		table.Append([]string{
			c.Code, c.Name, string(region), joined, m.Of(c.Code, year).String(),
		})
	}
	table.Render()
}

package cmd

import (
	"github.com/gnames/cfazone/pkg/config"
	"github.com/spf13/cobra"
)

// rootFlags converts persistent flags that were set by user to options.
func rootFlags(cmd *cobra.Command) []config.Option {
	var res []config.Option
	if f := cmd.Flags().Lookup("jobs"); f != nil && f.Changed {
		jobs, _ := cmd.Flags().GetInt("jobs")
		res = append(res, config.OptJobsNumber(jobs))
	}
	return res
}

// indicatorsFlag adds the flag for a list of indicator codes.
func indicatorsFlag(cmd *cobra.Command, codes *[]string) {
	cmd.Flags().StringSliceVarP(
		codes, "indicators", "i", nil,
		"comma-separated IMF indicator codes (default from config)",
	)
}

// indicatorsOption returns an option for indicator codes if the flag
// was set.
func indicatorsOption(cmd *cobra.Command, codes []string) []config.Option {
	if !cmd.Flags().Changed("indicators") {
		return nil
	}
	return []config.Option{config.OptReportIndicators(codes)}
}

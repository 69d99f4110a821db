package cmdutil

import (
	"strings"

	"github.com/spf13/cobra"
)

func AutoCompleteFromStaticList(args ...string) func(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, _ []string, toComplete string) (rtn []string, dir cobra.ShellCompDirective) {
		toComplete = strings.ToLower(toComplete)

		for _, option := range args {
			before, _, _ := strings.Cut(option, "\t")

			if strings.HasPrefix(before, toComplete) {
				rtn = append(rtn, option)
			}
		}

		return rtn, cobra.ShellCompDirectiveNoFileComp
	}
}

package main

import (
	"fmt"

	"github.com/logrusorgru/aurora/v3"
	"github.com/spf13/cobra"

	"apidoc.me/cli/cmd/apidoc/root"
	"apidoc.me/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Reports the current version of apidoc",

	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "apidoc version", version.Version)
		if version.Channel != version.GA {
			fmt.Fprintln(out, aurora.Yellow("This is a development build of apidoc."))
		}
	},
}

func init() {
	root.Cmd.AddCommand(versionCmd)
}

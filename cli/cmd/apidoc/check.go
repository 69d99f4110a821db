package main

import (
	"github.com/spf13/cobra"

	"apidoc.me/cli/cmd/apidoc/root"
)

var checkCmd = &cobra.Command{
	Use:   "check [<input>]",
	Short: "Validates an API specification document",
	Long:  "Validates an API specification document (api.json by default) against the apidoc service.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner(cmd)
		if err != nil {
			return err
		}
		return r.Check(cmd.Context(), inputArg(args, 0))
	},
}

func init() {
	root.Cmd.AddCommand(checkCmd)
}

package main

import (
	"github.com/spf13/cobra"

	"apidoc.me/cli/cmd/apidoc/root"
	"apidoc.me/cli/internal/task"
)

var generateOutput string

var generateCmd = &cobra.Command{
	Use:   "generate <org/app:version> <generator>",
	Short: "Generates source code for a version of an application",
	Long: "Generates source code for a version of an application using the given generator.\n" +
		"The source is written to stdout unless --output is given.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner(cmd)
		if err != nil {
			return err
		}
		return r.Generate(cmd.Context(), task.Generate{
			Tag:    args[0],
			Target: args[1],
			Output: generateOutput,
		})
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "write the generated source to this file instead of stdout")
	root.Cmd.AddCommand(generateCmd)
}

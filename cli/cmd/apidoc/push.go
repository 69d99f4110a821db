package main

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"apidoc.me/cli/cmd/apidoc/cmdutil"
	"apidoc.me/cli/cmd/apidoc/root"
	"apidoc.me/cli/internal/task"
	"apidoc.me/pkg/apidoc"
)

var originalType apidoc.OriginalType

var pushCmd = &cobra.Command{
	Use:   "push <org/app:version> [<input>]",
	Short: "Publishes a new version of an application",
	Long: "Publishes the API specification document (api.json by default) as a new version.\n" +
		"The version's visibility is set with --visibility.",
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner(cmd)
		if err != nil {
			return err
		}

		p := task.Push{
			Tag:        args[0],
			Path:       inputArg(args, 1),
			Visibility: &root.Visibility,
		}
		if cmd.Flags().Changed("type") {
			p.Type = &originalType
		}

		if term.IsTerminal(int(os.Stderr.Fd())) {
			s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
			s.Suffix = " pushing " + p.Tag
			r.Progress = s
		}
		return r.Push(cmd.Context(), p)
	},
}

func init() {
	typ := &cmdutil.Enum[apidoc.OriginalType]{
		Value: &originalType,
		Known: apidoc.OriginalTypes,
		Flag:  "type",
		Desc:  "Format of the input document, detected by the server if omitted",
	}
	typ.AddFlag(pushCmd, pushCmd.Flags())
	root.Cmd.AddCommand(pushCmd)
}

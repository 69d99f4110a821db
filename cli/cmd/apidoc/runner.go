package main

import (
	"github.com/spf13/cobra"

	"apidoc.me/cli/cmd/apidoc/root"
	"apidoc.me/cli/internal/apiclient"
	"apidoc.me/cli/internal/conf"
	"apidoc.me/cli/internal/task"
)

// newRunner loads the selected profile and sets up a runner
// writing to the command's output streams.
func newRunner(cmd *cobra.Command) (*task.Runner, error) {
	profile, err := conf.Load(root.ConfigPath, root.Profile)
	if err != nil {
		return nil, err
	}
	return &task.Runner{
		Transport: apiclient.New(profile.APIURL, profile.Token),
		Out:       cmd.OutOrStdout(),
		Err:       cmd.ErrOrStderr(),
	}, nil
}

// inputArg returns the input file argument at index i, defaulting to api.json.
func inputArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return "api.json"
}

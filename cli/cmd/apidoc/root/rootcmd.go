package root

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"apidoc.me/cli/cmd/apidoc/cmdutil"
	"apidoc.me/cli/internal/conf"
	"apidoc.me/pkg/apidoc"
)

var (
	Verbosity int

	// ConfigPath is the config file to read profiles from.
	ConfigPath string

	// Profile is the name of the profile to use.
	Profile string

	// Visibility is the visibility of pushed versions.
	Visibility = apidoc.VisibilityUser
)

var Cmd = &cobra.Command{
	Use:           "apidoc",
	Short:         "apidoc is a command line client for the apidoc service",
	SilenceErrors: true, // We'll handle displaying an error in our main func
	SilenceUsage:  true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true, // Hide the "completion" command from help (used for generating auto-completions for the shell)
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if Verbosity == 1 {
			level = zerolog.DebugLevel
		} else if Verbosity >= 2 {
			level = zerolog.TraceLevel
		}
		log.Logger = log.Logger.Level(level)
	},
}

func init() {
	flags := Cmd.PersistentFlags()
	flags.CountVarP(&Verbosity, "verbose", "v", "verbose output")
	flags.StringVar(&ConfigPath, "config", conf.DefaultPath(), "path to the config file")
	flags.StringVar(&Profile, "profile", conf.DefaultProfile, "config profile to use")
	visibility := &cmdutil.Enum[apidoc.Visibility]{
		Value: &Visibility,
		Known: apidoc.Visibilities,
		Flag:  "visibility",
		Desc:  "Visibility of pushed versions",
	}
	visibility.AddFlag(Cmd, flags)
}

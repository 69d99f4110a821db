package cmdutil

import (
	"io"

	"github.com/fatih/color"

	"apidoc.me/pkg/cmderr"
)

// PrintError writes err to w as "error: <description>".
func PrintError(w io.Writer, err error) {
	red := color.New(color.FgRed)
	_, _ = red.Fprint(w, "error: ")
	_, _ = red.Fprintln(w, cmderr.From(err).Description)
}

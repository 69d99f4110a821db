package cmdutil

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Enum is a flag value for an open set of strings.
// Any value is accepted; commands report unrecognized values themselves.
type Enum[T ~string] struct {
	Value *T
	Known []T
	Flag  string
	Desc  string
}

var _ pflag.Value = (*Enum[string])(nil)

// AddFlag adds the flag to flags and registers completions on cmd.
func (e *Enum[T]) AddFlag(cmd *cobra.Command, flags *pflag.FlagSet) {
	flags.Var(e, e.Flag, e.Usage())
	_ = cmd.RegisterFlagCompletionFunc(e.Flag, AutoCompleteFromStaticList(e.Alternatives()...))
}

func (e *Enum[T]) String() string {
	if e.Value == nil {
		return ""
	}
	return string(*e.Value)
}

func (e *Enum[T]) Set(v string) error {
	*e.Value = T(v)
	return nil
}

func (e *Enum[T]) Type() string {
	return e.Flag
}

// Alternatives lists the known values.
func (e *Enum[T]) Alternatives() []string {
	alts := make([]string, len(e.Known))
	for i, k := range e.Known {
		alts[i] = string(k)
	}
	return alts
}

func (e *Enum[T]) Usage() string {
	var b strings.Builder
	b.WriteString(e.Desc + ". One of (")
	n := len(e.Known)
	for i, s := range e.Known {
		if i > 0 {
			switch {
			case n == 2:
				b.WriteString(" or ")
			case i == n-1:
				b.WriteString(", or ")
			default:
				b.WriteString(", ")
			}
		}
		b.WriteString(strconv.Quote(string(s)))
	}
	b.WriteString(").")
	return b.String()
}

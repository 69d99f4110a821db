package task

import (
	"context"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog/log"

	"apidoc.me/cli/internal/apiclient"
	"apidoc.me/cli/internal/interpret"
	"apidoc.me/pkg/apidoc"
	"apidoc.me/pkg/cmderr"
	"apidoc.me/pkg/tag"
)

// Generate fetches the code generated by Target for the version in Tag.
type Generate struct {
	Tag    string
	Target string

	// Output is the file to write the source to.
	// If empty, the source is written to the runner's Out.
	Output string
}

var (
	decodeCode   = interpret.JSON[apidoc.Code]("generator", "source")
	decodeErrors = interpret.JSON[[]apidoc.Error]()
)

func (g Generate) Send(ctx context.Context, r *Runner) (*apiclient.Response, error) {
	rev, err := tag.Parse(g.Tag)
	if err != nil {
		return nil, err
	}
	return r.send(func() (*apiclient.Response, error) {
		return r.Transport.GetCode(ctx, rev.Org, rev.App, rev.Version, g.Target)
	})
}

func (Generate) DecodeSuccess(data []byte) (apidoc.Code, error) { return decodeCode(data) }

func (Generate) DecodeFailure(_ int, data []byte) ([]apidoc.Error, error) { return decodeErrors(data) }

func (g Generate) HandleSuccess(r *Runner, code apidoc.Code) error {
	if g.Output == "" {
		return r.out("%s", code.Source)
	}
	if err := renameio.WriteFile(g.Output, []byte(code.Source), 0644); err != nil {
		return cmderr.Wrapf(err, "failed to write output to `%s`", g.Output)
	}
	log.Info().Str("generator", code.Generator.Key).Msgf("wrote %s", g.Output)
	return nil
}

func (Generate) HandleFailure(r *Runner, errs []apidoc.Error) error {
	return r.reportErrors(errs)
}

// Generate runs the generate command.
func (r *Runner) Generate(ctx context.Context, g Generate) error {
	return Run[apidoc.Code, []apidoc.Error](ctx, r, g)
}

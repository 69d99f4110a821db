package task

import (
	"context"

	"github.com/rs/zerolog/log"

	"apidoc.me/cli/internal/apiclient"
	"apidoc.me/cli/internal/interpret"
	"apidoc.me/pkg/apidoc"
	"apidoc.me/pkg/cmderr"
	"apidoc.me/pkg/tag"
)

// Push publishes the document at Path as the version in Tag.
type Push struct {
	Tag  string
	Path string

	// Visibility and Type are optional. Unrecognized values are
	// rejected before anything is sent.
	Visibility *apidoc.Visibility
	Type       *apidoc.OriginalType
}

var decodeVersion = interpret.JSON[apidoc.Version]("guid", "version")

func (p Push) Send(ctx context.Context, r *Runner) (*apiclient.Response, error) {
	if p.Visibility != nil {
		if err := p.Visibility.Validate(); err != nil {
			return nil, cmderr.From(err)
		}
	}
	if p.Type != nil {
		if err := p.Type.Validate(); err != nil {
			return nil, cmderr.From(err)
		}
	}
	rev, err := tag.Parse(p.Tag)
	if err != nil {
		return nil, err
	}
	input, err := readInput(p.Path)
	if err != nil {
		return nil, err
	}

	form := apidoc.VersionForm{
		OriginalForm: apidoc.OriginalForm{
			Type: p.Type,
			Data: string(input),
		},
		Visibility: p.Visibility,
	}
	log.Debug().Str("path", p.Path).Msgf("pushing to %s", rev)
	return r.send(func() (*apiclient.Response, error) {
		return r.Transport.PutVersion(ctx, rev.Org, rev.App, rev.Version, form)
	})
}

func (Push) DecodeSuccess(data []byte) (apidoc.Version, error) { return decodeVersion(data) }

func (Push) DecodeFailure(_ int, data []byte) ([]apidoc.Error, error) { return decodeErrors(data) }

func (Push) HandleSuccess(r *Runner, v apidoc.Version) error {
	log.Debug().Str("guid", v.GUID).Msgf("published %s/%s:%s", v.Organization.Key, v.Application.Key, v.Version)
	return nil
}

func (Push) HandleFailure(r *Runner, errs []apidoc.Error) error {
	return r.reportErrors(errs)
}

// Push runs the push command.
func (r *Runner) Push(ctx context.Context, p Push) error {
	return Run[apidoc.Version, []apidoc.Error](ctx, r, p)
}

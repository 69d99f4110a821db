// Package task runs apidoc commands against the API.
//
// Every command follows the same steps: build and send a request, decode
// the response according to its status, and react to the decoded value.
// All errors returned from this package are *cmderr.Error.
package task

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"apidoc.me/cli/internal/apiclient"
	"apidoc.me/cli/internal/interpret"
	"apidoc.me/pkg/apidoc"
	"apidoc.me/pkg/cmderr"
)

// Transport is the subset of the API used by the commands.
// It is implemented by *apiclient.Client.
type Transport interface {
	GetCode(ctx context.Context, org, app, version, generator string) (*apiclient.Response, error)
	PostValidation(ctx context.Context, body []byte) (*apiclient.Response, error)
	PutVersion(ctx context.Context, org, app, version string, form apidoc.VersionForm) (*apiclient.Response, error)
}

var _ Transport = (*apiclient.Client)(nil)

// Progress runs while a request is in flight, from just before the
// transport call until the response has arrived. *spinner.Spinner
// implements it.
type Progress interface {
	Start()
	Stop()
}

// Runner holds what commands need to run.
type Runner struct {
	Transport Transport
	Out       io.Writer // normal output
	Err       io.Writer // per-item error lines

	// Progress, if non-nil, is shown while waiting for the API.
	Progress Progress
}

// Task is a single command.
// S is the payload of a successful response and F that of a failed one.
type Task[S, F any] interface {
	// Send builds the request and sends it with r.send.
	// Errors building the request must be *cmderr.Error;
	// any other error is treated as a transport failure.
	Send(ctx context.Context, r *Runner) (*apiclient.Response, error)

	DecodeSuccess(data []byte) (S, error)
	// DecodeFailure decodes the body of a non-2xx response.
	// The status picks the shape for endpoints that have more than one.
	DecodeFailure(status int, data []byte) (F, error)

	HandleSuccess(r *Runner, result S) error
	HandleFailure(r *Runner, result F) error
}

// Run runs t to completion.
func Run[S, F any](ctx context.Context, r *Runner, t Task[S, F]) error {
	resp, err := t.Send(ctx, r)
	if err != nil {
		if e, ok := cmderr.As(err); ok {
			return e
		}
		return cmderr.Wrapf(err, "HTTP request failed")
	}
	log.Trace().Int("status", resp.StatusCode).Msg("got response")

	decodeFailure := func(data []byte) (F, error) {
		return t.DecodeFailure(resp.StatusCode, data)
	}
	out, err := interpret.Interpret[S, F](resp.StatusCode, resp.Body, t.DecodeSuccess, decodeFailure)
	if err != nil {
		return err
	}
	if out.OK {
		err = t.HandleSuccess(r, out.Success)
	} else {
		err = t.HandleFailure(r, out.Failure)
	}
	if err != nil {
		return cmderr.From(err)
	}
	return nil
}

// send calls fn with the progress indicator running.
func (r *Runner) send(fn func() (*apiclient.Response, error)) (*apiclient.Response, error) {
	if r.Progress != nil {
		r.Progress.Start()
		defer r.Progress.Stop()
	}
	return fn()
}

func (r *Runner) out(format string, args ...any) error {
	if _, err := fmt.Fprintf(r.Out, format+"\n", args...); err != nil {
		return cmderr.Wrapf(err, "failed writing to output stream")
	}
	return nil
}

func (r *Runner) errln(format string, args ...any) error {
	if _, err := fmt.Fprintf(r.Err, format+"\n", args...); err != nil {
		return cmderr.Wrapf(err, "failed writing to error stream")
	}
	return nil
}

// reportErrors prints every API error message on its own line and
// returns the summarizing error.
func (r *Runner) reportErrors(errs []apidoc.Error) error {
	for _, e := range errs {
		if err := r.errln("%s", e.Message); err != nil {
			return err
		}
	}
	return cmderr.Newf("got error response from server")
}

// readInput reads the whole file at path.
func readInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cmderr.Wrapf(err, "failed to open input at `%s`", path)
	}
	defer func() { _ = f.Close() }()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, cmderr.Wrapf(err, "failed reading from file at `%s`", path)
	}
	return data, nil
}

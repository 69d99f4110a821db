package task

import (
	"context"
	"net/http"

	"apidoc.me/cli/internal/apiclient"
	"apidoc.me/cli/internal/interpret"
	"apidoc.me/pkg/apidoc"
	"apidoc.me/pkg/cmderr"
)

// Check validates the specification document at Path.
//
// The validations endpoint answers with a Validation on success and with
// 409 Conflict; whether the input is valid is decided by the Valid field.
// Any other failure status carries the usual error list.
type Check struct {
	Path string
}

// checkFailure holds exactly one of a Validation (409) or an error list.
type checkFailure struct {
	Validation *apidoc.Validation
	Errors     []apidoc.Error
}

var decodeValidation = interpret.JSON[apidoc.Validation]("valid")

func (c Check) Send(ctx context.Context, r *Runner) (*apiclient.Response, error) {
	input, err := readInput(c.Path)
	if err != nil {
		return nil, err
	}
	return r.send(func() (*apiclient.Response, error) {
		return r.Transport.PostValidation(ctx, input)
	})
}

func (Check) DecodeSuccess(data []byte) (apidoc.Validation, error) { return decodeValidation(data) }

func (Check) DecodeFailure(status int, data []byte) (checkFailure, error) {
	if status == http.StatusConflict {
		v, err := decodeValidation(data)
		return checkFailure{Validation: &v}, err
	}
	errs, err := decodeErrors(data)
	return checkFailure{Errors: errs}, err
}

func (Check) HandleSuccess(r *Runner, v apidoc.Validation) error { return r.reportValidation(v) }

func (Check) HandleFailure(r *Runner, f checkFailure) error {
	if f.Validation != nil {
		return r.reportValidation(*f.Validation)
	}
	return r.reportErrors(f.Errors)
}

func (r *Runner) reportValidation(v apidoc.Validation) error {
	if v.Valid {
		return nil
	}
	for _, msg := range v.Errors {
		if err := r.errln("%s", msg); err != nil {
			return err
		}
	}
	return cmderr.Newf("input invalid")
}

// Check runs the check command.
func (r *Runner) Check(ctx context.Context, path string) error {
	return Run[apidoc.Validation, checkFailure](ctx, r, Check{Path: path})
}

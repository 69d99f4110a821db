// Package interpret decodes API responses.
//
// The API uses one JSON document for two different outcomes: the expected
// record on success, and an error payload otherwise. Only the HTTP status
// tells them apart, so the caller supplies a decoder for each and the status
// class picks which one runs.
package interpret

import (
	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	jsoniter "github.com/json-iterator/go"

	"apidoc.me/pkg/cmderr"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decoder decodes a JSON document into a T.
type Decoder[T any] func(data []byte) (T, error)

// JSON returns a Decoder that unmarshals into a T and requires the given
// top-level keys to be present.
func JSON[T any](required ...string) Decoder[T] {
	return func(data []byte) (T, error) {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return v, err
		}
		for _, key := range required {
			if json.Get(data, key).ValueType() == jsoniter.InvalidValue {
				return v, errors.Newf("missing required field %q", key)
			}
		}
		return v, nil
	}
}

// Outcome is either the success or the failure payload of a response.
type Outcome[S, F any] struct {
	OK      bool
	Success S
	Failure F
}

// Success reports whether status is a 2xx status code.
func Success(status int) bool {
	return status >= 200 && status < 300
}

// Interpret decodes body according to status.
//
// The body must be valid JSON. For a 2xx status it is decoded with
// decodeSuccess and a failure to do so is an error; the failure decoder is
// never tried. For any other status it is decoded with decodeFailure.
// Every error is a *cmderr.Error that includes the status and the raw body.
func Interpret[S, F any](status int, body []byte, decodeSuccess Decoder[S], decodeFailure Decoder[F]) (Outcome[S, F], error) {
	var out Outcome[S, F]

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return out, cmderr.Newf("failed to parse HTTP response body as JSON (status was %d): %v; body: %s", status, err, body)
	}

	if Success(status) {
		s, err := decodeSuccess(body)
		if err != nil {
			return out, cmderr.Newf("unexpected response body for status %d: %v; body: %s", status, err, body)
		}
		out.OK, out.Success = true, s
		return out, nil
	}

	f, failureErr := decodeFailure(body)
	if failureErr != nil {
		var merr *multierror.Error
		if _, err := decodeSuccess(body); err != nil {
			merr = multierror.Append(merr, errors.Wrap(err, "as success payload"))
		} else {
			merr = multierror.Append(merr, errors.Newf("as success payload: decoded, but status %d is not a success", status))
		}
		merr = multierror.Append(merr, errors.Wrap(failureErr, "as failure payload"))
		merr.ErrorFormat = listFormat
		return out, cmderr.Newf("unable to decode response body (status was %d): %v; body: %s", status, merr, body)
	}
	out.Failure = f
	return out, nil
}

func listFormat(errs []error) string {
	s := ""
	for i, err := range errs {
		if i > 0 {
			s += ", "
		}
		s += err.Error()
	}
	return s
}

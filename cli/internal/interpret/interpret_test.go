package interpret

import (
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"

	"apidoc.me/pkg/apidoc"
	"apidoc.me/pkg/cmderr"
)

var (
	decodeCode   = JSON[apidoc.Code]("generator", "source")
	decodeErrors = JSON[[]apidoc.Error]()
)

func TestInterpretSuccess(t *testing.T) {
	c := qt.New(t)
	body := []byte(`{"generator":{"key":"go","name":"Go"},"source":"package main"}`)

	out, err := Interpret(200, body, decodeCode, decodeErrors)
	c.Assert(err, qt.IsNil)
	c.Assert(out.OK, qt.IsTrue)
	c.Assert(out.Success.Source, qt.Equals, "package main")
	c.Assert(out.Success.Generator.Key, qt.Equals, "go")
	c.Assert(out.Failure, qt.IsNil)
}

func TestInterpretSuccessDecodeFailure(t *testing.T) {
	c := qt.New(t)

	// A valid error list with a 2xx status must not be read as a failure.
	body := `[{"code":"x","message":"y"}]`
	_, err := Interpret(200, []byte(body), decodeCode, decodeErrors)
	c.Assert(err, qt.IsNotNil)
	_, ok := cmderr.As(err)
	c.Assert(ok, qt.IsTrue)
	c.Assert(strings.HasPrefix(err.Error(), "unexpected response body for status 200: "), qt.IsTrue)
	c.Assert(strings.HasSuffix(err.Error(), "; body: "+body), qt.IsTrue)

	// Missing required fields.
	_, err = Interpret(201, []byte(`{"generator":{}}`), decodeCode, decodeErrors)
	c.Assert(err, qt.ErrorMatches, `unexpected response body for status 201: missing required field "source"; body: \{"generator":\{\}\}`)
}

func TestInterpretFailure(t *testing.T) {
	c := qt.New(t)
	body := []byte(`[{"code":"validation_error","message":"version already exists"},{"code":"other","message":"second"}]`)

	out, err := Interpret(422, body, decodeCode, decodeErrors)
	c.Assert(err, qt.IsNil)
	c.Assert(out.OK, qt.IsFalse)
	c.Assert(out.Failure, qt.DeepEquals, []apidoc.Error{
		{Code: "validation_error", Message: "version already exists"},
		{Code: "other", Message: "second"},
	})
	c.Assert(out.Success, qt.CmpEquals(), apidoc.Code{})
}

func TestInterpretFailureDecodeFailure(t *testing.T) {
	c := qt.New(t)
	body := `{"message":"not found"}`

	_, err := Interpret(404, []byte(body), decodeCode, decodeErrors)
	c.Assert(err, qt.IsNotNil)
	msg := err.Error()
	c.Assert(strings.Contains(msg, "404"), qt.IsTrue)
	c.Assert(strings.Contains(msg, body), qt.IsTrue)
	c.Assert(strings.Contains(msg, `as success payload: missing required field "generator"`), qt.IsTrue, qt.Commentf("%s", msg))
	c.Assert(strings.Contains(msg, "as failure payload: "), qt.IsTrue, qt.Commentf("%s", msg))
}

func TestInterpretInvalidJSON(t *testing.T) {
	c := qt.New(t)
	for _, status := range []int{200, 500} {
		body := "<html>Internal Server Error</html>"
		_, err := Interpret(status, []byte(body), decodeCode, decodeErrors)
		c.Assert(err, qt.IsNotNil)
		msg := err.Error()
		c.Assert(strings.HasPrefix(msg, "failed to parse HTTP response body as JSON (status was "), qt.IsTrue)
		c.Assert(strings.Contains(msg, "status was "+strconv.Itoa(status)+")"), qt.IsTrue)
		c.Assert(strings.HasSuffix(msg, "; body: "+body), qt.IsTrue)
	}
}

func TestInterpretSameShapeBothBranches(t *testing.T) {
	c := qt.New(t)
	decodeValidation := JSON[apidoc.Validation]("valid")

	out, err := Interpret(409, []byte(`{"valid":false,"errors":["x","y"]}`), decodeValidation, decodeValidation)
	c.Assert(err, qt.IsNil)
	c.Assert(out.OK, qt.IsFalse)
	if diff := cmp.Diff(apidoc.Validation{Errors: []string{"x", "y"}}, out.Failure); diff != "" {
		c.Fatalf("unexpected failure payload (-want +got):\n%s", diff)
	}

	// Validity is carried by the document, not the status.
	out, err = Interpret(200, []byte(`{"valid":false,"errors":["x"]}`), decodeValidation, decodeValidation)
	c.Assert(err, qt.IsNil)
	c.Assert(out.OK, qt.IsTrue)
	c.Assert(out.Success.Valid, qt.IsFalse)
}

func TestJSONMissingField(t *testing.T) {
	c := qt.New(t)
	_, err := decodeCode([]byte(`{"source":"x"}`))
	c.Assert(err, qt.ErrorMatches, `missing required field "generator"`)
	c.Assert(errors.GetReportableStackTrace(err), qt.IsNotNil)

	_, err = decodeCode([]byte(`{"generator":{},"source":"x"}`))
	c.Assert(err, qt.IsNil)
}

func TestSuccess(t *testing.T) {
	c := qt.New(t)
	c.Assert(Success(200), qt.IsTrue)
	c.Assert(Success(204), qt.IsTrue)
	c.Assert(Success(299), qt.IsTrue)
	c.Assert(Success(199), qt.IsFalse)
	c.Assert(Success(300), qt.IsFalse)
	c.Assert(Success(422), qt.IsFalse)
}

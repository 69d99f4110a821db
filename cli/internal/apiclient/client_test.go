package apiclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"apidoc.me/pkg/apidoc"
)

type recordedRequest struct {
	Method      string
	Path        string
	Query       string
	User        string
	Password    string
	HasAuth     bool
	ContentType string
	UserAgent   string
	Body        string
}

func newServer(c *qt.C, status int, respBody string) (*httptest.Server, *recordedRequest) {
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)
		rec.Method = req.Method
		rec.Path = req.URL.EscapedPath()
		rec.Query = req.URL.RawQuery
		rec.User, rec.Password, rec.HasAuth = req.BasicAuth()
		rec.ContentType = req.Header.Get("Content-Type")
		rec.UserAgent = req.Header.Get("User-Agent")
		rec.Body = string(body)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	c.Cleanup(srv.Close)
	return srv, rec
}

func TestGetCode(t *testing.T) {
	c := qt.New(t)
	srv, rec := newServer(c, 200, `{"source":"package main"}`)

	client := New(srv.URL+"/", "abc", WithUserAgent("test-agent"))
	resp, err := client.GetCode(context.Background(), "acme", "widgets", "1.0.0", "go")
	c.Assert(err, qt.IsNil)
	c.Assert(resp.StatusCode, qt.Equals, 200)
	c.Assert(string(resp.Body), qt.Equals, `{"source":"package main"}`)

	c.Assert(*rec, qt.Equals, recordedRequest{
		Method:    "GET",
		Path:      "/acme/widgets/1.0.0/go",
		User:      "abc",
		HasAuth:   true,
		UserAgent: "test-agent",
	})
}

func TestPostValidation(t *testing.T) {
	c := qt.New(t)
	srv, rec := newServer(c, 409, `{"valid":false,"errors":["x"]}`)

	client := New(srv.URL, "abc")
	resp, err := client.PostValidation(context.Background(), []byte(`{"name":"widgets"}`))
	c.Assert(err, qt.IsNil)
	c.Assert(resp.StatusCode, qt.Equals, 409)
	c.Assert(resp.Status, qt.Equals, "409 Conflict")

	c.Assert(rec.Method, qt.Equals, "POST")
	c.Assert(rec.Path, qt.Equals, "/validations")
	c.Assert(rec.HasAuth, qt.IsFalse)
	c.Assert(rec.Body, qt.Equals, `{"name":"widgets"}`)
	c.Assert(strings.HasPrefix(rec.UserAgent, "apidoc-cli/"), qt.IsTrue)
}

func TestPathSegmentsEscaped(t *testing.T) {
	c := qt.New(t)
	srv, rec := newServer(c, 200, `{}`)
	client := New(srv.URL, "abc")

	_, err := client.PutVersion(context.Background(), "acme", "widgets", "1.0#beta", apidoc.VersionForm{})
	c.Assert(err, qt.IsNil)
	c.Assert(rec.Path, qt.Equals, "/acme/widgets/1.0%23beta")

	_, err = client.GetCode(context.Background(), "acme", "widgets", "1.0.0?x=1", "go")
	c.Assert(err, qt.IsNil)
	c.Assert(rec.Path, qt.Equals, "/acme/widgets/1.0.0%3Fx=1/go")
	c.Assert(rec.Query, qt.Equals, "")

	_, err = client.GetCode(context.Background(), "acme", "my app", "100%", "go/v2")
	c.Assert(err, qt.IsNil)
	c.Assert(rec.Path, qt.Equals, "/acme/my%20app/100%25/go%2Fv2")
}

func TestPutVersion(t *testing.T) {
	c := qt.New(t)
	srv, rec := newServer(c, 200, `{}`)

	vis := apidoc.VisibilityPublic
	form := apidoc.VersionForm{
		OriginalForm: apidoc.OriginalForm{Data: "widgets"},
		Visibility:   &vis,
	}
	client := New(srv.URL, "abc")
	_, err := client.PutVersion(context.Background(), "acme", "widgets", "2.0.0", form)
	c.Assert(err, qt.IsNil)

	c.Assert(rec.Method, qt.Equals, "PUT")
	c.Assert(rec.Path, qt.Equals, "/acme/widgets/2.0.0")
	c.Assert(rec.HasAuth, qt.IsTrue)
	c.Assert(rec.User, qt.Equals, "abc")
	c.Assert(rec.Password, qt.Equals, "")
	c.Assert(rec.ContentType, qt.Equals, "application/json")
	c.Assert(rec.Body, qt.Equals, `{"original_form":{"data":"widgets"},"visibility":"public"}`)
}

type failingDoer struct{ err error }

func (d failingDoer) Do(*http.Request) (*http.Response, error) { return nil, d.err }

func TestTransportError(t *testing.T) {
	c := qt.New(t)
	client := New("http://api.invalid", "abc", WithHTTPClient(failingDoer{err: io.ErrUnexpectedEOF}))
	_, err := client.GetCode(context.Background(), "acme", "widgets", "1.0.0", "go")
	c.Assert(err, qt.ErrorMatches, "GET /acme/widgets/1.0.0/go: unexpected EOF")
	c.Assert(err, qt.ErrorIs, io.ErrUnexpectedEOF)
}

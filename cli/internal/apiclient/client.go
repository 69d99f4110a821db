// Package apiclient issues requests against the apidoc API.
//
// The client does not interpret responses: it returns the status and the
// fully read body and leaves decoding to the caller.
package apiclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"

	"apidoc.me/internal/version"
	"apidoc.me/pkg/apidoc"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Doer sends an HTTP request. *http.Client implements it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response is a response from the API with its body read.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// Client is an apidoc API client.
type Client struct {
	baseURL   string
	token     string
	doer      Doer
	userAgent string
}

type Option func(*Client)

// WithHTTPClient sets the client used to send requests.
// The default is http.DefaultClient.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.doer = d }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New returns a client for the API at baseURL.
// The token is sent as the username of HTTP Basic credentials
// on authenticated calls.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		token:     token,
		doer:      http.DefaultClient,
		userAgent: version.UserAgent(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetCode fetches the code generated by the generator for a version.
func (c *Client) GetCode(ctx context.Context, org, app, version, generator string) (*Response, error) {
	path := escapePath(org, app, version, generator)
	return c.send(ctx, "GET", path, nil, "", true)
}

// PostValidation validates a specification document.
// The call is not authenticated.
func (c *Client) PostValidation(ctx context.Context, body []byte) (*Response, error) {
	return c.send(ctx, "POST", "/validations", body, "", false)
}

// PutVersion publishes a version of an application.
func (c *Client) PutVersion(ctx context.Context, org, app, version string, form apidoc.VersionForm) (*Response, error) {
	data, err := json.Marshal(form)
	if err != nil {
		return nil, errors.Wrap(err, "marshal request")
	}
	path := escapePath(org, app, version)
	return c.send(ctx, "PUT", path, data, "application/json", true)
}

// escapePath joins segments into an absolute path, escaping each one.
func escapePath(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

func (c *Client) send(ctx context.Context, method, path string, body []byte, contentType string, auth bool) (resp *Response, err error) {
	log.Trace().Int("bytes", len(body)).Msgf("->     %s %s", method, path)
	defer func() {
		if err != nil {
			log.Trace().Err(err).Msgf("<- ERR %s %s", method, path)
			err = errors.Wrapf(err, "%s %s", method, path)
		} else {
			log.Trace().Int("status", resp.StatusCode).Int("bytes", len(resp.Body)).Msgf("<- OK  %s %s", method, path)
		}
	}()

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if auth {
		req.SetBasicAuth(c.token, "")
	}

	httpResp, err := c.doer.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}
	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Body:       data,
	}, nil
}

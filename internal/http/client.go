// Package http implements the authenticated request dispatcher shared
// by every service client: one base URL, uniform header injection,
// JSON encoding, and uniform error classification across verbs.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/Nia-TN1012/nocoah-sub000/internal/auth"
	"github.com/Nia-TN1012/nocoah-sub000/internal/constants"
	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
)

// Client dispatches authenticated requests against one service base URL.
type Client struct {
	baseURL    string
	httpClient nocoah.HTTPDoer
	tokens     auth.TokenProvider
	logger     nocoah.Logger
	debug      bool
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger.
func WithLogger(logger nocoah.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient injects a shared transport. Every service client of one
// account should share a single instance to reuse connections.
func WithHTTPClient(httpClient nocoah.HTTPDoer) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithRetryConfig opts into a retrying transport for transient failures.
// Without it no request is ever retried.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		retryClient := retryablehttp.NewClient()
		retryClient.RetryMax = retryMax
		retryClient.RetryWaitMin = retryWaitMin
		retryClient.RetryWaitMax = retryWaitMax
		retryClient.Logger = nil

		c.httpClient = retryClient.StandardClient()
	}
}

// NewClient creates a dispatcher bound to one base URL. A nil tokens
// provider sends unauthenticated requests (identity service only).
func NewClient(baseURL string, tokens auth.TokenProvider, opts ...Option) *Client {
	client := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: constants.DefaultHTTPTimeout},
		tokens:     tokens,
		userAgent:  "nocoah-go",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Request describes one API call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	// Body is JSON-encoded when set.
	Body interface{}
	// RawBody is sent unmodified with ContentType; used for object
	// storage uploads. Body and RawBody are mutually exclusive.
	RawBody     io.Reader
	ContentType string
	// ErrorMessage, when set, replaces the classified message on a
	// failed response, verbatim.
	ErrorMessage string
}

// Response is the raw outcome of a call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Do performs the request and classifies the response: status < 400 is
// success, >= 400 returns both the response and an APIError carrying
// the status. The error shape is identical for every verb.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	resp, err := c.DoRaw(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return resp, c.classify(req, resp)
	}

	return resp, nil
}

// DoRaw performs the request without classifying the status; the caller
// interprets the raw response, including any error body.
func (c *Client) DoRaw(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	c.logRequest(req)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, nocoah.NewTransportError(fmt.Sprintf("%s %s", req.Method, req.Path), err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, nocoah.NewTransportError("reading response body", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	c.logResponse(resp)

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// GetStream downloads the path and feeds the body to handler chunk by
// chunk in arrival order. A handler error aborts the download and is
// wrapped into an APIError.
func (c *Client) GetStream(ctx context.Context, path string, handler func(chunk []byte) error) error {
	if handler == nil {
		return nocoah.ErrNilChunkHandler
	}

	req := &Request{Method: http.MethodGet, Path: path}

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return err
	}

	c.logRequest(req)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nocoah.NewTransportError(fmt.Sprintf("GET %s", path), err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(httpResp.Body)

		return c.classify(req, &Response{StatusCode: httpResp.StatusCode, Headers: httpResp.Header, Body: body})
	}

	buf := make([]byte, constants.StreamChunkSize)

	for {
		n, readErr := httpResp.Body.Read(buf)
		if n > 0 {
			handlerErr := handler(buf[:n])
			if handlerErr != nil {
				return nocoah.WrapAPIError("stream handler failed", httpResp.StatusCode, handlerErr)
			}
		}

		if readErr == io.EOF {
			return nil
		}

		if readErr != nil {
			return nocoah.NewTransportError("reading stream", readErr)
		}
	}
}

// buildRequest assembles the http.Request: URL, encoded body, and the
// uniform header set with caller values winning on conflict.
func (c *Client) buildRequest(ctx context.Context, req *Request) (*http.Request, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)

	switch {
	case req.RawBody != nil:
		body = req.RawBody
		contentType = req.ContentType
	case req.Body != nil:
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.tokens != nil {
		token, err := c.tokens.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}

		httpReq.Header.Set("X-Auth-Token", token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

// classify turns a >= 400 response into an APIError. The caller-supplied
// message wins; otherwise the vendor error envelope is consulted before
// falling back to a generic default.
func (c *Client) classify(req *Request, resp *Response) error {
	message := req.ErrorMessage
	if message == "" {
		message = parseErrorEnvelope(resp.Body)
	}

	if message == "" {
		message = fmt.Sprintf("%s %s failed", req.Method, req.Path)
	}

	return nocoah.NewAPIError(message, resp.StatusCode)
}

// envelopeKeys are the vendor error wrappers observed across the sibling
// services, checked in a fixed order.
var envelopeKeys = []string{
	"badRequest",
	"NeutronError",
	"itemNotFound",
	"conflictingRequest",
	"forbidden",
	"unauthorized",
	"computeFault",
	"error",
}

func parseErrorEnvelope(body []byte) string {
	var envelope map[string]struct {
		Message string `json:"message"`
	}

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return ""
	}

	for _, key := range envelopeKeys {
		if entry, ok := envelope[key]; ok && entry.Message != "" {
			return entry.Message
		}
	}

	return ""
}

func (c *Client) logRequest(req *Request) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    c.baseURL + req.Path,
	})
}

func (c *Client) logResponse(resp *Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status": resp.StatusCode,
		"size":   len(resp.Body),
	})
}

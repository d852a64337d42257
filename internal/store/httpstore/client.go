// Package httpstore implements store.ProjectStore and store.QuoteSource
// against the project service's REST API.
package httpstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"projectdeck/internal/jsonutil"
	"projectdeck/internal/project"
	"projectdeck/internal/store"
)

const tracerName = "projectdeck/httpstore"

// Compile-time contract assertions.
var (
	_ store.ProjectStore = (*Client)(nil)
	_ store.QuoteSource  = (*Client)(nil)
)

// Client talks to {BaseURL}/projects and {BaseURL}/motivation.
type Client struct {
	baseURL string
	http    *http.Client
	tracer  trace.Tracer
	logger  *zap.Logger
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	token      string
	timeout    time.Duration
	tp         trace.TracerProvider
	logger     *zap.Logger
	httpClient *http.Client
}

// WithToken sends token as a bearer credential on every request.
func WithToken(token string) Option {
	return func(o *clientOptions) { o.token = token }
}

// WithTimeout bounds each request, including reading the body.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithTracerProvider records a span per request.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *clientOptions) { o.tp = tp }
}

// WithLogger logs failed requests.
func WithLogger(l *zap.Logger) Option {
	return func(o *clientOptions) { o.logger = l }
}

// WithHTTPClient sets the base client; the bearer transport wraps its
// Transport.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = c }
}

// New creates a client for baseURL (e.g. https://host/api).
func New(baseURL string, opts ...Option) *Client {
	o := clientOptions{timeout: 10 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tp == nil {
		o.tp = noop.NewTracerProvider()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	base := &http.Client{}
	if o.httpClient != nil {
		cp := *o.httpClient
		base = &cp
	}
	hc := base
	if o.token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		hc = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: o.token,
			TokenType:   "Bearer",
		}))
	}
	hc.Timeout = o.timeout

	return &Client{
		baseURL: trimSlash(baseURL),
		http:    hc,
		tracer:  o.tp.Tracer(tracerName),
		logger:  o.logger,
	}
}

// ListProjects fetches GET /projects.
func (c *Client) ListProjects(ctx context.Context) ([]project.Project, error) {
	resp, err := c.do(ctx, "projects.list", http.MethodGet, "/projects", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return jsonutil.DecodeArrayAllowEmpty[project.Project](resp.Body, "decode projects")
}

// CreateProject posts in to /projects and returns the stored entity.
func (c *Client) CreateProject(ctx context.Context, in project.Input) (project.Project, error) {
	resp, err := c.do(ctx, "projects.create", http.MethodPost, "/projects", in)
	if err != nil {
		return project.Project{}, err
	}
	defer resp.Body.Close()
	p, err := jsonutil.Decode[project.Project](resp.Body, "decode created project")
	if err != nil {
		return project.Project{}, err
	}
	return p, nil
}

// UpdateProject puts in to /projects/{id}. The response body is ignored.
func (c *Client) UpdateProject(ctx context.Context, id int64, in project.Input) error {
	resp, err := c.do(ctx, "projects.update", http.MethodPut, projectPath(id), in)
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

// DeleteProject sends DELETE /projects/{id}.
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, "projects.delete", http.MethodDelete, projectPath(id), nil)
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

// FetchMotivation fetches GET /motivation.
func (c *Client) FetchMotivation(ctx context.Context) (project.Quote, error) {
	resp, err := c.do(ctx, "motivation.fetch", http.MethodGet, "/motivation", nil)
	if err != nil {
		return project.Quote{}, err
	}
	defer resp.Body.Close()
	return jsonutil.Decode[project.Quote](resp.Body, "decode motivation")
}

// do sends one request inside a span. Non-2xx responses are returned as
// *StatusError with the body already consumed.
func (c *Client) do(ctx context.Context, op, method, path string, body any) (*http.Response, error) {
	ctx, span := c.tracer.Start(ctx, op, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	requestID := uuid.NewString()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", path),
		attribute.String("request.id", requestID),
	)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, c.fail(span, op, requestID, fmt.Errorf("%s: encode body: %w", op, err))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, c.fail(span, op, requestID, fmt.Errorf("%s: build request: %w", op, err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(span, op, requestID, fmt.Errorf("%s: %w", op, err))
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		resp.Body.Close()
		return nil, c.fail(span, op, requestID, newStatusError(op, resp.StatusCode, data))
	}
	return resp, nil
}

func (c *Client) fail(span trace.Span, op, requestID string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	c.logger.Debug("store request failed",
		zap.String("op", op),
		zap.String("request_id", requestID),
		zap.Error(err),
	)
	return err
}

func projectPath(id int64) string {
	return "/projects/" + strconv.FormatInt(id, 10)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	resp.Body.Close()
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

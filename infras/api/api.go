package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"borrowdung/config"
	"borrowdung/infras/otel"
	"borrowdung/shared/constant"
	"borrowdung/shared/failure"

	"github.com/rs/zerolog/log"
)

// ErrUnauthenticated is returned when the booking API rejected the session's token.
// By the time a caller sees it the session has already been cleared.
var ErrUnauthenticated = errors.New("session expired, please log in again")

// RequestInterceptor may decorate every outgoing request.
type RequestInterceptor func(ctx context.Context, req *http.Request) error

// ResponseInterceptor sees every response before it is decoded. A non-nil
// error aborts decoding and is returned to the caller as is.
type ResponseInterceptor func(ctx context.Context, res *http.Response) error

// Interceptors are fixed at construction so every repository shares the same
// authentication behavior.
type Interceptors struct {
	Request  RequestInterceptor
	Response ResponseInterceptor
}

// Request describes one call against the booking API. Path is relative to the
// configured base URL, e.g. "/Rooms/3".
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

type Client interface {
	// Do executes req and decodes a JSON body into out when out is non-nil.
	// The response headers are returned on success.
	Do(ctx context.Context, req Request, out any) (http.Header, error)
}

type clientImpl struct {
	baseURL      string
	http         *http.Client
	interceptors Interceptors
	otel         otel.Otel
}

// NewHTTPClient returns the transport shared by every call to the booking API.
func NewHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{
		Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
	}
}

func New(cfg *config.Config, httpClient *http.Client, interceptors Interceptors, otel otel.Otel) Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &clientImpl{
		baseURL:      strings.TrimRight(cfg.API.BaseURL, "/"),
		http:         httpClient,
		interceptors: interceptors,
		otel:         otel,
	}
}

type errorBody struct {
	Message string `json:"message"`
	Title   string `json:"title"`
}

func (c *clientImpl) Do(ctx context.Context, req Request, out any) (header http.Header, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".API."+req.Method)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"http.method": req.Method,
		"http.path":   req.Path,
	})

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.interceptors.Request != nil {
		if err = c.interceptors.Request(ctx, httpReq); err != nil {
			return nil, err
		}
	}

	res, err := c.http.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("path", req.Path).Msg("failed to reach booking api")

		return nil, fmt.Errorf("failed to reach booking api: %w", err)
	}
	defer res.Body.Close()

	scope.SetAttribute("http.status_code", res.StatusCode)

	if c.interceptors.Response != nil {
		if err = c.interceptors.Response(ctx, res); err != nil {
			_, _ = io.Copy(io.Discard, res.Body)

			return nil, err
		}
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		err = failure.FromStatus(res.StatusCode, readMessage(res.Body))

		log.Error().Err(err).Int("status", res.StatusCode).Str("method", req.Method).Str("path", req.Path).Msg("booking api returned an error")

		return nil, err
	}

	if out != nil && res.StatusCode != http.StatusNoContent {
		if err = json.NewDecoder(res.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
			log.Error().Err(err).Str("path", req.Path).Msg("failed to decode booking api response")

			return nil, fmt.Errorf("failed to decode booking api response: %w", err)
		}
	}

	return res.Header, nil
}

func (c *clientImpl) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader

	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}

		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	if body != nil {
		httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	return httpReq, nil
}

// readMessage extracts the server's message from an error body. Plain text
// bodies are used verbatim.
func readMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 1<<16))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var parsed errorBody
	if json.Unmarshal(raw, &parsed) == nil {
		if parsed.Message != "" {
			return parsed.Message
		}

		return parsed.Title
	}

	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, "<") {
		return ""
	}

	return text
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/example/infobip-go/internal/logger"
	"github.com/example/infobip-go/internal/validation"
)

// Query is a validatable set of URL query parameters.
type Query interface {
	Values() url.Values
}

// Request describes one exchange. Path may contain {name} placeholders
// filled from PathParams; every parameter must be non-empty.
type Request struct {
	// Operation names the call in logs and metrics, e.g. "sms.send".
	Operation string

	Method     string
	Path       string
	PathParams map[string]string
	Query      Query

	// Body is validated and sent as JSON.
	Body any

	// Form is sent as multipart/form-data. Callers validate the source model.
	Form *Form
}

// Response pairs a decoded body with the status code it arrived with.
type Response[T any] struct {
	StatusCode int
	Body       T
}

// Do sends req and decodes a success body into T.
func Do[T any](ctx context.Context, c *Client, req Request) (*Response[T], error) {
	status, body, err := c.exchange(ctx, req)
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		c.logger.Warn().Str("operation", req.Operation).Int("status", status).Err(err).Msg("undecodable response body")
		return nil, &DecodeError{StatusCode: status, Body: TruncateRaw(string(body), DefaultRawBodyLimit), Err: err}
	}
	return &Response[T]{StatusCode: status, Body: out}, nil
}

// DoStatus sends req for operations whose success carries no body.
func DoStatus(ctx context.Context, c *Client, req Request) (int, error) {
	status, _, err := c.exchange(ctx, req)
	return status, err
}

func (req Request) validate() error {
	var violations []Violation

	names := make([]string, 0, len(req.PathParams))
	for name := range req.PathParams {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		violations = append(violations, validation.Var(name, strings.TrimSpace(req.PathParams[name]), "required")...)
	}

	for _, part := range []any{req.Query, req.Body} {
		if part == nil {
			continue
		}
		found, err := validation.Struct(part)
		if err != nil {
			return err
		}
		violations = append(violations, found...)
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func (req Request) expandPath() string {
	path := req.Path
	for name, value := range req.PathParams {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}
	return path
}

func (c *Client) newHTTPRequest(ctx context.Context, req Request, path string) (*http.Request, error) {
	endpoint := c.baseURL + path
	if req.Query != nil {
		if encoded := req.Query.Values().Encode(); encoded != "" {
			endpoint += "?" + encoded
		}
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.Form != nil:
		buf, ct, err := req.Form.encode()
		if err != nil {
			return nil, err
		}
		body, contentType = buf, ct
	case req.Body != nil:
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("infobip: encode %s body: %w", req.Operation, err)
		}
		body, contentType = bytes.NewReader(data), "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("infobip: new request: %w", err)
	}
	httpReq.Header.Set("Authorization", c.authorization)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	return httpReq, nil
}

// exchange returns the status and body of a 2xx response. Any other status
// becomes an *APIError, or a *DecodeError when the error body is malformed.
func (c *Client) exchange(ctx context.Context, req Request) (int, []byte, error) {
	if err := req.validate(); err != nil {
		return 0, nil, err
	}

	path := req.expandPath()
	httpReq, err := c.newHTTPRequest(ctx, req, path)
	if err != nil {
		return 0, nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.observe(req.Operation, outcomeTransportError, time.Since(start))
		c.logger.Warn().Str("operation", req.Operation).Str("method", req.Method).Str("path", path).Err(err).Msg("request failed")
		return 0, nil, wrapTransport(req.Method, path, err)
	}
	defer resp.Body.Close()

	body, err := c.readBody(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.observe(req.Operation, outcomeTransportError, elapsed)
		return resp.StatusCode, nil, wrapTransport(req.Method, path, err)
	}

	logger.DurationField(c.logger.Debug(), elapsed).
		Str("operation", req.Operation).
		Str("method", req.Method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("exchange completed")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.metrics.observe(req.Operation, outcomeSuccess, elapsed)
		return resp.StatusCode, body, nil
	}

	details, err := decodeErrorDetails(body)
	if err != nil {
		c.metrics.observe(req.Operation, outcomeDecodeError, elapsed)
		return resp.StatusCode, nil, &DecodeError{
			StatusCode: resp.StatusCode,
			Body:       TruncateRaw(string(body), DefaultRawBodyLimit),
			Err:        err,
		}
	}

	c.metrics.observe(req.Operation, outcomeAPIError, elapsed)
	c.logger.Warn().
		Str("operation", req.Operation).
		Int("status", resp.StatusCode).
		Str("code", details.RequestError.ServiceException.MessageID).
		Msg("remote api rejected request")
	return resp.StatusCode, nil, &APIError{
		StatusCode: resp.StatusCode,
		Details:    details,
		Body:       TruncateRaw(string(body), DefaultRawBodyLimit),
	}
}

// decodeErrorDetails accepts only bodies carrying the
// requestError.serviceException envelope.
func decodeErrorDetails(body []byte) (ErrorDetails, error) {
	var envelope struct {
		RequestError *struct {
			ServiceException *ServiceException `json:"serviceException"`
		} `json:"requestError"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ErrorDetails{}, err
	}
	if envelope.RequestError == nil || envelope.RequestError.ServiceException == nil {
		return ErrorDetails{}, errMissingEnvelope
	}
	return ErrorDetails{RequestError: RequestError{ServiceException: *envelope.RequestError.ServiceException}}, nil
}

func (c *Client) readBody(rc io.Reader) ([]byte, error) {
	if rc == nil {
		return nil, nil
	}
	data, err := io.ReadAll(io.LimitReader(rc, c.maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

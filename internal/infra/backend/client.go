// Package backend is the typed client of the Miorish REST API.
// Every repository method issues exactly one HTTP call: no retry, no caching.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	deliverycontext "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/context"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/session"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/infra/metrics"

	"go.uber.org/fx"
)

const (
	// TokenCookieName is the cookie the backend reads the admin token from.
	TokenCookieName = "token_middleware"

	maxResponseBytes = 10 << 20
)

// envelope is the response shape of every backend endpoint.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// result is what a call yields besides its decoded data.
type result struct {
	Message string
	Cookies []*http.Cookie
}

// request describes one backend call. Route is the path template used for
// metrics; Params fill its {placeholders} in order.
type request struct {
	Method string
	Route  string
	Params []string
	Query  url.Values
	Body   payload
}

// Client sends requests to the backend on behalf of the signed-in admin.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// ClientParams holds dependencies for Client, injected by Fx
type ClientParams struct {
	fx.In

	Config  *config.Config
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *slog.Logger
}

// NewClient creates the REST client from the backend section.
func NewClient(params ClientParams) *Client {
	return &Client{
		baseURL: strings.TrimRight(params.Config.Backend.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: params.Config.Backend.Timeout,
		},
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// do performs req and decodes the envelope data into out when out is non-nil.
func (c *Client) do(ctx context.Context, req request, out any) (*result, error) {
	path := expandRoute(req.Route, req.Params)
	target := c.baseURL + path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	if req.Body != nil {
		encoded, ct, err := req.Body.encode()
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode backend request")
		}
		body = bytes.NewReader(encoded)
		contentType = ct
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build backend request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}
	if token := session.AccessToken(ctx); token != "" {
		httpReq.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.ObserveBackendCall(req.Method, req.Route, 0, err, time.Since(start))

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrap(ctxErr, "backend request aborted")
		}

		logger.Warn("Backend unreachable",
			slog.String("method", req.Method),
			slog.String("route", req.Route),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrBackendUnavailable.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	c.metrics.ObserveBackendCall(req.Method, req.Route, resp.StatusCode, nil, time.Since(start))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, domainerrors.ErrBackendUnavailable.WithDetails(err.Error())
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := env.Message
		if message == "" {
			message = env.Error
		}

		logger.Info("Backend rejected request",
			slog.String("method", req.Method),
			slog.String("route", req.Route),
			slog.Int("status", resp.StatusCode),
			slog.String("message", message),
		)

		return nil, domainerrors.NewBackendError(resp.StatusCode, message)
	}

	// 204 and other bodiless successes carry no envelope.
	if len(bytes.TrimSpace(raw)) == 0 {
		return &result{Cookies: resp.Cookies()}, nil
	}

	if decodeErr != nil {
		return nil, domainerrors.ErrBackendResponse.WithDetails(decodeErr.Error())
	}

	if env.Success != nil && !*env.Success {
		message := env.Message
		if message == "" {
			message = env.Error
		}

		return nil, domainerrors.ErrBackendResponse.WithMessage(message)
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, domainerrors.ErrBackendResponse.WithDetails(err.Error())
		}
	}

	return &result{Message: env.Message, Cookies: resp.Cookies()}, nil
}

// mutate performs a state-changing call and returns the backend's message.
func (c *Client) mutate(ctx context.Context, req request) (string, error) {
	res, err := c.do(ctx, req, nil)
	if err != nil {
		return "", err
	}

	return res.Message, nil
}

// expandRoute substitutes {placeholders} in order with path-escaped params.
func expandRoute(route string, params []string) string {
	if len(params) == 0 {
		return route
	}

	var b strings.Builder
	b.Grow(len(route))

	next := 0
	for i := 0; i < len(route); i++ {
		if route[i] != '{' {
			b.WriteByte(route[i])

			continue
		}

		end := strings.IndexByte(route[i:], '}')
		if end < 0 || next >= len(params) {
			b.WriteString(route[i:])

			break
		}

		b.WriteString(url.PathEscape(params[next]))
		next++
		i += end
	}

	return b.String()
}

// listQuery converts list-view controls into backend query parameters.
func listQuery(page, limit int, search, status string) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", itoa(page))
	}
	if limit > 0 {
		q.Set("limit", itoa(limit))
	}
	if s := strings.TrimSpace(search); s != "" {
		q.Set("search", s)
	}
	if s := strings.TrimSpace(status); s != "" {
		q.Set("status", s)
	}

	return q
}

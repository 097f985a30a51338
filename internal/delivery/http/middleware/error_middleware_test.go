package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/response"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails string
		wantFields  map[string]string
	}{
		{
			name:        "domain error keeps its details",
			err:         domainerrors.ErrBannerLimitReached.WithDetails("weekly allows 1"),
			wantStatus:  http.StatusConflict,
			wantCode:    domainerrors.ErrBannerLimitReached.ErrorCode(),
			wantDetails: "weekly allows 1",
		},
		{
			name:        "wrapped validation error reports fields",
			err:         errors.Wrap(domainerrors.NewValidationError(map[string]string{"name": "Name is required"}), "create category"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    domainerrors.ErrValidationFailed.ErrorCode(),
			wantDetails: "name: Name is required",
			wantFields:  map[string]string{"name": "Name is required"},
		},
		{
			name:       "backend failure hides details",
			err:        domainerrors.NewBackendError(http.StatusInternalServerError, "db exploded"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "BACKEND_ERROR",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   domainerrors.ErrInternalError.ErrorCode(),
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/dashboard", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, tt.wantFields, body.Error.Fields)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/dashboard", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

func TestErrorMiddleware_Resolve(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	e.HTTPErrorHandler = m.HandleHTTPError
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/dashboard/banners", nil), rec)

	err := m.Resolve(func(echo.Context) error {
		return domainerrors.ErrBannerLimitReached
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.True(t, c.Response().Committed)
}

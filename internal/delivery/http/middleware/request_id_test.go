package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("reuses the caller's id", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
		rec := httptest.NewRecorder()

		var seen string
		err := m.Process(func(c echo.Context) error {
			seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

			return nil
		})(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, "req-123", seen)
		assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("generates an id when missing", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()

		err := m.Process(func(c echo.Context) error {
			assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

			return nil
		})(e.NewContext(httptest.NewRequest(http.MethodGet, "/dashboard", nil), rec))

		require.NoError(t, err)
		assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
	})
}

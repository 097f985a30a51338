package handler

import (
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/errors"

	"github.com/labstack/echo/v4"
)

const defaultMaxImageBytes = 5 * 1024 * 1024

// confirmRequest carries the typed confirmation of a destructive action.
// DELETE requests may send it as a query parameter.
type confirmRequest struct {
	Confirmation string `json:"confirmation" form:"confirmation" query:"confirmation"`
}

// idsRequest is the body of a bulk delete.
type idsRequest struct {
	IDs          []string `json:"ids" form:"ids"`
	Confirmation string   `json:"confirmation" form:"confirmation"`
}

func bindConfirmation(c echo.Context) (entity.Confirmation, error) {
	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return "", bindError(err)
	}

	return entity.Confirmation(req.Confirmation), nil
}

// bindError reports a malformed body or query as a validation failure.
func bindError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return domainerrors.ErrValidationFailed.WithDetails(msg)
		}
	}

	return domainerrors.ErrValidationFailed.WithDetails(err.Error())
}

func maxImageBytes(cfg *config.Config) int64 {
	if cfg != nil && cfg.Upload != nil && cfg.Upload.MaxImageBytes > 0 {
		return cfg.Upload.MaxImageBytes
	}

	return defaultMaxImageBytes
}

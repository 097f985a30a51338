package handler

import (
	"strconv"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/response"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
}

// DashboardHandler serves the overview page and the audit trail.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{dashboardUC: params.DashboardUC}
}

func (h *DashboardHandler) Overview(c echo.Context) error {
	overview, err := h.dashboardUC.Overview(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, overview)
}

// RecentDecisions lists the audit trail; ?limit= is capped by configuration.
func (h *DashboardHandler) RecentDecisions(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return domainerrors.NewValidationError(map[string]string{"limit": "Must be a positive number"})
		}
		limit = n
	}

	records, err := h.dashboardUC.RecentDecisions(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return response.OK(c, records)
}

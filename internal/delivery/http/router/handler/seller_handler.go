package handler

import (
	"net/http"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/response"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SellerHandlerParams holds dependencies for SellerHandler, injected by Fx.
type SellerHandlerParams struct {
	fx.In

	SellerUC usecase.SellerUsecase
}

// SellerHandler serves the seller directory and onboarding queue.
type SellerHandler struct {
	sellerUC usecase.SellerUsecase
}

// NewSellerHandler is the constructor for SellerHandler
func NewSellerHandler(params SellerHandlerParams) *SellerHandler {
	return &SellerHandler{sellerUC: params.SellerUC}
}

// StatusRequest is the body of a status change.
type StatusRequest struct {
	Status string `json:"status" form:"status"`
}

func (h *SellerHandler) ListSellers(c echo.Context) error {
	var query entity.ListQuery
	if err := c.Bind(&query); err != nil {
		return bindError(err)
	}

	page, err := h.sellerUC.ListSellers(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return response.OK(c, page)
}

func (h *SellerHandler) GetSeller(c echo.Context) error {
	seller, err := h.sellerUC.GetSeller(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, seller)
}

func (h *SellerHandler) UpdateSellerStatus(c echo.Context) error {
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	message, err := h.sellerUC.UpdateSellerStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, message)
}

func (h *SellerHandler) PendingSellers(c echo.Context) error {
	queue, err := h.sellerUC.PendingSellers(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, queue)
}

func (h *SellerHandler) ApproveSeller(c echo.Context) error {
	decision, err := h.sellerUC.ApproveSeller(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, decision.Queue, decision.Message)
}

func (h *SellerHandler) RejectSeller(c echo.Context) error {
	var req RejectRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	decision, err := h.sellerUC.RejectSeller(c.Request().Context(), c.Param("id"), req.Reason)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, decision.Queue, decision.Message)
}

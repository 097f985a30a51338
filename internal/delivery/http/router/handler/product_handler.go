package handler

import (
	"net/http"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/response"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

// ProductHandler serves the product catalogue and its approval queue.
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{productUC: params.ProductUC}
}

// RejectRequest is the body of a reject decision.
type RejectRequest struct {
	Reason string `json:"reason" form:"reason"`
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	var query entity.ListQuery
	if err := c.Bind(&query); err != nil {
		return bindError(err)
	}

	page, err := h.productUC.ListProducts(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return response.OK(c, page)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	confirmation, err := bindConfirmation(c)
	if err != nil {
		return err
	}

	message, err := h.productUC.DeleteProduct(c.Request().Context(), c.Param("id"), confirmation)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, message)
}

func (h *ProductHandler) PendingProducts(c echo.Context) error {
	queue, err := h.productUC.PendingProducts(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, queue)
}

// ApproveProduct answers with the backend message and the queue without the product.
func (h *ProductHandler) ApproveProduct(c echo.Context) error {
	decision, err := h.productUC.ApproveProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, decision.Queue, decision.Message)
}

func (h *ProductHandler) RejectProduct(c echo.Context) error {
	var req RejectRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	decision, err := h.productUC.RejectProduct(c.Request().Context(), c.Param("id"), req.Reason)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, decision.Queue, decision.Message)
}

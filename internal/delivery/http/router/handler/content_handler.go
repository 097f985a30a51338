package handler

import (
	"net/http"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/form"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/response"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	BannerUC    usecase.BannerUsecase
	BlogUC      usecase.BlogUsecase
	WarehouseUC usecase.WarehouseUsecase
	Config      *config.Config
}

// ContentHandler serves banners, blogs and warehouses.
type ContentHandler struct {
	bannerUC    usecase.BannerUsecase
	blogUC      usecase.BlogUsecase
	warehouseUC usecase.WarehouseUsecase
	maxImage    int64
}

// NewContentHandler is the constructor for ContentHandler
func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		bannerUC:    params.BannerUC,
		blogUC:      params.BlogUC,
		warehouseUC: params.WarehouseUC,
		maxImage:    maxImageBytes(params.Config),
	}
}

// BannerForm is the multipart banner form.
type BannerForm struct {
	Type  string `json:"type" form:"type"`
	Title string `json:"title" form:"title"`
}

// BlogForm is the multipart blog form.
type BlogForm struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

// BannerTabs returns one tab per banner type with its count and cap.
func (h *ContentHandler) BannerTabs(c echo.Context) error {
	tabs, err := h.bannerUC.Tabs(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, tabs)
}

func (h *ContentHandler) CreateBanner(c echo.Context) error {
	var req BannerForm
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	image, err := form.Image(c, "image", h.maxImage)
	if err != nil {
		return err
	}

	message, err := h.bannerUC.CreateBanner(c.Request().Context(), &entity.BannerDraft{
		Type:  entity.BannerType(req.Type),
		Title: req.Title,
		Image: image,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, nil, message)
}

func (h *ContentHandler) DeleteBanner(c echo.Context) error {
	confirmation, err := bindConfirmation(c)
	if err != nil {
		return err
	}

	message, err := h.bannerUC.DeleteBanner(c.Request().Context(), c.Param("id"), confirmation)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, message)
}

func (h *ContentHandler) ListBlogs(c echo.Context) error {
	var query entity.ListQuery
	if err := c.Bind(&query); err != nil {
		return bindError(err)
	}

	page, err := h.blogUC.ListBlogs(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return response.OK(c, page)
}

func (h *ContentHandler) GetBlog(c echo.Context) error {
	blog, err := h.blogUC.GetBlog(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, blog)
}

func (h *ContentHandler) CreateBlog(c echo.Context) error {
	draft, err := h.blogDraft(c)
	if err != nil {
		return err
	}

	message, err := h.blogUC.CreateBlog(c.Request().Context(), draft)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, nil, message)
}

func (h *ContentHandler) UpdateBlog(c echo.Context) error {
	draft, err := h.blogDraft(c)
	if err != nil {
		return err
	}

	message, err := h.blogUC.UpdateBlog(c.Request().Context(), c.Param("id"), draft)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, message)
}

func (h *ContentHandler) DeleteBlog(c echo.Context) error {
	confirmation, err := bindConfirmation(c)
	if err != nil {
		return err
	}

	message, err := h.blogUC.DeleteBlog(c.Request().Context(), c.Param("id"), confirmation)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, message)
}

func (h *ContentHandler) ListWarehouses(c echo.Context) error {
	warehouses, err := h.warehouseUC.ListWarehouses(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, warehouses)
}

func (h *ContentHandler) GetWarehouse(c echo.Context) error {
	warehouse, err := h.warehouseUC.GetWarehouse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, warehouse)
}

func (h *ContentHandler) CreateWarehouse(c echo.Context) error {
	var draft entity.WarehouseDraft
	if err := c.Bind(&draft); err != nil {
		return bindError(err)
	}

	message, err := h.warehouseUC.CreateWarehouse(c.Request().Context(), &draft)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, nil, message)
}

func (h *ContentHandler) UpdateWarehouse(c echo.Context) error {
	var draft entity.WarehouseDraft
	if err := c.Bind(&draft); err != nil {
		return bindError(err)
	}

	message, err := h.warehouseUC.UpdateWarehouse(c.Request().Context(), c.Param("id"), &draft)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, message)
}

func (h *ContentHandler) DeleteWarehouse(c echo.Context) error {
	confirmation, err := bindConfirmation(c)
	if err != nil {
		return err
	}

	message, err := h.warehouseUC.DeleteWarehouse(c.Request().Context(), c.Param("id"), confirmation)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, message)
}

func (h *ContentHandler) blogDraft(c echo.Context) (*entity.BlogDraft, error) {
	var req BlogForm
	if err := c.Bind(&req); err != nil {
		return nil, bindError(err)
	}

	image, err := form.Image(c, "image", h.maxImage)
	if err != nil {
		return nil, err
	}

	return &entity.BlogDraft{Title: req.Title, Description: req.Description, Image: image}, nil
}

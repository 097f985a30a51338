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

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	Config     *config.Config
}

// CategoryHandler serves categories and their subcategories.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	maxImage   int64
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		maxImage:   maxImageBytes(params.Config),
	}
}

// CategoryForm is the multipart category form; the image is a separate part.
type CategoryForm struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

// SubCategoryForm is the multipart subcategory form.
type SubCategoryForm struct {
	CategoryID  string `json:"category_id" form:"category_id"`
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUC.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, categories)
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	category, err := h.categoryUC.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, category)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	draft, err := h.categoryDraft(c)
	if err != nil {
		return err
	}

	message, err := h.categoryUC.CreateCategory(c.Request().Context(), draft)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, nil, message)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	draft, err := h.categoryDraft(c)
	if err != nil {
		return err
	}

	message, err := h.categoryUC.UpdateCategory(c.Request().Context(), c.Param("id"), draft)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, message)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	confirmation, err := bindConfirmation(c)
	if err != nil {
		return err
	}

	message, err := h.categoryUC.DeleteCategory(c.Request().Context(), c.Param("id"), confirmation)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, message)
}

func (h *CategoryHandler) BulkDeleteCategories(c echo.Context) error {
	var req idsRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	message, err := h.categoryUC.BulkDeleteCategories(c.Request().Context(), req.IDs, entity.Confirmation(req.Confirmation))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, message)
}

func (h *CategoryHandler) ListSubCategories(c echo.Context) error {
	subCategories, err := h.categoryUC.ListSubCategories(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, subCategories)
}

// CreateSubCategory takes the parent from the path.
func (h *CategoryHandler) CreateSubCategory(c echo.Context) error {
	draft, err := h.subCategoryDraft(c)
	if err != nil {
		return err
	}
	draft.CategoryID = c.Param("id")

	message, err := h.categoryUC.CreateSubCategory(c.Request().Context(), draft)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, nil, message)
}

func (h *CategoryHandler) UpdateSubCategory(c echo.Context) error {
	draft, err := h.subCategoryDraft(c)
	if err != nil {
		return err
	}

	message, err := h.categoryUC.UpdateSubCategory(c.Request().Context(), c.Param("id"), draft)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, message)
}

func (h *CategoryHandler) DeleteSubCategory(c echo.Context) error {
	confirmation, err := bindConfirmation(c)
	if err != nil {
		return err
	}

	message, err := h.categoryUC.DeleteSubCategory(c.Request().Context(), c.Param("id"), confirmation)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, message)
}

func (h *CategoryHandler) categoryDraft(c echo.Context) (*entity.CategoryDraft, error) {
	var req CategoryForm
	if err := c.Bind(&req); err != nil {
		return nil, bindError(err)
	}

	image, err := form.Image(c, "image", h.maxImage)
	if err != nil {
		return nil, err
	}

	return &entity.CategoryDraft{Name: req.Name, Description: req.Description, Image: image}, nil
}

func (h *CategoryHandler) subCategoryDraft(c echo.Context) (*entity.SubCategoryDraft, error) {
	var req SubCategoryForm
	if err := c.Bind(&req); err != nil {
		return nil, bindError(err)
	}

	image, err := form.Image(c, "image", h.maxImage)
	if err != nil {
		return nil, err
	}

	return &entity.SubCategoryDraft{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Image:       image,
	}, nil
}

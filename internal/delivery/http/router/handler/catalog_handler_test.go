package handler

import (
	"net/http"
	"testing"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	mockUC "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/mocks/usecase"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_ApproveProduct(t *testing.T) {
	productUC := mockUC.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{ProductUC: productUC})

	remaining := entity.NewPendingQueue([]*entity.Product{{ID: "p-2", Name: "Tea"}})
	productUC.EXPECT().ApproveProduct(mock.Anything, "p-1").Return(&usecase.Decision[*entity.Product]{
		Message: "Product approved successfully",
		Queue:   remaining,
	}, nil)

	c, rec := newJSONContext(http.MethodPost, "/dashboard/products/pending/p-1/approve", "")
	c.SetParamNames("id")
	c.SetParamValues("p-1")

	require.NoError(t, h.ApproveProduct(c))

	var queue entity.PendingQueue[*entity.Product]
	body := decodeResponse(t, rec, &queue)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product approved successfully", body.Message)
	assert.Equal(t, 1, queue.Count)
	require.Len(t, queue.Items, 1)
	assert.Equal(t, "p-2", queue.Items[0].ID)
}

func TestProductHandler_RejectProduct(t *testing.T) {
	productUC := mockUC.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{ProductUC: productUC})

	productUC.EXPECT().RejectProduct(mock.Anything, "p-1", "Blurry photos").Return(&usecase.Decision[*entity.Product]{
		Message: "Product rejected",
		Queue:   entity.NewPendingQueue[*entity.Product](nil),
	}, nil)

	c, rec := newJSONContext(http.MethodPost, "/dashboard/products/pending/p-1/reject", `{"reason":"Blurry photos"}`)
	c.SetParamNames("id")
	c.SetParamValues("p-1")

	require.NoError(t, h.RejectProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_DeleteProduct_ReadsConfirmationFromQuery(t *testing.T) {
	productUC := mockUC.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{ProductUC: productUC})

	productUC.EXPECT().
		DeleteProduct(mock.Anything, "p-1", entity.Confirmation("DELETE")).
		Return("Product deleted", nil)

	c, rec := newJSONContext(http.MethodDelete, "/dashboard/products/p-1?confirmation=DELETE", "")
	c.SetParamNames("id")
	c.SetParamValues("p-1")

	require.NoError(t, h.DeleteProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product deleted", decodeResponse(t, rec, nil).Message)
}

func TestSellerHandler_RejectSeller_PassesUsecaseError(t *testing.T) {
	sellerUC := mockUC.NewMockSellerUsecase(t)
	h := NewSellerHandler(SellerHandlerParams{SellerUC: sellerUC})

	sellerUC.EXPECT().RejectSeller(mock.Anything, "s-1", "short").Return(nil, domainerrors.ErrRejectionReasonTooShort)

	c, _ := newJSONContext(http.MethodPost, "/dashboard/sellers/pending/s-1/reject", `{"reason":"short"}`)
	c.SetParamNames("id")
	c.SetParamValues("s-1")

	err := h.RejectSeller(c)

	assert.True(t, errors.Is(err, domainerrors.ErrRejectionReasonTooShort))
}

func TestSellerHandler_UpdateSellerStatus(t *testing.T) {
	sellerUC := mockUC.NewMockSellerUsecase(t)
	h := NewSellerHandler(SellerHandlerParams{SellerUC: sellerUC})

	sellerUC.EXPECT().UpdateSellerStatus(mock.Anything, "s-1", "suspended").Return("Seller status updated", nil)

	c, rec := newJSONContext(http.MethodPatch, "/dashboard/sellers/s-1/status", `{"status":"suspended"}`)
	c.SetParamNames("id")
	c.SetParamValues("s-1")

	require.NoError(t, h.UpdateSellerStatus(c))
	assert.Equal(t, "Seller status updated", decodeResponse(t, rec, nil).Message)
}

func TestCategoryHandler_BulkDeleteCategories(t *testing.T) {
	categoryUC := mockUC.NewMockCategoryUsecase(t)
	h := NewCategoryHandler(CategoryHandlerParams{CategoryUC: categoryUC, Config: &config.Config{}})

	categoryUC.EXPECT().
		BulkDeleteCategories(mock.Anything, []string{"c-1", "c-2"}, entity.Confirmation("DELETE")).
		Return("Categories deleted", nil)

	c, rec := newJSONContext(http.MethodPost, "/dashboard/categories/bulk-delete", `{"ids":["c-1","c-2"],"confirmation":"DELETE"}`)

	require.NoError(t, h.BulkDeleteCategories(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCategoryHandler_CreateSubCategory_TakesParentFromPath(t *testing.T) {
	categoryUC := mockUC.NewMockCategoryUsecase(t)
	h := NewCategoryHandler(CategoryHandlerParams{CategoryUC: categoryUC, Config: &config.Config{}})

	categoryUC.EXPECT().
		CreateSubCategory(mock.Anything, mock.MatchedBy(func(draft *entity.SubCategoryDraft) bool {
			return draft.CategoryID == "c-1" && draft.Name == "Green tea" && draft.Image == nil
		})).
		Return("Subcategory created", nil)

	c, rec := newJSONContext(http.MethodPost, "/dashboard/categories/c-1/subcategories", `{"category_id":"other","name":"Green tea"}`)
	c.SetParamNames("id")
	c.SetParamValues("c-1")

	require.NoError(t, h.CreateSubCategory(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

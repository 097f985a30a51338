package impl

import (
	"context"
	"testing"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	mockRepo "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBlogService_CreateAndUpdate(t *testing.T) {
	rec := createTestRecorder(t)
	blogRepo := mockRepo.NewMockBlogRepository(t)
	svc := NewBlogService(blogRepo, rec.recorder, testValidator, newTestConfig())
	ctx := context.Background()

	_, err := svc.CreateBlog(ctx, &entity.BlogDraft{Title: "Spring edit", Description: "New arrivals"})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, map[string]string{"image": "Please select an image"}, validationErr.Fields())

	blogRepo.EXPECT().CreateBlog(ctx, mock.AnythingOfType("*entity.BlogDraft")).Return("Blog created", nil).Once()
	blogRepo.EXPECT().UpdateBlog(ctx, "b1", mock.AnythingOfType("*entity.BlogDraft")).Return("Blog updated", nil).Once()

	message, err := svc.CreateBlog(ctx, &entity.BlogDraft{Title: "Spring edit", Description: "New arrivals", Image: pngUpload()})
	require.NoError(t, err)
	assert.Equal(t, "Blog created", message)

	message, err = svc.UpdateBlog(ctx, "b1", &entity.BlogDraft{Title: "Spring edit", Description: "Updated"})
	require.NoError(t, err)
	assert.Equal(t, "Blog updated", message)
}

func TestBlogService_DeleteBlog(t *testing.T) {
	rec := createTestRecorder(t)
	blogRepo := mockRepo.NewMockBlogRepository(t)
	svc := NewBlogService(blogRepo, rec.recorder, testValidator, newTestConfig())
	ctx := context.Background()

	blogRepo.EXPECT().DeleteBlog(ctx, "b1").Return("", domainerrors.NewBackendError(404, "Blog not found")).Once()
	rec.expectFailed(entity.SubjectBlog, entity.ActionDelete)

	_, err := svc.DeleteBlog(ctx, "b1", "DELETE")

	var backendErr *domainerrors.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "Blog not found", backendErr.Message())
}

func TestWarehouseService(t *testing.T) {
	rec := createTestRecorder(t)
	warehouseRepo := mockRepo.NewMockWarehouseRepository(t)
	svc := NewWarehouseService(warehouseRepo, rec.recorder, testValidator)
	ctx := context.Background()

	_, err := svc.CreateWarehouse(ctx, &entity.WarehouseDraft{Name: "North hub", City: "  "})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "address")
	assert.Contains(t, validationErr.Fields(), "city")
	assert.Contains(t, validationErr.Fields(), "country")

	draft := &entity.WarehouseDraft{Name: "North hub", Address: "1 Dock Rd", City: "Leeds", Country: "UK"}
	warehouseRepo.EXPECT().UpdateWarehouse(ctx, "w1", draft).Return("Warehouse updated", nil).Once()
	warehouseRepo.EXPECT().DeleteWarehouse(ctx, "w1").Return("Warehouse deleted", nil).Once()
	rec.expectRecorded(entity.SubjectWarehouse, entity.ActionDelete, "w1", "")

	_, err = svc.UpdateWarehouse(ctx, "w1", draft)
	require.NoError(t, err)

	_, err = svc.DeleteWarehouse(ctx, "w1", "Delete")
	require.NoError(t, err)
}

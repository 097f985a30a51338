package impl

import (
	"context"
	"testing"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	mockRepo "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/mocks/repository"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	recorderFixtures
	service      usecase.CategoryUsecase
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	rec := createTestRecorder(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	return categoryServiceFixtures{
		recorderFixtures: rec,
		service:          NewCategoryService(categoryRepo, rec.recorder, testValidator, newTestConfig()),
		categoryRepo:     categoryRepo,
	}
}

func TestCategoryService_CreateCategory_ReportsEveryMissingField(t *testing.T) {
	fx := createTestCategoryService(t)

	_, err := fx.service.CreateCategory(context.Background(), &entity.CategoryDraft{Name: "   "})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "This field is required", validationErr.Fields()["name"])
	assert.Equal(t, "Please select an image", validationErr.Fields()["image"])
}

func TestCategoryService_CreateCategory_ImageRules(t *testing.T) {
	t.Run("not an image", func(t *testing.T) {
		fx := createTestCategoryService(t)
		draft := &entity.CategoryDraft{
			Name:  "Lamps",
			Image: &entity.ImageUpload{Filename: "notes.pdf", ContentType: "application/pdf", Data: []byte("%PDF")},
		}

		_, err := fx.service.CreateCategory(context.Background(), draft)
		assert.ErrorIs(t, err, domainerrors.ErrImageInvalidType)
	})

	t.Run("too large", func(t *testing.T) {
		fx := createTestCategoryService(t)
		draft := &entity.CategoryDraft{
			Name:  "Lamps",
			Image: &entity.ImageUpload{Filename: "big.png", ContentType: "image/png", Data: make([]byte, 2048)},
		}

		_, err := fx.service.CreateCategory(context.Background(), draft)
		assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)
	})

	t.Run("bad image on an invalid form is a field error", func(t *testing.T) {
		fx := createTestCategoryService(t)
		draft := &entity.CategoryDraft{
			Image: &entity.ImageUpload{Filename: "notes.pdf", ContentType: "application/pdf", Data: []byte("%PDF")},
		}

		_, err := fx.service.CreateCategory(context.Background(), draft)

		var validationErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields(), "name")
		assert.Equal(t, domainerrors.ErrImageInvalidType.Message(), validationErr.Fields()["image"])
	})
}

func TestCategoryService_CreateCategory(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		CreateCategory(ctx, mock.MatchedBy(func(d *entity.CategoryDraft) bool {
			return d.Name == "Lamps" && d.Description == "Desk and floor"
		})).
		Return("Category created", nil).
		Once()

	message, err := fx.service.CreateCategory(ctx, &entity.CategoryDraft{
		Name:        " Lamps ",
		Description: "Desk and floor ",
		Image:       pngUpload(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Category created", message)
}

func TestCategoryService_UpdateCategory_KeepsImageWhenOmitted(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		UpdateCategory(ctx, "c1", mock.MatchedBy(func(d *entity.CategoryDraft) bool {
			return d.Image == nil
		})).
		Return("Category updated", nil).
		Once()

	_, err := fx.service.UpdateCategory(ctx, "c1", &entity.CategoryDraft{Name: "Lamps"})
	require.NoError(t, err)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	t.Run("unconfirmed", func(t *testing.T) {
		fx := createTestCategoryService(t)

		_, err := fx.service.DeleteCategory(context.Background(), "c1", "Delete ")
		assert.ErrorIs(t, err, domainerrors.ErrConfirmationRequired)
	})

	t.Run("confirmed", func(t *testing.T) {
		fx := createTestCategoryService(t)
		ctx := context.Background()

		fx.categoryRepo.EXPECT().DeleteCategory(ctx, "c1").Return("Category deleted", nil).Once()
		fx.expectRecorded(entity.SubjectCategory, entity.ActionDelete, "c1", "")

		message, err := fx.service.DeleteCategory(ctx, "c1", "Delete")
		require.NoError(t, err)
		assert.Equal(t, "Category deleted", message)
	})
}

func TestCategoryService_BulkDeleteCategories(t *testing.T) {
	t.Run("records every id once", func(t *testing.T) {
		fx := createTestCategoryService(t)
		ctx := context.Background()

		fx.categoryRepo.EXPECT().BulkDeleteCategories(ctx, []string{"c1", "c2"}).Return("2 categories deleted", nil).Once()
		fx.observer.EXPECT().ObserveDecision("category", "delete", nil).Return().Once()
		fx.auditRepo.EXPECT().Record(ctx, mock.AnythingOfType("*entity.ModerationRecord")).Return(nil).Twice()
		fx.publisher.EXPECT().PublishModerationEvent(ctx, mock.Anything).Return(nil).Twice()

		message, err := fx.service.BulkDeleteCategories(ctx, []string{" c1", "c2", "", "c1"}, "DELETE")
		require.NoError(t, err)
		assert.Equal(t, "2 categories deleted", message)
	})

	t.Run("nothing selected", func(t *testing.T) {
		fx := createTestCategoryService(t)

		_, err := fx.service.BulkDeleteCategories(context.Background(), []string{" ", ""}, "DELETE")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unconfirmed", func(t *testing.T) {
		fx := createTestCategoryService(t)

		_, err := fx.service.BulkDeleteCategories(context.Background(), []string{"c1"}, "")
		assert.ErrorIs(t, err, domainerrors.ErrConfirmationRequired)
	})
}

func TestCategoryService_SubCategories(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	_, err := fx.service.CreateSubCategory(ctx, &entity.SubCategoryDraft{Name: "Desk lamps", Image: pngUpload()})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "category_id")

	fx.categoryRepo.EXPECT().DeleteSubCategory(ctx, "sc1").Return("Subcategory deleted", nil).Once()
	fx.expectRecorded(entity.SubjectSubCategory, entity.ActionDelete, "sc1", "")

	_, err = fx.service.DeleteSubCategory(ctx, "sc1", "DELETE")
	require.NoError(t, err)
}

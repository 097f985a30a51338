package impl

import (
	"context"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/repository"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/util"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/validation"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
	recorder     *ModerationRecorder
	validator    *validation.Validator
	images       imageRules
}

// NewCategoryService creates a new category service instance
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	recorder *ModerationRecorder,
	validator *validation.Validator,
	cfg *config.Config,
) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: categoryRepo,
		recorder:     recorder,
		validator:    validator,
		images:       newImageRules(cfg),
	}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return s.categoryRepo.ListCategories(ctx)
}

func (s *categoryService) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	return s.categoryRepo.GetCategory(ctx, id)
}

func (s *categoryService) CreateCategory(ctx context.Context, draft *entity.CategoryDraft) (string, error) {
	if err := s.checkCategoryDraft(draft, true); err != nil {
		return "", err
	}

	return s.categoryRepo.CreateCategory(ctx, draft)
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, draft *entity.CategoryDraft) (string, error) {
	if err := s.checkCategoryDraft(draft, false); err != nil {
		return "", err
	}

	return s.categoryRepo.UpdateCategory(ctx, id, draft)
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string, confirmation entity.Confirmation) (string, error) {
	if err := requireConfirmation(confirmation); err != nil {
		return "", err
	}

	return s.recorder.mutateAndRecord(ctx, entity.SubjectCategory, id, entity.ActionDelete, "", func(ctx context.Context) (string, error) {
		return s.categoryRepo.DeleteCategory(ctx, id)
	})
}

func (s *categoryService) BulkDeleteCategories(ctx context.Context, ids []string, confirmation entity.Confirmation) (string, error) {
	if err := requireConfirmation(confirmation); err != nil {
		return "", err
	}

	ids = util.CompactIDs(ids)
	if len(ids) == 0 {
		return "", domainerrors.NewValidationError(map[string]string{"ids": "Select at least one category"})
	}

	message, err := s.categoryRepo.BulkDeleteCategories(ctx, ids)
	s.recorder.observe(entity.SubjectCategory, entity.ActionDelete, err)
	if err != nil {
		return "", err
	}

	for _, id := range ids {
		s.recorder.record(ctx, entity.SubjectCategory, id, entity.ActionDelete, "bulk delete", message)
	}

	return message, nil
}

func (s *categoryService) ListSubCategories(ctx context.Context, categoryID string) ([]*entity.SubCategory, error) {
	return s.categoryRepo.ListSubCategories(ctx, categoryID)
}

func (s *categoryService) CreateSubCategory(ctx context.Context, draft *entity.SubCategoryDraft) (string, error) {
	if err := s.checkSubCategoryDraft(draft, true); err != nil {
		return "", err
	}

	return s.categoryRepo.CreateSubCategory(ctx, draft)
}

func (s *categoryService) UpdateSubCategory(ctx context.Context, id string, draft *entity.SubCategoryDraft) (string, error) {
	if err := s.checkSubCategoryDraft(draft, false); err != nil {
		return "", err
	}

	return s.categoryRepo.UpdateSubCategory(ctx, id, draft)
}

func (s *categoryService) DeleteSubCategory(ctx context.Context, id string, confirmation entity.Confirmation) (string, error) {
	if err := requireConfirmation(confirmation); err != nil {
		return "", err
	}

	return s.recorder.mutateAndRecord(ctx, entity.SubjectSubCategory, id, entity.ActionDelete, "", func(ctx context.Context) (string, error) {
		return s.categoryRepo.DeleteSubCategory(ctx, id)
	})
}

// checkCategoryDraft reports every missing field together; a missing image only matters on create.
func (s *categoryService) checkCategoryDraft(draft *entity.CategoryDraft, imageRequired bool) error {
	draft.Name = trimmed(draft.Name)
	draft.Description = trimmed(draft.Description)

	return checkForm(s.validator.Struct(draft), s.images, draft.Image, imageRequired)
}

func (s *categoryService) checkSubCategoryDraft(draft *entity.SubCategoryDraft, imageRequired bool) error {
	draft.CategoryID = trimmed(draft.CategoryID)
	draft.Name = trimmed(draft.Name)
	draft.Description = trimmed(draft.Description)

	return checkForm(s.validator.Struct(draft), s.images, draft.Image, imageRequired)
}

// checkForm combines struct rule failures with the image rules. An image type or
// size problem on an otherwise valid form keeps its own error code.
func checkForm(structErr error, images imageRules, img *entity.ImageUpload, imageRequired bool) error {
	imageErr := images.check(img, imageRequired)
	if imageErr == nil {
		return structErr
	}

	var fieldErrs domainerrors.FieldErrors
	if errors.As(imageErr, &fieldErrs) {
		return mergeFieldErrors(structErr, fieldImage, fieldErrs.Fields()[fieldImage])
	}

	if structErr == nil {
		return imageErr
	}

	var appErr domainerrors.AppError
	if errors.As(imageErr, &appErr) {
		return mergeFieldErrors(structErr, fieldImage, appErr.Message())
	}

	return imageErr
}

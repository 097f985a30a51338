package impl

import (
	"context"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/repository"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/validation"
)

type blogService struct {
	blogRepo  repository.BlogRepository
	recorder  *ModerationRecorder
	validator *validation.Validator
	images    imageRules
}

// NewBlogService creates a new blog service instance
func NewBlogService(
	blogRepo repository.BlogRepository,
	recorder *ModerationRecorder,
	validator *validation.Validator,
	cfg *config.Config,
) usecase.BlogUsecase {
	return &blogService{
		blogRepo:  blogRepo,
		recorder:  recorder,
		validator: validator,
		images:    newImageRules(cfg),
	}
}

func (s *blogService) ListBlogs(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Blog], error) {
	if err := s.validator.Struct(&query); err != nil {
		return nil, err
	}

	return s.blogRepo.ListBlogs(ctx, query)
}

func (s *blogService) GetBlog(ctx context.Context, id string) (*entity.Blog, error) {
	return s.blogRepo.GetBlog(ctx, id)
}

func (s *blogService) CreateBlog(ctx context.Context, draft *entity.BlogDraft) (string, error) {
	if err := s.checkDraft(draft, true); err != nil {
		return "", err
	}

	return s.blogRepo.CreateBlog(ctx, draft)
}

func (s *blogService) UpdateBlog(ctx context.Context, id string, draft *entity.BlogDraft) (string, error) {
	if err := s.checkDraft(draft, false); err != nil {
		return "", err
	}

	return s.blogRepo.UpdateBlog(ctx, id, draft)
}

func (s *blogService) DeleteBlog(ctx context.Context, id string, confirmation entity.Confirmation) (string, error) {
	if err := requireConfirmation(confirmation); err != nil {
		return "", err
	}

	return s.recorder.mutateAndRecord(ctx, entity.SubjectBlog, id, entity.ActionDelete, "", func(ctx context.Context) (string, error) {
		return s.blogRepo.DeleteBlog(ctx, id)
	})
}

func (s *blogService) checkDraft(draft *entity.BlogDraft, imageRequired bool) error {
	draft.Title = trimmed(draft.Title)
	draft.Description = trimmed(draft.Description)

	return checkForm(s.validator.Struct(draft), s.images, draft.Image, imageRequired)
}

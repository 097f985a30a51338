package impl

import (
	"context"
	"strconv"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/repository"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/validation"
)

type bannerService struct {
	bannerRepo repository.BannerRepository
	recorder   *ModerationRecorder
	validator  *validation.Validator
	images     imageRules
	limits     map[entity.BannerType]int
}

// NewBannerService creates a new banner service instance
func NewBannerService(
	bannerRepo repository.BannerRepository,
	recorder *ModerationRecorder,
	validator *validation.Validator,
	cfg *config.Config,
) usecase.BannerUsecase {
	return &bannerService{
		bannerRepo: bannerRepo,
		recorder:   recorder,
		validator:  validator,
		images:     newImageRules(cfg),
		limits:     bannerLimits(cfg),
	}
}

func bannerLimits(cfg *config.Config) map[entity.BannerType]int {
	configured := config.DefaultBannerLimits()
	if cfg != nil && cfg.Banners != nil {
		for k, v := range cfg.Banners.Limits {
			configured[k] = v
		}
	}

	limits := make(map[entity.BannerType]int, len(configured))
	for k, v := range configured {
		if t, ok := entity.ParseBannerType(k); ok {
			limits[t] = v
		}
	}

	return limits
}

// Tabs fetches every banner once and splits them by type.
func (s *bannerService) Tabs(ctx context.Context) ([]*entity.BannerTab, error) {
	banners, err := s.bannerRepo.ListBanners(ctx, "")
	if err != nil {
		return nil, err
	}

	byType := make(map[entity.BannerType][]*entity.Banner)
	for _, b := range banners {
		byType[b.Type] = append(byType[b.Type], b)
	}

	types := entity.BannerTypes()
	tabs := make([]*entity.BannerTab, 0, len(types))
	for _, t := range types {
		tabs = append(tabs, entity.NewBannerTab(t, byType[t], s.limits[t]))
	}

	return tabs, nil
}

func (s *bannerService) CreateBanner(ctx context.Context, draft *entity.BannerDraft) (string, error) {
	draft.Title = trimmed(draft.Title)
	bannerType, ok := entity.ParseBannerType(string(draft.Type))
	draft.Type = bannerType

	err := checkForm(s.validator.Struct(draft), s.images, draft.Image, true)
	if !ok && draft.Type != "" {
		err = mergeFieldErrors(err, "type", "Unknown banner type")
	}
	if err != nil {
		return "", err
	}

	existing, err := s.bannerRepo.ListBanners(ctx, bannerType)
	if err != nil {
		return "", err
	}

	limit := s.limits[bannerType]
	if len(existing) >= limit {
		return "", domainerrors.ErrBannerLimitReached.
			WithDetails(string(bannerType) + " allows " + strconv.Itoa(limit))
	}

	return s.bannerRepo.CreateBanner(ctx, draft)
}

func (s *bannerService) DeleteBanner(ctx context.Context, id string, confirmation entity.Confirmation) (string, error) {
	if err := requireConfirmation(confirmation); err != nil {
		return "", err
	}

	return s.recorder.mutateAndRecord(ctx, entity.SubjectBanner, id, entity.ActionDelete, "", func(ctx context.Context) (string, error) {
		return s.bannerRepo.DeleteBanner(ctx, id)
	})
}

package impl

import (
	"context"
	"testing"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	mockRepo "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/mocks/repository"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bannerServiceFixtures holds all test dependencies for banner service tests.
type bannerServiceFixtures struct {
	recorderFixtures
	service    usecase.BannerUsecase
	bannerRepo *mockRepo.MockBannerRepository
}

func createTestBannerService(t *testing.T, cfg *config.Config) bannerServiceFixtures {
	rec := createTestRecorder(t)
	bannerRepo := mockRepo.NewMockBannerRepository(t)

	return bannerServiceFixtures{
		recorderFixtures: rec,
		service:          NewBannerService(bannerRepo, rec.recorder, testValidator, cfg),
		bannerRepo:       bannerRepo,
	}
}

func banners(bannerType entity.BannerType, n int) []*entity.Banner {
	out := make([]*entity.Banner, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &entity.Banner{ID: string(bannerType) + "-" + string(rune('a'+i)), Type: bannerType})
	}

	return out
}

func TestBannerService_Tabs(t *testing.T) {
	fx := createTestBannerService(t, newTestConfig())
	ctx := context.Background()

	all := append(banners(entity.BannerHomepage, 3), banners(entity.BannerBrand, 2)...)
	fx.bannerRepo.EXPECT().ListBanners(ctx, entity.BannerType("")).Return(all, nil).Once()

	tabs, err := fx.service.Tabs(ctx)
	require.NoError(t, err)
	require.Len(t, tabs, 4)

	assert.Equal(t, entity.BannerHomepage, tabs[0].Type)
	assert.Equal(t, 3, tabs[0].Count)
	assert.False(t, tabs[0].CanAdd, "homepage tab is full at 3")

	assert.Equal(t, entity.BannerWeekly, tabs[1].Type)
	assert.Empty(t, tabs[1].Banners)
	assert.True(t, tabs[1].CanAdd)

	assert.Equal(t, entity.BannerBrand, tabs[3].Type)
	assert.Equal(t, 2, tabs[3].Count)
	assert.Equal(t, 10, tabs[3].Limit)
}

func TestBannerService_CreateBanner_LimitReached(t *testing.T) {
	cfg := newTestConfig()
	cfg.Banners.Limits["weekly"] = 1
	fx := createTestBannerService(t, cfg)
	ctx := context.Background()

	fx.bannerRepo.EXPECT().ListBanners(ctx, entity.BannerWeekly).Return(banners(entity.BannerWeekly, 1), nil).Once()

	_, err := fx.service.CreateBanner(ctx, &entity.BannerDraft{Type: "Weekly", Title: "Deals", Image: pngUpload()})
	assert.ErrorIs(t, err, domainerrors.ErrBannerLimitReached)
	fx.bannerRepo.AssertNotCalled(t, "CreateBanner", mock.Anything, mock.Anything)
}

func TestBannerService_CreateBanner(t *testing.T) {
	fx := createTestBannerService(t, newTestConfig())
	ctx := context.Background()

	fx.bannerRepo.EXPECT().ListBanners(ctx, entity.BannerPopular).Return(banners(entity.BannerPopular, 3), nil).Once()
	fx.bannerRepo.EXPECT().
		CreateBanner(ctx, mock.MatchedBy(func(d *entity.BannerDraft) bool {
			return d.Type == entity.BannerPopular && d.Title == "Summer"
		})).
		Return("Banner created", nil).
		Once()

	message, err := fx.service.CreateBanner(ctx, &entity.BannerDraft{Type: " popular", Title: "Summer ", Image: pngUpload()})
	require.NoError(t, err)
	assert.Equal(t, "Banner created", message)
}

func TestBannerService_CreateBanner_Invalid(t *testing.T) {
	fx := createTestBannerService(t, newTestConfig())

	_, err := fx.service.CreateBanner(context.Background(), &entity.BannerDraft{Type: "sidebar"})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "type")
	assert.Contains(t, validationErr.Fields(), "title")
	assert.Contains(t, validationErr.Fields(), "image")
}

func TestBannerService_DeleteBanner(t *testing.T) {
	fx := createTestBannerService(t, newTestConfig())
	ctx := context.Background()

	_, err := fx.service.DeleteBanner(ctx, "b1", "")
	assert.ErrorIs(t, err, domainerrors.ErrConfirmationRequired)

	fx.bannerRepo.EXPECT().DeleteBanner(ctx, "b1").Return("Banner deleted", nil).Once()
	fx.expectRecorded(entity.SubjectBanner, entity.ActionDelete, "b1", "")

	message, err := fx.service.DeleteBanner(ctx, "b1", "Delete")
	require.NoError(t, err)
	assert.Equal(t, "Banner deleted", message)
}

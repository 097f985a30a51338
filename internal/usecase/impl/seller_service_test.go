package impl

import (
	"context"
	"testing"
	"time"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	mockRepo "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/mocks/repository"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sellerServiceFixtures holds all test dependencies for seller service tests.
type sellerServiceFixtures struct {
	recorderFixtures
	service    usecase.SellerUsecase
	sellerRepo *mockRepo.MockSellerRepository
}

func createTestSellerService(t *testing.T) sellerServiceFixtures {
	rec := createTestRecorder(t)
	sellerRepo := mockRepo.NewMockSellerRepository(t)

	return sellerServiceFixtures{
		recorderFixtures: rec,
		service:          NewSellerService(sellerRepo, rec.recorder, testValidator, newTestConfig()),
		sellerRepo:       sellerRepo,
	}
}

func pendingSellers(ids ...string) []*entity.Seller {
	out := make([]*entity.Seller, 0, len(ids))
	for _, id := range ids {
		out = append(out, &entity.Seller{ID: id, ShopName: "shop " + id})
	}

	return out
}

func TestSellerService_RejectSeller_ReasonTooShort(t *testing.T) {
	fx := createTestSellerService(t)

	for _, reason := range []string{"", "   ", "too short", "   123456789    "} {
		decision, err := fx.service.RejectSeller(context.Background(), "s1", reason)

		assert.Nil(t, decision)
		assert.ErrorIs(t, err, domainerrors.ErrRejectionReasonTooShort, "reason %q", reason)
	}

	fx.sellerRepo.AssertNotCalled(t, "ListPendingSellers")
	fx.sellerRepo.AssertNotCalled(t, "RejectSeller")
}

func TestSellerService_RejectSeller_MinimumLengthAccepted(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	fx.sellerRepo.EXPECT().ListPendingSellers(ctx).Return(pendingSellers("s1", "s2"), nil).Once()
	fx.sellerRepo.EXPECT().RejectSeller(mock.Anything, "s1", "1234567890").Return("Seller rejected", nil).Once()
	fx.expectRecorded(entity.SubjectSeller, entity.ActionReject, "s1", "1234567890")

	decision, err := fx.service.RejectSeller(ctx, "s1", "  1234567890  ")
	require.NoError(t, err)

	assert.Equal(t, "Seller rejected", decision.Message)
	assert.Equal(t, 1, decision.Queue.Count)
	assert.Equal(t, "s2", decision.Queue.Items[0].ID)
}

func TestSellerService_ApproveSeller(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	fx.sellerRepo.EXPECT().ListPendingSellers(ctx).Return(pendingSellers("s1"), nil).Once()
	fx.sellerRepo.EXPECT().ApproveSeller(mock.Anything, "s1").Return("Seller approved", nil).Once()
	fx.expectRecorded(entity.SubjectSeller, entity.ActionApprove, "s1", "")

	decision, err := fx.service.ApproveSeller(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, 0, decision.Queue.Count)
}

func TestSellerService_UpdateSellerStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		fx := createTestSellerService(t)

		_, err := fx.service.UpdateSellerStatus(context.Background(), "s1", "banned")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
		fx.sellerRepo.AssertNotCalled(t, "UpdateSellerStatus")
	})

	t.Run("suspended", func(t *testing.T) {
		fx := createTestSellerService(t)
		ctx := context.Background()

		fx.sellerRepo.EXPECT().UpdateSellerStatus(ctx, "s1", entity.SellerSuspended).Return("Status updated", nil).Once()
		fx.expectRecorded(entity.SubjectSeller, entity.ActionStatusChange, "s1", "suspended")

		message, err := fx.service.UpdateSellerStatus(ctx, "s1", " suspended ")
		require.NoError(t, err)
		assert.Equal(t, "Status updated", message)
	})
}

func TestSellerService_RejectSeller_CancelledCallerDoesNotFailSharedDecision(t *testing.T) {
	fx := createTestSellerService(t)
	const reason = "documents do not match the shop"

	listed := make(chan struct{}, 2)
	started := make(chan struct{})
	release := make(chan struct{})
	var backendCtxErr error

	fx.sellerRepo.EXPECT().
		ListPendingSellers(mock.Anything).
		RunAndReturn(func(context.Context) ([]*entity.Seller, error) {
			defer func() { listed <- struct{}{} }()
			return pendingSellers("s1", "s2"), nil
		}).
		Times(2)
	fx.sellerRepo.EXPECT().
		RejectSeller(mock.Anything, "s1", reason).
		RunAndReturn(func(ctx context.Context, _, _ string) (string, error) {
			close(started)
			<-release
			backendCtxErr = ctx.Err()
			return "Seller rejected", nil
		}).
		Once()
	fx.expectRecorded(entity.SubjectSeller, entity.ActionReject, "s1", reason)

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := fx.service.RejectSeller(ctxA, "s1", reason)
		errA <- err
	}()
	<-started

	type outcome struct {
		decision *usecase.Decision[*entity.Seller]
		err      error
	}
	resultB := make(chan outcome, 1)
	go func() {
		decision, err := fx.service.RejectSeller(context.Background(), "s1", reason)
		resultB <- outcome{decision: decision, err: err}
	}()
	<-listed
	<-listed
	time.Sleep(20 * time.Millisecond)

	cancelA()
	assert.ErrorIs(t, <-errA, context.Canceled)

	close(release)
	b := <-resultB
	require.NoError(t, b.err)
	assert.Equal(t, "Seller rejected", b.decision.Message)
	assert.Equal(t, 1, b.decision.Queue.Count)
	assert.NoError(t, backendCtxErr)
}

func TestSellerService_RejectSeller_DifferentReasonsAreNotCollapsed(t *testing.T) {
	fx := createTestSellerService(t)
	reasons := []string{"documents do not match the shop", "shop name impersonates a brand"}

	started := make(chan string, len(reasons))
	release := make(chan struct{})

	fx.sellerRepo.EXPECT().
		ListPendingSellers(mock.Anything).
		RunAndReturn(func(context.Context) ([]*entity.Seller, error) {
			return pendingSellers("s1"), nil
		}).
		Times(len(reasons))
	for _, reason := range reasons {
		fx.sellerRepo.EXPECT().
			RejectSeller(mock.Anything, "s1", reason).
			RunAndReturn(func(_ context.Context, _, reason string) (string, error) {
				started <- reason
				<-release
				return "Seller rejected", nil
			}).
			Once()
		fx.expectRecorded(entity.SubjectSeller, entity.ActionReject, "s1", reason)
	}

	errs := make(chan error, len(reasons))
	for _, reason := range reasons {
		go func() {
			_, err := fx.service.RejectSeller(context.Background(), "s1", reason)
			errs <- err
		}()
	}

	sent := make([]string, 0, len(reasons))
	for range reasons {
		select {
		case reason := <-started:
			sent = append(sent, reason)
		case <-time.After(2 * time.Second):
			t.Fatal("each distinct reason should reach the backend")
		}
	}
	close(release)

	for range reasons {
		require.NoError(t, <-errs)
	}
	assert.ElementsMatch(t, reasons, sent)
}

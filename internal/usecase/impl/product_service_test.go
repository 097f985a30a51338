package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	mockRepo "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/mocks/repository"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	recorderFixtures
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	rec := createTestRecorder(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	return productServiceFixtures{
		recorderFixtures: rec,
		service:          NewProductService(productRepo, rec.recorder, testValidator),
		productRepo:      productRepo,
	}
}

func pendingProducts(ids ...string) []*entity.Product {
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, &entity.Product{ID: id, Name: "product " + id, Status: entity.ApprovalPending})
	}

	return out
}

func TestProductService_ApproveProduct_RemovesExactlyOneItem(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().ListPendingProducts(ctx).Return(pendingProducts("p1", "p2", "p3"), nil).Once()
	fx.productRepo.EXPECT().ApproveProduct(mock.Anything, "p2").Return("Product approved", nil).Once()
	fx.expectRecorded(entity.SubjectProduct, entity.ActionApprove, "p2", "")

	decision, err := fx.service.ApproveProduct(ctx, "p2")
	require.NoError(t, err)

	assert.Equal(t, "Product approved", decision.Message)
	assert.Equal(t, 2, decision.Queue.Count)
	require.Len(t, decision.Queue.Items, 2)
	assert.Equal(t, "p1", decision.Queue.Items[0].ID)
	assert.Equal(t, "p3", decision.Queue.Items[1].ID)
}

func TestProductService_ApproveProduct_NotPending(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().ListPendingProducts(ctx).Return(pendingProducts("p1"), nil).Once()

	decision, err := fx.service.ApproveProduct(ctx, "p9")

	assert.Nil(t, decision)
	assert.ErrorIs(t, err, domainerrors.ErrPendingItemNotFound)
	fx.productRepo.AssertNotCalled(t, "ApproveProduct")
}

func TestProductService_ApproveProduct_BackendFailureKeepsQueue(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	backendErr := domainerrors.NewBackendError(500, "")

	fx.productRepo.EXPECT().ListPendingProducts(ctx).Return(pendingProducts("p1", "p2"), nil).Once()
	fx.productRepo.EXPECT().ApproveProduct(mock.Anything, "p1").Return("", backendErr).Once()
	fx.expectFailed(entity.SubjectProduct, entity.ActionApprove)

	decision, err := fx.service.ApproveProduct(ctx, "p1")

	assert.Nil(t, decision)
	assert.ErrorIs(t, err, backendErr)
	fx.auditRepo.AssertNotCalled(t, "Record")
	fx.publisher.AssertNotCalled(t, "PublishModerationEvent")
}

func TestProductService_ApproveProduct_PendingListFails(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().ListPendingProducts(ctx).Return(nil, errors.New("boom")).Once()

	_, err := fx.service.ApproveProduct(ctx, "p1")
	assert.EqualError(t, err, "boom")
}

func TestProductService_RejectProduct_EmptyReasonAllowed(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().ListPendingProducts(ctx).Return(pendingProducts("p1"), nil).Once()
	fx.productRepo.EXPECT().RejectProduct(mock.Anything, "p1", "").Return("Product rejected", nil).Once()
	fx.expectRecorded(entity.SubjectProduct, entity.ActionReject, "p1", "")

	decision, err := fx.service.RejectProduct(ctx, "p1", "   ")
	require.NoError(t, err)

	assert.Equal(t, 0, decision.Queue.Count)
	assert.Empty(t, decision.Queue.Items)
}

func TestProductService_RejectProduct_TrimsReason(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().ListPendingProducts(ctx).Return(pendingProducts("p1"), nil).Once()
	fx.productRepo.EXPECT().RejectProduct(mock.Anything, "p1", "blurry photos").Return("Product rejected", nil).Once()
	fx.expectRecorded(entity.SubjectProduct, entity.ActionReject, "p1", "blurry photos")

	_, err := fx.service.RejectProduct(ctx, "p1", "  blurry photos ")
	require.NoError(t, err)
}

func TestProductService_DeleteProduct(t *testing.T) {
	t.Run("unconfirmed", func(t *testing.T) {
		fx := createTestProductService(t)

		_, err := fx.service.DeleteProduct(context.Background(), "p1", "delete")
		assert.ErrorIs(t, err, domainerrors.ErrConfirmationRequired)
	})

	t.Run("confirmed", func(t *testing.T) {
		fx := createTestProductService(t)
		ctx := context.Background()

		fx.productRepo.EXPECT().DeleteProduct(ctx, "p1").Return("Product deleted", nil).Once()
		fx.expectRecorded(entity.SubjectProduct, entity.ActionDelete, "p1", "")

		message, err := fx.service.DeleteProduct(ctx, "p1", "DELETE")
		require.NoError(t, err)
		assert.Equal(t, "Product deleted", message)
	})
}

func TestProductService_ListProducts(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		fx := createTestProductService(t)

		_, err := fx.service.ListProducts(context.Background(), entity.ListQuery{Status: "archived"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})

	t.Run("limit out of range", func(t *testing.T) {
		fx := createTestProductService(t)

		_, err := fx.service.ListProducts(context.Background(), entity.ListQuery{Limit: 1000})

		var validationErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields(), "limit")
	})

	t.Run("passes query through", func(t *testing.T) {
		fx := createTestProductService(t)
		ctx := context.Background()
		query := entity.ListQuery{Page: 2, Limit: 20, Search: "lamp", Status: "approved"}
		page := &entity.Page[*entity.Product]{Items: pendingProducts("p1"), Page: 2, Limit: 20, Total: 21, TotalPages: 2}

		fx.productRepo.EXPECT().ListProducts(ctx, query).Return(page, nil).Once()

		got, err := fx.service.ListProducts(ctx, query)
		require.NoError(t, err)
		assert.Same(t, page, got)
	})
}

func TestProductService_ApproveProduct_ConcurrentSubmitsShareOneCall(t *testing.T) {
	tests := []struct {
		name    string
		callers int
	}{
		{name: "double click", callers: 2},
		{name: "many tabs", callers: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)

			var listed sync.WaitGroup
			listed.Add(tt.callers)

			fx.productRepo.EXPECT().
				ListPendingProducts(mock.Anything).
				RunAndReturn(func(context.Context) ([]*entity.Product, error) {
					defer listed.Done()
					return pendingProducts("p1", "p2"), nil
				}).
				Times(tt.callers)
			fx.productRepo.EXPECT().
				ApproveProduct(mock.Anything, "p1").
				RunAndReturn(func(context.Context, string) (string, error) {
					// hold the call open until every caller has joined it
					listed.Wait()
					time.Sleep(50 * time.Millisecond)
					return "Product approved", nil
				}).
				Once()
			fx.expectRecorded(entity.SubjectProduct, entity.ActionApprove, "p1", "")

			decisions := make([]*usecase.Decision[*entity.Product], tt.callers)
			errs := make([]error, tt.callers)

			var done sync.WaitGroup
			for i := range tt.callers {
				done.Add(1)
				go func() {
					defer done.Done()
					decisions[i], errs[i] = fx.service.ApproveProduct(context.Background(), "p1")
				}()
			}
			done.Wait()

			for i := range tt.callers {
				require.NoError(t, errs[i])
				assert.Equal(t, "Product approved", decisions[i].Message)
				assert.Equal(t, 1, decisions[i].Queue.Count)
				assert.Equal(t, "p2", decisions[i].Queue.Items[0].ID)
			}
		})
	}
}

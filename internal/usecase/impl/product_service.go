package impl

import (
	"context"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/repository"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/validation"
)

type productService struct {
	productRepo repository.ProductRepository
	recorder    *ModerationRecorder
	validator   *validation.Validator
	desk        *approvalDesk[*entity.Product]
}

// NewProductService creates a new product service instance
func NewProductService(
	productRepo repository.ProductRepository,
	recorder *ModerationRecorder,
	validator *validation.Validator,
) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		recorder:    recorder,
		validator:   validator,
		desk:        newApprovalDesk(entity.SubjectProduct, productRepo.ListPendingProducts, recorder),
	}
}

func (s *productService) ListProducts(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Product], error) {
	if err := s.validator.Struct(&query); err != nil {
		return nil, err
	}
	if query.Status != "" && !entity.ApprovalStatus(query.Status).IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(query.Status)
	}

	return s.productRepo.ListProducts(ctx, query)
}

func (s *productService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return s.productRepo.GetProduct(ctx, id)
}

func (s *productService) DeleteProduct(ctx context.Context, id string, confirmation entity.Confirmation) (string, error) {
	if err := requireConfirmation(confirmation); err != nil {
		return "", err
	}

	return s.recorder.mutateAndRecord(ctx, entity.SubjectProduct, id, entity.ActionDelete, "", func(ctx context.Context) (string, error) {
		return s.productRepo.DeleteProduct(ctx, id)
	})
}

func (s *productService) PendingProducts(ctx context.Context) (*entity.PendingQueue[*entity.Product], error) {
	return s.desk.queue(ctx)
}

func (s *productService) ApproveProduct(ctx context.Context, id string) (*usecase.Decision[*entity.Product], error) {
	return s.desk.decide(ctx, id, entity.ActionApprove, "", func(ctx context.Context) (string, error) {
		return s.productRepo.ApproveProduct(ctx, id)
	})
}

func (s *productService) RejectProduct(ctx context.Context, id, reason string) (*usecase.Decision[*entity.Product], error) {
	reason = trimmed(reason)

	return s.desk.decide(ctx, id, entity.ActionReject, reason, func(ctx context.Context) (string, error) {
		return s.productRepo.RejectProduct(ctx, id, reason)
	})
}

package impl

import (
	"context"
	"strconv"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/repository"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/util"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/validation"
)

const defaultSellerReasonMinLength = 10

type sellerService struct {
	sellerRepo      repository.SellerRepository
	recorder        *ModerationRecorder
	validator       *validation.Validator
	desk            *approvalDesk[*entity.Seller]
	reasonMinLength int
}

// NewSellerService creates a new seller service instance
func NewSellerService(
	sellerRepo repository.SellerRepository,
	recorder *ModerationRecorder,
	validator *validation.Validator,
	cfg *config.Config,
) usecase.SellerUsecase {
	reasonMinLength := defaultSellerReasonMinLength
	if cfg.Approval != nil && cfg.Approval.SellerReasonMinLength > 0 {
		reasonMinLength = cfg.Approval.SellerReasonMinLength
	}

	return &sellerService{
		sellerRepo:      sellerRepo,
		recorder:        recorder,
		validator:       validator,
		desk:            newApprovalDesk(entity.SubjectSeller, sellerRepo.ListPendingSellers, recorder),
		reasonMinLength: reasonMinLength,
	}
}

func (s *sellerService) ListSellers(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Seller], error) {
	if err := s.validator.Struct(&query); err != nil {
		return nil, err
	}
	if query.Status != "" && !entity.SellerStatus(query.Status).IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(query.Status)
	}

	return s.sellerRepo.ListSellers(ctx, query)
}

func (s *sellerService) GetSeller(ctx context.Context, id string) (*entity.Seller, error) {
	return s.sellerRepo.GetSeller(ctx, id)
}

// UpdateSellerStatus accepts active, suspended and deactive only.
func (s *sellerService) UpdateSellerStatus(ctx context.Context, id, status string) (string, error) {
	sellerStatus := entity.SellerStatus(trimmed(status))
	if !sellerStatus.IsValid() {
		return "", domainerrors.ErrInvalidStatus.WithDetails(status)
	}

	return s.recorder.mutateAndRecord(ctx, entity.SubjectSeller, id, entity.ActionStatusChange, string(sellerStatus), func(ctx context.Context) (string, error) {
		return s.sellerRepo.UpdateSellerStatus(ctx, id, sellerStatus)
	})
}

func (s *sellerService) PendingSellers(ctx context.Context) (*entity.PendingQueue[*entity.Seller], error) {
	return s.desk.queue(ctx)
}

func (s *sellerService) ApproveSeller(ctx context.Context, id string) (*usecase.Decision[*entity.Seller], error) {
	return s.desk.decide(ctx, id, entity.ActionApprove, "", func(ctx context.Context) (string, error) {
		return s.sellerRepo.ApproveSeller(ctx, id)
	})
}

// RejectSeller refuses a short reason before any backend call.
func (s *sellerService) RejectSeller(ctx context.Context, id, reason string) (*usecase.Decision[*entity.Seller], error) {
	if util.TrimmedLength(reason) < s.reasonMinLength {
		return nil, domainerrors.ErrRejectionReasonTooShort.
			WithMessage("Rejection reason must be at least " + strconv.Itoa(s.reasonMinLength) + " characters")
	}
	reason = trimmed(reason)

	return s.desk.decide(ctx, id, entity.ActionReject, reason, func(ctx context.Context) (string, error) {
		return s.sellerRepo.RejectSeller(ctx, id, reason)
	})
}

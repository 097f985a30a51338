package impl

import (
	"context"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/repository"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/validation"
)

type warehouseService struct {
	warehouseRepo repository.WarehouseRepository
	recorder      *ModerationRecorder
	validator     *validation.Validator
}

// NewWarehouseService creates a new warehouse service instance
func NewWarehouseService(
	warehouseRepo repository.WarehouseRepository,
	recorder *ModerationRecorder,
	validator *validation.Validator,
) usecase.WarehouseUsecase {
	return &warehouseService{
		warehouseRepo: warehouseRepo,
		recorder:      recorder,
		validator:     validator,
	}
}

func (s *warehouseService) ListWarehouses(ctx context.Context) ([]*entity.Warehouse, error) {
	return s.warehouseRepo.ListWarehouses(ctx)
}

func (s *warehouseService) GetWarehouse(ctx context.Context, id string) (*entity.Warehouse, error) {
	return s.warehouseRepo.GetWarehouse(ctx, id)
}

func (s *warehouseService) CreateWarehouse(ctx context.Context, draft *entity.WarehouseDraft) (string, error) {
	if err := s.checkDraft(draft); err != nil {
		return "", err
	}

	return s.warehouseRepo.CreateWarehouse(ctx, draft)
}

func (s *warehouseService) UpdateWarehouse(ctx context.Context, id string, draft *entity.WarehouseDraft) (string, error) {
	if err := s.checkDraft(draft); err != nil {
		return "", err
	}

	return s.warehouseRepo.UpdateWarehouse(ctx, id, draft)
}

func (s *warehouseService) DeleteWarehouse(ctx context.Context, id string, confirmation entity.Confirmation) (string, error) {
	if err := requireConfirmation(confirmation); err != nil {
		return "", err
	}

	return s.recorder.mutateAndRecord(ctx, entity.SubjectWarehouse, id, entity.ActionDelete, "", func(ctx context.Context) (string, error) {
		return s.warehouseRepo.DeleteWarehouse(ctx, id)
	})
}

func (s *warehouseService) checkDraft(draft *entity.WarehouseDraft) error {
	draft.Name = trimmed(draft.Name)
	draft.Address = trimmed(draft.Address)
	draft.City = trimmed(draft.City)
	draft.State = trimmed(draft.State)
	draft.Country = trimmed(draft.Country)
	draft.PostalCode = trimmed(draft.PostalCode)
	draft.Phone = trimmed(draft.Phone)

	return s.validator.Struct(draft)
}

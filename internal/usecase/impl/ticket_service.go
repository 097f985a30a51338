package impl

import (
	"context"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/repository"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"
)

type supportTicketService struct {
	ticketRepo repository.SupportTicketRepository
	recorder   *ModerationRecorder
}

// NewSupportTicketService creates a new support ticket service instance
func NewSupportTicketService(
	ticketRepo repository.SupportTicketRepository,
	recorder *ModerationRecorder,
) usecase.SupportTicketUsecase {
	return &supportTicketService{
		ticketRepo: ticketRepo,
		recorder:   recorder,
	}
}

func (s *supportTicketService) ListTickets(ctx context.Context, status string) ([]*entity.SupportTicket, error) {
	ticketStatus := entity.TicketStatus(trimmed(status))
	if ticketStatus != "" && !ticketStatus.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(status)
	}

	return s.ticketRepo.ListTickets(ctx, ticketStatus)
}

func (s *supportTicketService) GetTicket(ctx context.Context, id string) (*entity.SupportTicket, error) {
	return s.ticketRepo.GetTicket(ctx, id)
}

func (s *supportTicketService) ReplyTicket(ctx context.Context, id, message string) (string, error) {
	message = trimmed(message)
	if message == "" {
		return "", domainerrors.NewValidationError(map[string]string{"message": "Reply cannot be empty"})
	}

	return s.ticketRepo.ReplyTicket(ctx, id, message)
}

func (s *supportTicketService) UpdateTicketStatus(ctx context.Context, id, status string) (string, error) {
	ticketStatus := entity.TicketStatus(trimmed(status))
	if !ticketStatus.IsValid() {
		return "", domainerrors.ErrInvalidStatus.WithDetails(status)
	}

	return s.recorder.mutateAndRecord(ctx, entity.SubjectTicket, id, entity.ActionStatusChange, string(ticketStatus), func(ctx context.Context) (string, error) {
		return s.ticketRepo.UpdateTicketStatus(ctx, id, ticketStatus)
	})
}

package impl

import (
	"context"
	"testing"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	mockRepo "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/mocks/repository"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ticketServiceFixtures struct {
	recorderFixtures
	service    usecase.SupportTicketUsecase
	ticketRepo *mockRepo.MockSupportTicketRepository
}

func createTestTicketService(t *testing.T) ticketServiceFixtures {
	rec := createTestRecorder(t)
	ticketRepo := mockRepo.NewMockSupportTicketRepository(t)

	return ticketServiceFixtures{
		recorderFixtures: rec,
		service:          NewSupportTicketService(ticketRepo, rec.recorder),
		ticketRepo:       ticketRepo,
	}
}

func TestSupportTicketService_ListTickets(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()
	tickets := []*entity.SupportTicket{{ID: "t1", Status: entity.TicketOpen}}

	fx.ticketRepo.EXPECT().ListTickets(ctx, entity.TicketStatus("")).Return(tickets, nil).Once()
	fx.ticketRepo.EXPECT().ListTickets(ctx, entity.TicketOpen).Return(tickets, nil).Once()

	got, err := fx.service.ListTickets(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, tickets, got)

	_, err = fx.service.ListTickets(ctx, "open")
	require.NoError(t, err)

	_, err = fx.service.ListTickets(ctx, "escalated")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestSupportTicketService_ReplyTicket(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()

	_, err := fx.service.ReplyTicket(ctx, "t1", "  \n ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fx.ticketRepo.EXPECT().ReplyTicket(ctx, "t1", "We shipped a replacement.").Return("Reply sent", nil).Once()

	message, err := fx.service.ReplyTicket(ctx, "t1", " We shipped a replacement. ")
	require.NoError(t, err)
	assert.Equal(t, "Reply sent", message)
}

func TestSupportTicketService_UpdateTicketStatus(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()

	_, err := fx.service.UpdateTicketStatus(ctx, "t1", "archived")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)

	fx.ticketRepo.EXPECT().UpdateTicketStatus(ctx, "t1", entity.TicketResolved).Return("Ticket updated", nil).Once()
	fx.expectRecorded(entity.SubjectTicket, entity.ActionStatusChange, "t1", "resolved")

	message, err := fx.service.UpdateTicketStatus(ctx, "t1", "resolved")
	require.NoError(t, err)
	assert.Equal(t, "Ticket updated", message)
}

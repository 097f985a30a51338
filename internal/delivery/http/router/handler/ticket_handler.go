package handler

import (
	"net/http"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/response"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type TicketHandlerParams struct {
	fx.In

	TicketUC usecase.SupportTicketUsecase
}

// TicketHandler serves the support desk.
type TicketHandler struct {
	ticketUC usecase.SupportTicketUsecase
}

func NewTicketHandler(params TicketHandlerParams) *TicketHandler {
	return &TicketHandler{ticketUC: params.TicketUC}
}

// ReplyRequest is the body of a ticket reply.
type ReplyRequest struct {
	Message string `json:"message" form:"message"`
}

func (h *TicketHandler) ListTickets(c echo.Context) error {
	tickets, err := h.ticketUC.ListTickets(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}

	return response.OK(c, tickets)
}

func (h *TicketHandler) GetTicket(c echo.Context) error {
	ticket, err := h.ticketUC.GetTicket(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, ticket)
}

func (h *TicketHandler) ReplyTicket(c echo.Context) error {
	var req ReplyRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	message, err := h.ticketUC.ReplyTicket(c.Request().Context(), c.Param("id"), req.Message)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, nil, message)
}

func (h *TicketHandler) UpdateTicketStatus(c echo.Context) error {
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	message, err := h.ticketUC.UpdateTicketStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, message)
}

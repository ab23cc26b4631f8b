package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	responseRepo ticket.ResponseRepository
	userRepo     user.UserRepository
	logger       logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	responseRepo ticket.ResponseRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:   ticketRepo,
		responseRepo: responseRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	uc.logger.Debugw("executing get ticket use case", "ticket_id", query.TicketID)

	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}

	responses, err := uc.responseRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load responses", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load responses")
	}

	users, err := uc.loadUsers(ctx, t, responses)
	if err != nil {
		uc.logger.Errorw("failed to load users", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load users")
	}

	withUsers := make([]dto.ResponseWithUser, 0, len(responses))
	for _, r := range responses {
		withUsers = append(withUsers, dto.ResponseWithUser{
			Response: r,
			User:     users[r.UserID()],
		})
	}

	return dto.ToTicketDTO(t, users[t.UserID()], withUsers), nil
}

func (uc *GetTicketUseCase) loadUsers(
	ctx context.Context,
	t *ticket.Ticket,
	responses []*ticket.Response,
) (map[uint]*user.User, error) {
	seen := map[uint]bool{t.UserID(): true}
	ids := []uint{t.UserID()}
	for _, r := range responses {
		if !seen[r.UserID()] {
			seen[r.UserID()] = true
			ids = append(ids, r.UserID())
		}
	}

	return uc.userRepo.GetByIDs(ctx, ids)
}

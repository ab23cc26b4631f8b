package usecases

import (
	"context"
	"time"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	Priority  *string
	Status    *string
	Page      int
	PageSize  int
}

type ListTicketsResult struct {
	Tickets    []dto.TicketListItemDTO
	TotalCount int64
	Page       int
	PageSize   int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(
	ctx context.Context,
	query ListTicketsQuery,
) (*ListTicketsResult, error) {
	uc.logger.Debugw("executing list tickets use case",
		"search", query.Search,
		"page", query.Page,
		"page_size", query.PageSize)

	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize <= 0 {
		query.PageSize = constants.DefaultPageSize
	}
	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}

	filter := ticket.TicketFilter{
		Search:    query.Search,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		Page:      query.Page,
		PageSize:  query.PageSize,
	}

	// An empty string means the filter was left unselected, not "filter for empty".
	if query.Priority != nil && *query.Priority != "" {
		priority, err := vo.NewPriority(*query.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority")
		}
		filter.Priority = &priority
	}

	if query.Status != nil && *query.Status != "" {
		status, err := vo.NewTicketStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status")
		}
		filter.Status = &status
	}

	tickets, totalCount, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	owners, err := uc.loadOwners(ctx, tickets)
	if err != nil {
		uc.logger.Errorw("failed to load ticket owners", "error", err)
		return nil, errors.NewInternalError("failed to load ticket owners")
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketListItemDTO(t, owners[t.UserID()]))
	}

	uc.logger.Debugw("tickets listed successfully",
		"count", len(items),
		"total", totalCount)

	return &ListTicketsResult{
		Tickets:    items,
		TotalCount: totalCount,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}, nil
}

func (uc *ListTicketsUseCase) loadOwners(
	ctx context.Context,
	tickets []*ticket.Ticket,
) (map[uint]*user.User, error) {
	if len(tickets) == 0 {
		return map[uint]*user.User{}, nil
	}

	seen := make(map[uint]bool, len(tickets))
	ids := make([]uint, 0, len(tickets))
	for _, t := range tickets {
		if !seen[t.UserID()] {
			seen[t.UserID()] = true
			ids = append(ids, t.UserID())
		}
	}

	return uc.userRepo.GetByIDs(ctx, ids)
}

package ticket

import (
	"context"
	"time"

	vo "helpdesk/internal/domain/ticket/value_objects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
}

// TicketFilter carries the listing predicates. All set predicates combine
// conjunctively; Search matches as a case-insensitive substring against the
// ticket title, description, and the owner's name and email. A nil date bound
// leaves that side of the created_at range unbounded.
type TicketFilter struct {
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	Priority  *vo.Priority
	Status    *vo.TicketStatus
	Page      int
	PageSize  int
}

type ResponseRepository interface {
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Response, error)
}

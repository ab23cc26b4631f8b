package ticket

import (
	"fmt"
	"time"
)

// Response is a reply left on a ticket by its owner or a support agent.
type Response struct {
	id        uint
	ticketID  uint
	userID    uint
	message   string
	createdAt time.Time
}

func NewResponse(ticketID, userID uint, message string) (*Response, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > 10000 {
		return nil, fmt.Errorf("message exceeds maximum length of 10000 characters")
	}

	return &Response{
		ticketID:  ticketID,
		userID:    userID,
		message:   message,
		createdAt: time.Now(),
	}, nil
}

func ReconstructResponse(
	id uint,
	ticketID uint,
	userID uint,
	message string,
	createdAt time.Time,
) (*Response, error) {
	if id == 0 {
		return nil, fmt.Errorf("response ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Response{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		message:   message,
		createdAt: createdAt,
	}, nil
}

func (r *Response) ID() uint {
	return r.id
}

func (r *Response) TicketID() uint {
	return r.ticketID
}

func (r *Response) UserID() uint {
	return r.userID
}

func (r *Response) Message() string {
	return r.message
}

func (r *Response) CreatedAt() time.Time {
	return r.createdAt
}

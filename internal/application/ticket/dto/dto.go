package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
)

type TicketDTO struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Priority    string        `json:"priority"`
	Status      string        `json:"status"`
	UserID      uint          `json:"user_id"`
	User        *UserDTO      `json:"user,omitempty"`
	Responses   []ResponseDTO `json:"responses"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type UserDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ResponseDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type TicketListItemDTO struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Priority   string    `json:"priority"`
	Status     string    `json:"status"`
	UserID     uint      `json:"user_id"`
	OwnerName  string    `json:"owner_name"`
	OwnerEmail string    `json:"owner_email"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email(),
	}
}

func ToResponseDTO(r *ticket.Response, responder *user.User) ResponseDTO {
	d := ResponseDTO{
		ID:        r.ID(),
		UserID:    r.UserID(),
		Message:   r.Message(),
		CreatedAt: r.CreatedAt(),
	}
	if responder != nil {
		d.UserName = responder.Name()
	}
	return d
}

// ResponseWithUser pairs a response with its (possibly unknown) author.
type ResponseWithUser struct {
	Response *ticket.Response
	User     *user.User
}

func ToTicketDTO(t *ticket.Ticket, owner *user.User, responses []ResponseWithUser) *TicketDTO {
	if t == nil {
		return nil
	}

	responseDTOs := make([]ResponseDTO, 0, len(responses))
	for _, r := range responses {
		responseDTOs = append(responseDTOs, ToResponseDTO(r.Response, r.User))
	}

	return &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		UserID:      t.UserID(),
		User:        ToUserDTO(owner),
		Responses:   responseDTOs,
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket, owner *user.User) TicketListItemDTO {
	item := TicketListItemDTO{
		ID:        t.ID(),
		Title:     t.Title(),
		Priority:  t.Priority().String(),
		Status:    t.Status().String(),
		UserID:    t.UserID(),
		CreatedAt: t.CreatedAt(),
	}
	if owner != nil {
		item.OwnerName = owner.Name()
		item.OwnerEmail = owner.Email()
	}
	return item
}

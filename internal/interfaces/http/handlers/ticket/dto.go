package ticket

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/utils"
)

const dateLayout = "2006-01-02"

type CreateTicketRequest struct {
	Title       string `form:"title" binding:"required,max=200"`
	Description string `form:"description" binding:"required,max=5000"`
	Priority    string `form:"priority" binding:"required,ticketpriority"`
	Status      string `form:"status" binding:"omitempty,ticketstatus"`
}

// ToCommand builds the create command. The creator always comes from the
// authenticated caller, never from the submitted form.
func (r *CreateTicketRequest) ToCommand(creatorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
		CreatorID:   creatorID,
	}
}

type ListTicketsRequest struct {
	Search    string
	StartDate string
	EndDate   string
	Priority  string
	Status    string
	Page      int
	PageSize  int
}

func (r *ListTicketsRequest) ToQuery() (usecases.ListTicketsQuery, error) {
	query := usecases.ListTicketsQuery{
		Search:   r.Search,
		Page:     r.Page,
		PageSize: r.PageSize,
	}

	if r.StartDate != "" {
		start, err := time.Parse(dateLayout, r.StartDate)
		if err != nil {
			return query, errors.NewValidationError("invalid start date", r.StartDate)
		}
		query.StartDate = &start
	}

	if r.EndDate != "" {
		end, err := time.Parse(dateLayout, r.EndDate)
		if err != nil {
			return query, errors.NewValidationError("invalid end date", r.EndDate)
		}
		// The whole end day is included in the range.
		end = end.AddDate(0, 0, 1).Add(-time.Millisecond)
		query.EndDate = &end
	}

	if r.Priority != "" {
		query.Priority = &r.Priority
	}
	if r.Status != "" {
		query.Status = &r.Status
	}

	return query, nil
}

func parseListTicketsRequest(c *gin.Context) *ListTicketsRequest {
	pagination := utils.ParsePagination(c)

	return &ListTicketsRequest{
		Search:    c.Query("search"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Priority:  c.Query("priority"),
		Status:    c.Query("status"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	}
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewNotFoundError("ticket not found", "invalid ticket id")
	}
	return uint(id), nil
}

package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// Enum options are passed to templates as plain strings so the select
// markup can compare them against submitted values.
func priorityOptions() []string {
	priorities := vo.Priorities()
	options := make([]string, 0, len(priorities))
	for _, p := range priorities {
		options = append(options, p.String())
	}
	return options
}

func statusOptions() []string {
	statuses := vo.Statuses()
	options := make([]string, 0, len(statuses))
	for _, s := range statuses {
		options = append(options, s.String())
	}
	return options
}

// Renderer abstracts the template layer so handlers can be tested
// without a template directory on disk.
type Renderer interface {
	HTML(c *gin.Context, code int, name string, data interface{})
}

type TicketHandler struct {
	listTicketsUC  usecases.ListTicketsExecutor
	createTicketUC usecases.CreateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	renderer       Renderer
	logger         logger.Interface
}

func NewTicketHandler(
	listTicketsUC usecases.ListTicketsExecutor,
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	renderer Renderer,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		listTicketsUC:  listTicketsUC,
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		deleteTicketUC: deleteTicketUC,
		renderer:       renderer,
		logger:         logger,
	}
}

// Index handles GET /tickets
func (h *TicketHandler) Index(c *gin.Context) {
	req := parseListTicketsRequest(c)

	query, err := req.ToQuery()
	if err != nil {
		h.renderError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "tickets/index.html", gin.H{
		"tickets":     result.Tickets,
		"total":       result.TotalCount,
		"page":        result.Page,
		"page_size":   result.PageSize,
		"total_pages": utils.TotalPages(result.TotalCount, result.PageSize),
		"filters":     req,
		"priorities":  priorityOptions(),
		"statuses":    statusOptions(),
	})
}

// New handles GET /tickets/new
func (h *TicketHandler) New(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "tickets/create.html", gin.H{
		"priorities": priorityOptions(),
		"statuses":   statusOptions(),
	})
}

// Store handles POST /tickets
func (h *TicketHandler) Store(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		h.renderError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid create ticket form", "error", err)
		h.renderCreateForm(c, &req, "please check the submitted fields")
		return
	}

	if _, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(userID)); err != nil {
		if errors.IsValidationError(err) {
			h.renderCreateForm(c, &req, errors.GetAppError(err).Message)
			return
		}
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/tickets")
}

// Show handles GET /tickets/:id
func (h *TicketHandler) Show(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "tickets/show.html", gin.H{
		"ticket": result,
	})
}

// Edit handles GET /tickets/:id/edit. Editing is a named extension
// point without behavior yet.
func (h *TicketHandler) Edit(c *gin.Context) {
	h.renderNotImplemented(c)
}

// Update handles PUT /tickets/:id. Same extension point as Edit.
func (h *TicketHandler) Update(c *gin.Context) {
	h.renderNotImplemented(c)
}

// Destroy handles DELETE /tickets/:id and redirects to the listing.
func (h *TicketHandler) Destroy(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if _, err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{TicketID: ticketID}); err != nil {
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/tickets")
}

func (h *TicketHandler) renderCreateForm(c *gin.Context, req *CreateTicketRequest, message string) {
	h.renderer.HTML(c, http.StatusBadRequest, "tickets/create.html", gin.H{
		"priorities": priorityOptions(),
		"statuses":   statusOptions(),
		"form":       req,
		"error":      message,
	})
}

func (h *TicketHandler) renderNotImplemented(c *gin.Context) {
	h.renderer.HTML(c, http.StatusNotImplemented, "error.html", gin.H{
		"code":    http.StatusNotImplemented,
		"message": "this operation is not implemented",
	})
}

func (h *TicketHandler) renderError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		h.logger.Errorw("unexpected handler error", "path", c.Request.URL.Path, "error", err)
		appErr = errors.NewInternalError("internal server error")
	}

	h.renderer.HTML(c, appErr.Code, "error.html", gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"details": appErr.Details,
	})
}

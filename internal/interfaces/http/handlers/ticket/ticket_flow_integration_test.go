package ticket

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appdto "helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/shared/constants"
	sharedDB "helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
)

// setupFlowRouter wires the handler to real use cases and repositories
// over an in-memory database, with the caller identity fixed to userID.
func setupFlowRouter(t *testing.T, userID uint) (*gin.Engine, *stubRenderer, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migration.Run(db))

	ticketRepo := repository.NewTicketRepository(db)
	responseRepo := repository.NewResponseRepository(db)
	userRepo := repository.NewUserRepository(db)
	txMgr := sharedDB.NewTransactionManager(db)
	log := logger.NewLogger()

	renderer := &stubRenderer{}
	handler := NewTicketHandler(
		usecases.NewListTicketsUseCase(ticketRepo, userRepo, log),
		usecases.NewCreateTicketUseCase(ticketRepo, log),
		usecases.NewGetTicketUseCase(ticketRepo, responseRepo, userRepo, log),
		usecases.NewDeleteTicketUseCase(ticketRepo, txMgr, log),
		renderer,
		log,
	)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	})
	router.GET("/tickets", handler.Index)
	router.POST("/tickets", handler.Store)
	router.GET("/tickets/:id", handler.Show)
	router.DELETE("/tickets/:id", handler.Destroy)

	return router, renderer, db
}

func TestTicketLifecycle(t *testing.T) {
	const callerID uint = 42

	router, renderer, db := setupFlowRouter(t, callerID)
	require.NoError(t, db.Create(&models.UserModel{ID: callerID, Name: "Uma Torres", Email: "uma@example.com"}).Error)

	// Create a high-priority ticket; the form tries to spoof another owner.
	form := url.Values{
		"title":       {"Printer broken"},
		"description": {"Paper jam in tray 2, error code E4."},
		"priority":    {"high"},
		"status":      {"open"},
		"user_id":     {"999"},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tickets", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/tickets", w.Header().Get("Location"))

	listTickets := func(query string) []appdto.TicketListItemDTO {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tickets"+query, nil))
		require.Equal(t, http.StatusOK, w.Code)
		tickets, ok := renderer.data["tickets"].([]appdto.TicketListItemDTO)
		require.True(t, ok)
		return tickets
	}

	// Matching priority filter includes the ticket; a different one excludes it.
	high := listTickets("?priority=high")
	require.Len(t, high, 1)
	assert.Equal(t, "Printer broken", high[0].Title)
	assert.Equal(t, "Uma Torres", high[0].OwnerName)
	location := fmt.Sprintf("/tickets/%d", high[0].ID)

	assert.Empty(t, listTickets("?priority=low"))

	// Owner search reaches it too.
	found := listTickets("?search=uma@example.com")
	require.Len(t, found, 1)

	// Show returns the ticket with the authenticated caller as owner.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, location, nil))
	require.Equal(t, http.StatusOK, w.Code)
	shown, ok := renderer.data["ticket"].(*appdto.TicketDTO)
	require.True(t, ok)
	assert.Equal(t, callerID, shown.UserID)
	require.NotNil(t, shown.User)
	assert.Equal(t, "Uma Torres", shown.User.Name)
	assert.Equal(t, "high", shown.Priority)

	// Delete it; a subsequent show must be a 404 page.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, location, nil))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/tickets", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, location, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error.html", renderer.name)
}

func TestTicketLifecycle_SecondUserTicketsRemain(t *testing.T) {
	router, renderer, db := setupFlowRouter(t, 7)
	require.NoError(t, db.Create(&models.UserModel{ID: 7, Name: "Ana", Email: "ana@example.com"}).Error)

	for i := 0; i < 2; i++ {
		form := url.Values{
			"title":       {fmt.Sprintf("Issue %d", i+1)},
			"description": {"details"},
			"priority":    {"medium"},
		}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/tickets", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusSeeOther, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tickets", nil))
	require.Equal(t, http.StatusOK, w.Code)

	tickets, ok := renderer.data["tickets"].([]appdto.TicketListItemDTO)
	require.True(t, ok)
	assert.Len(t, tickets, 2)
}

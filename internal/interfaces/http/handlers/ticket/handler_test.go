package ticket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
}

type stubRenderer struct {
	code int
	name string
	data gin.H
}

func (r *stubRenderer) HTML(c *gin.Context, code int, name string, data interface{}) {
	r.code = code
	r.name = name
	if h, ok := data.(gin.H); ok {
		r.data = h
	}
	c.String(code, name)
}

type mockListTicketsUC struct {
	executeFunc func(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

func (m *mockListTicketsUC) Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	return m.executeFunc(ctx, query)
}

type mockCreateTicketUC struct {
	executeFunc func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error)
}

func (m *mockCreateTicketUC) Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	return m.executeFunc(ctx, cmd)
}

type mockGetTicketUC struct {
	executeFunc func(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDTO, error)
}

func (m *mockGetTicketUC) Execute(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDTO, error) {
	return m.executeFunc(ctx, query)
}

type mockDeleteTicketUC struct {
	executeFunc func(ctx context.Context, cmd usecases.DeleteTicketCommand) (*usecases.DeleteTicketResult, error)
}

func (m *mockDeleteTicketUC) Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) (*usecases.DeleteTicketResult, error) {
	return m.executeFunc(ctx, cmd)
}

type handlerMocks struct {
	list   *mockListTicketsUC
	create *mockCreateTicketUC
	get    *mockGetTicketUC
	delete *mockDeleteTicketUC
}

func setupHandler(userID uint) (*gin.Engine, *stubRenderer, *handlerMocks) {
	renderer := &stubRenderer{}
	mocks := &handlerMocks{
		list: &mockListTicketsUC{executeFunc: func(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
			return &usecases.ListTicketsResult{Page: query.Page, PageSize: query.PageSize}, nil
		}},
		create: &mockCreateTicketUC{executeFunc: func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
			return &usecases.CreateTicketResult{TicketID: 1}, nil
		}},
		get: &mockGetTicketUC{executeFunc: func(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDTO, error) {
			return &dto.TicketDTO{ID: query.TicketID}, nil
		}},
		delete: &mockDeleteTicketUC{executeFunc: func(ctx context.Context, cmd usecases.DeleteTicketCommand) (*usecases.DeleteTicketResult, error) {
			return &usecases.DeleteTicketResult{TicketID: cmd.TicketID}, nil
		}},
	}

	handler := NewTicketHandler(mocks.list, mocks.create, mocks.get, mocks.delete, renderer, logger.NewLogger())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID != 0 {
			c.Set(constants.ContextKeyUserID, userID)
		}
		c.Next()
	})
	router.GET("/tickets", handler.Index)
	router.GET("/tickets/new", handler.New)
	router.POST("/tickets", handler.Store)
	router.GET("/tickets/:id", handler.Show)
	router.GET("/tickets/:id/edit", handler.Edit)
	router.PUT("/tickets/:id", handler.Update)
	router.DELETE("/tickets/:id", handler.Destroy)

	return router, renderer, mocks
}

func TestIndex(t *testing.T) {
	t.Run("passes filters through to the use case", func(t *testing.T) {
		router, renderer, mocks := setupHandler(42)

		var captured usecases.ListTicketsQuery
		mocks.list.executeFunc = func(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
			captured = query
			return &usecases.ListTicketsResult{Page: query.Page, PageSize: query.PageSize}, nil
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/tickets?search=printer&start_date=2024-03-01&end_date=2024-03-05&priority=high&status=open&page=2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tickets/index.html", renderer.name)

		assert.Equal(t, "printer", captured.Search)
		require.NotNil(t, captured.Priority)
		assert.Equal(t, "high", *captured.Priority)
		require.NotNil(t, captured.Status)
		assert.Equal(t, "open", *captured.Status)
		assert.Equal(t, 2, captured.Page)
		assert.Equal(t, constants.DefaultPageSize, captured.PageSize)

		require.NotNil(t, captured.StartDate)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *captured.StartDate)
		require.NotNil(t, captured.EndDate)
		assert.Equal(t, 5, captured.EndDate.Day(), "end bound must stay on the requested day")
		assert.Equal(t, 23, captured.EndDate.Hour(), "end bound must cover the whole day")
	})

	t.Run("empty filters are omitted", func(t *testing.T) {
		router, _, mocks := setupHandler(42)

		var captured usecases.ListTicketsQuery
		mocks.list.executeFunc = func(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
			captured = query
			return &usecases.ListTicketsResult{}, nil
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tickets", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, captured.Search)
		assert.Nil(t, captured.StartDate)
		assert.Nil(t, captured.EndDate)
		assert.Nil(t, captured.Priority)
		assert.Nil(t, captured.Status)
		assert.Equal(t, 1, captured.Page)
	})

	t.Run("malformed date renders validation error page", func(t *testing.T) {
		router, renderer, _ := setupHandler(42)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tickets?start_date=not-a-date", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "error.html", renderer.name)
	})

	t.Run("use case failure renders error page", func(t *testing.T) {
		router, renderer, mocks := setupHandler(42)
		mocks.list.executeFunc = func(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
			return nil, errors.NewInternalError("storage unavailable")
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tickets", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "error.html", renderer.name)
	})
}

func TestStore(t *testing.T) {
	postForm := func(router *gin.Engine, values url.Values) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/tickets", strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("creates ticket and redirects to the listing", func(t *testing.T) {
		router, _, mocks := setupHandler(42)

		var captured usecases.CreateTicketCommand
		mocks.create.executeFunc = func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
			captured = cmd
			return &usecases.CreateTicketResult{TicketID: 7}, nil
		}

		w := postForm(router, url.Values{
			"title":       {"Printer broken"},
			"description": {"Paper jam in tray 2"},
			"priority":    {"high"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/tickets", w.Header().Get("Location"))
		assert.Equal(t, "Printer broken", captured.Title)
		assert.Equal(t, uint(42), captured.CreatorID)
	})

	t.Run("owner comes from the session, not the form", func(t *testing.T) {
		router, _, mocks := setupHandler(42)

		var captured usecases.CreateTicketCommand
		mocks.create.executeFunc = func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
			captured = cmd
			return &usecases.CreateTicketResult{TicketID: 8}, nil
		}

		w := postForm(router, url.Values{
			"title":       {"Spoofed owner"},
			"description": {"d"},
			"priority":    {"low"},
			"user_id":     {"999"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, uint(42), captured.CreatorID)
	})

	t.Run("unauthenticated request is rejected", func(t *testing.T) {
		router, renderer, _ := setupHandler(0)

		w := postForm(router, url.Values{
			"title":       {"No session"},
			"description": {"d"},
			"priority":    {"low"},
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "error.html", renderer.name)
	})

	t.Run("missing title re-renders the form", func(t *testing.T) {
		router, renderer, _ := setupHandler(42)

		w := postForm(router, url.Values{
			"description": {"d"},
			"priority":    {"low"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "tickets/create.html", renderer.name)
		assert.NotEmpty(t, renderer.data["error"])
	})

	t.Run("unknown priority re-renders the form", func(t *testing.T) {
		router, renderer, _ := setupHandler(42)

		w := postForm(router, url.Values{
			"title":       {"t"},
			"description": {"d"},
			"priority":    {"catastrophic"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "tickets/create.html", renderer.name)
	})
}

func TestShow(t *testing.T) {
	t.Run("renders ticket page", func(t *testing.T) {
		router, renderer, mocks := setupHandler(42)
		mocks.get.executeFunc = func(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDTO, error) {
			return &dto.TicketDTO{ID: query.TicketID, Title: "Printer broken"}, nil
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tickets/5", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tickets/show.html", renderer.name)
	})

	t.Run("missing ticket is a 404 page", func(t *testing.T) {
		router, renderer, mocks := setupHandler(42)
		mocks.get.executeFunc = func(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDTO, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tickets/999", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "error.html", renderer.name)
	})

	t.Run("non-numeric id is a 404 page", func(t *testing.T) {
		router, renderer, _ := setupHandler(42)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tickets/abc", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "error.html", renderer.name)
	})
}

func TestDestroy(t *testing.T) {
	t.Run("deletes and redirects to the listing", func(t *testing.T) {
		router, _, mocks := setupHandler(42)

		var captured usecases.DeleteTicketCommand
		mocks.delete.executeFunc = func(ctx context.Context, cmd usecases.DeleteTicketCommand) (*usecases.DeleteTicketResult, error) {
			captured = cmd
			return &usecases.DeleteTicketResult{TicketID: cmd.TicketID}, nil
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/tickets/5", nil))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/tickets", w.Header().Get("Location"))
		assert.Equal(t, uint(5), captured.TicketID)
	})

	t.Run("missing ticket is a 404 page", func(t *testing.T) {
		router, renderer, mocks := setupHandler(42)
		mocks.delete.executeFunc = func(ctx context.Context, cmd usecases.DeleteTicketCommand) (*usecases.DeleteTicketResult, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/tickets/999", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "error.html", renderer.name)
	})
}

func TestEditAndUpdateAreStubs(t *testing.T) {
	router, renderer, _ := setupHandler(42)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tickets/5/edit", nil))
	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Equal(t, "error.html", renderer.name)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/tickets/5", nil))
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

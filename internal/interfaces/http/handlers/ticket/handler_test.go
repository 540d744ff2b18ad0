package ticket

import (
	"context"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/interfaces/http/handlers/testutil"
	"helpdesk/internal/shared/errors"
)

type mockCreateTicketUC struct {
	result  *usecases.CreateTicketResult
	err     error
	lastCmd usecases.CreateTicketCommand
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockUpdateTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockUpdateTicketUC) Execute(_ context.Context, _ usecases.UpdateTicketCommand) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockSubmitRatingUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockSubmitRatingUC) Execute(_ context.Context, _ usecases.SubmitRatingCommand) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockAppendImagesUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockAppendImagesUC) Execute(_ context.Context, _ usecases.AppendImagesCommand) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockDeleteTicketUC struct {
	err     error
	deleted []uint
}

func (m *mockDeleteTicketUC) Execute(_ context.Context, cmd usecases.DeleteTicketCommand) error {
	m.deleted = append(m.deleted, cmd.TicketID)
	return m.err
}

type mockGetTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, _ usecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockListTicketsUC struct {
	result    []ticketdto.TicketListItemDTO
	err       error
	lastQuery usecases.ListTicketsQuery
}

func (m *mockListTicketsUC) Execute(_ context.Context, query usecases.ListTicketsQuery) ([]ticketdto.TicketListItemDTO, error) {
	m.lastQuery = query
	return m.result, m.err
}

type noopUploader struct{}

func (noopUploader) SaveUpload(fileHeader *multipart.FileHeader) (string, error) {
	return "/uploads/" + fileHeader.Filename, nil
}

type handlerMocks struct {
	create *mockCreateTicketUC
	update *mockUpdateTicketUC
	rating *mockSubmitRatingUC
	images *mockAppendImagesUC
	delete *mockDeleteTicketUC
	get    *mockGetTicketUC
	list   *mockListTicketsUC
}

func newHandler() (*TicketHandler, *handlerMocks) {
	m := &handlerMocks{
		create: &mockCreateTicketUC{},
		update: &mockUpdateTicketUC{},
		rating: &mockSubmitRatingUC{},
		images: &mockAppendImagesUC{},
		delete: &mockDeleteTicketUC{},
		get:    &mockGetTicketUC{},
		list:   &mockListTicketsUC{},
	}
	h := NewTicketHandler(m.create, m.update, m.rating, m.images, m.delete, m.get, m.list, noopUploader{}, 5)
	return h, m
}

func TestTicketHandler_CreateTicket_JSON(t *testing.T) {
	h, m := newHandler()
	m.create.result = &usecases.CreateTicketResult{TicketID: 7, Status: "Open", CreatedAt: time.Now()}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", gin.H{
		"title":       "VPN drops",
		"description": "drops every few minutes",
		"assigned_to": 2,
	})
	testutil.SetAuthContext(c, 1)

	h.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(1), m.create.lastCmd.CreatorID)
	assert.Equal(t, uint(2), m.create.lastCmd.AssigneeID)
}

func TestTicketHandler_CreateTicket_MissingFields(t *testing.T) {
	h, _ := newHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", gin.H{
		"title": "no description or assignee",
	})
	testutil.SetAuthContext(c, 1)

	h.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_GetTicket(t *testing.T) {
	h, m := newHandler()
	m.get.result = &ticketdto.TicketDTO{ID: 3, Title: "printer offline", Status: "Open"}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/3", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "3")

	h.GetTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestTicketHandler_GetTicket_NotFound(t *testing.T) {
	h, m := newHandler()
	m.get.err = errors.NewNotFoundError("ticket not found")

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/99", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "99")

	h.GetTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_GetTicket_BadID(t *testing.T) {
	h, _ := newHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/abc", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "abc")

	h.GetTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_ListTickets_ScopesToCallerByDefault(t *testing.T) {
	h, m := newHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	testutil.SetAuthContext(c, 4)

	h.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, m.list.lastQuery.UserID)
	assert.Equal(t, uint(4), *m.list.lastQuery.UserID)
}

func TestTicketHandler_ListTickets_AllScope(t *testing.T) {
	h, m := newHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	testutil.SetAuthContext(c, 4)
	testutil.SetQueryParams(c, map[string]string{"scope": "all"})

	h.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, m.list.lastQuery.UserID)
}

func TestTicketHandler_UpdateTicket(t *testing.T) {
	h, m := newHandler()
	m.update.result = &ticketdto.TicketDTO{ID: 3, Title: "printer offline again", Status: "In Progress"}

	c, w := testutil.NewTestContext(http.MethodPut, "/api/tickets/3", gin.H{
		"title":       "printer offline again",
		"description": "still no response on the office printer",
		"priority":    "High",
	})
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "3")

	h.UpdateTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTicketHandler_UpdateTicket_UnknownPriority(t *testing.T) {
	h, _ := newHandler()

	c, w := testutil.NewTestContext(http.MethodPut, "/api/tickets/3", gin.H{
		"title":       "printer offline again",
		"description": "still no response on the office printer",
		"priority":    "Critical",
	})
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "3")

	h.UpdateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_SubmitRating(t *testing.T) {
	h, m := newHandler()
	rating := 4
	m.rating.result = &ticketdto.TicketDTO{ID: 3, Rating: &rating}

	c, w := testutil.NewTestContext(http.MethodPut, "/api/tickets/3/feedback", gin.H{"feedback": 4})
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "3")

	h.SubmitRating(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTicketHandler_SubmitRating_OutOfRange(t *testing.T) {
	h, _ := newHandler()

	c, w := testutil.NewTestContext(http.MethodPut, "/api/tickets/3/feedback", gin.H{"feedback": 9})
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "3")

	h.SubmitRating(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_DeleteTicket(t *testing.T) {
	h, m := newHandler()

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/tickets/11", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "11")

	h.DeleteTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uint{11}, m.delete.deleted)
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/opsdesk/workforce-backend-go/internal/domain/identity"
	"github.com/opsdesk/workforce-backend-go/internal/domain/meeting"
	"github.com/opsdesk/workforce-backend-go/internal/handler/http/middleware"
	"github.com/opsdesk/workforce-backend-go/internal/pkg/queryscope"
	"github.com/opsdesk/workforce-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMeetingService struct {
	bookErr    error
	getErr     error
	listErr    error
	approveErr error

	lastIdent identity.Identity
	lastQuery queryscope.Query
	listResp  meeting.ListMeetingsResponse
}

func (f *fakeMeetingService) Book(ctx context.Context, ident identity.Identity, req meeting.BookMeetingRequest) (meeting.MeetingResponse, error) {
	f.lastIdent = ident
	if f.bookErr != nil {
		return meeting.MeetingResponse{}, f.bookErr
	}
	return meeting.MeetingResponse{ID: "m-1", DoerName: ident.Name, Reason: req.Reason}, nil
}

func (f *fakeMeetingService) Get(ctx context.Context, ident identity.Identity, id string) (meeting.MeetingResponse, error) {
	f.lastIdent = ident
	if f.getErr != nil {
		return meeting.MeetingResponse{}, f.getErr
	}
	return meeting.MeetingResponse{ID: id}, nil
}

func (f *fakeMeetingService) ListPending(ctx context.Context, ident identity.Identity, q queryscope.Query) (meeting.ListMeetingsResponse, error) {
	f.lastIdent = ident
	f.lastQuery = q
	return f.listResp, f.listErr
}

func (f *fakeMeetingService) ListHistory(ctx context.Context, ident identity.Identity, q queryscope.Query) (meeting.ListMeetingsResponse, error) {
	f.lastIdent = ident
	f.lastQuery = q
	return f.listResp, f.listErr
}

func (f *fakeMeetingService) Approve(ctx context.Context, ident identity.Identity, id string) error {
	f.lastIdent = ident
	return f.approveErr
}

func (f *fakeMeetingService) Schedule(ctx context.Context, ident identity.Identity, req meeting.ScheduleMeetingRequest) error {
	f.lastIdent = ident
	return f.approveErr
}

func (f *fakeMeetingService) Complete(ctx context.Context, ident identity.Identity, id string) error {
	f.lastIdent = ident
	return f.approveErr
}

func testMeetingRouter(svc meeting.MeetingService) *chi.Mux {
	h := NewMeetingHandler(svc)
	r := chi.NewRouter()
	r.Route("/meetings", func(r chi.Router) {
		r.Post("/", h.Book)
		r.Get("/pending", h.ListPending)
		r.Get("/history", h.ListHistory)
		r.Get("/{id}", h.Get)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireApprover)
			r.Post("/{id}/approve", h.Approve)
			r.Post("/{id}/schedule", h.Schedule)
		})
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminOnly)
			r.Post("/{id}/complete", h.Complete)
		})
	})
	return r
}

func doRequest(t *testing.T, router http.Handler, ident *identity.Identity, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if ident != nil {
		req = req.WithContext(middleware.WithIdentity(req.Context(), *ident))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func testDoer() *identity.Identity {
	return &identity.Identity{ID: "d-1", Name: "Rahul", Role: identity.RoleDoer}
}

func testManager() *identity.Identity {
	return &identity.Identity{ID: "m-1", Name: "Priya", Role: identity.RoleManager}
}

func testAdmin() *identity.Identity {
	return &identity.Identity{ID: "a-1", Name: "Root", Role: identity.RoleAdmin}
}

func TestListPendingPassesQueryThrough(t *testing.T) {
	svc := &fakeMeetingService{}
	router := testMeetingRouter(svc)

	rec := doRequest(t, router, testDoer(), http.MethodGet,
		"/meetings/pending?sort=reason&dir=desc&page=3&filter_status=Pending&filter_employee=rahul&note=ignored", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "reason", svc.lastQuery.Sort)
	assert.Equal(t, "desc", svc.lastQuery.Dir)
	assert.Equal(t, 3, svc.lastQuery.Page)
	assert.Equal(t, map[string]string{
		"filter_status":   "Pending",
		"filter_employee": "rahul",
	}, svc.lastQuery.Filters)
	assert.Equal(t, "Rahul", svc.lastIdent.Name)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
}

func TestListPendingSortToggleFromLastState(t *testing.T) {
	svc := &fakeMeetingService{}
	router := testMeetingRouter(svc)

	// Same column as last time, no explicit dir: the toggle flips it.
	doRequest(t, router, testDoer(), http.MethodGet,
		"/meetings/pending?sort=reason&last_sort=reason&last_dir=asc", nil)
	assert.Equal(t, "desc", svc.lastQuery.Dir)

	// New column starts ascending.
	doRequest(t, router, testDoer(), http.MethodGet,
		"/meetings/pending?sort=status&last_sort=reason&last_dir=desc", nil)
	assert.Equal(t, "asc", svc.lastQuery.Dir)
}

func TestListEnvelopeCarriesPaginationMeta(t *testing.T) {
	svc := &fakeMeetingService{listResp: meeting.ListMeetingsResponse{
		TotalCount: 61,
		Page:       3,
		Limit:      30,
		TotalPages: 3,
		Meetings:   []meeting.MeetingResponse{{ID: "m-9", DoerName: "Rahul"}},
	}}
	router := testMeetingRouter(svc)

	rec := doRequest(t, router, testManager(), http.MethodGet, "/meetings/history", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	meta, ok := envelope["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), meta["page"])
	assert.Equal(t, float64(30), meta["limit"])
	assert.Equal(t, float64(61), meta["total_items"])
	assert.Equal(t, float64(3), meta["total_pages"])

	data, ok := envelope["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 1)
	assert.Equal(t, "m-9", data[0].(map[string]interface{})["id"])
}

func TestListPendingBadPageIgnored(t *testing.T) {
	svc := &fakeMeetingService{}
	router := testMeetingRouter(svc)

	doRequest(t, router, testDoer(), http.MethodGet, "/meetings/pending?page=banana", nil)
	assert.Equal(t, 0, svc.lastQuery.Page)
}

func TestListPendingWithoutIdentityUnauthorized(t *testing.T) {
	router := testMeetingRouter(&fakeMeetingService{})

	rec := doRequest(t, router, nil, http.MethodGet, "/meetings/pending", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookValidationErrorsAs422(t *testing.T) {
	svc := &fakeMeetingService{bookErr: validator.ValidationErrors{
		{Field: "reason", Message: "reason is required"},
	}}
	router := testMeetingRouter(svc)

	rec := doRequest(t, router, testDoer(), http.MethodPost, "/meetings", meeting.BookMeetingRequest{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, false, envelope["success"])
	errField := envelope["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errField["code"])
	details := errField["details"].(map[string]interface{})
	assert.Equal(t, "reason is required", details["reason"])
}

func TestBookMalformedJSON(t *testing.T) {
	router := testMeetingRouter(&fakeMeetingService{})

	req := httptest.NewRequest(http.MethodPost, "/meetings", bytes.NewBufferString("{not json"))
	req = req.WithContext(middleware.WithIdentity(req.Context(), *testDoer()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetNotFound(t *testing.T) {
	svc := &fakeMeetingService{getErr: meeting.ErrMeetingNotFound}
	router := testMeetingRouter(svc)

	rec := doRequest(t, router, testDoer(), http.MethodGet, "/meetings/abc", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeEnvelope(t, rec)
	errField := envelope["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errField["code"])
}

func TestApproveConflictAs409(t *testing.T) {
	svc := &fakeMeetingService{approveErr: meeting.ErrMeetingAlreadyProcessed}
	router := testMeetingRouter(svc)

	rec := doRequest(t, router, testManager(), http.MethodPost, "/meetings/abc/approve", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	envelope := decodeEnvelope(t, rec)
	errField := envelope["error"].(map[string]interface{})
	assert.Equal(t, "CONFLICT", errField["code"])
}

func TestApproveDoerForbiddenByMiddleware(t *testing.T) {
	svc := &fakeMeetingService{}
	router := testMeetingRouter(svc)

	rec := doRequest(t, router, testDoer(), http.MethodPost, "/meetings/abc/approve", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	// The handler never ran.
	assert.Empty(t, svc.lastIdent.ID)
}

func TestCompleteAdminOnlyMiddleware(t *testing.T) {
	svc := &fakeMeetingService{}
	router := testMeetingRouter(svc)

	rec := doRequest(t, router, testManager(), http.MethodPost, "/meetings/abc/complete", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, router, testAdmin(), http.MethodPost, "/meetings/abc/complete", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestScheduleSuccessEnvelope(t *testing.T) {
	svc := &fakeMeetingService{}
	router := testMeetingRouter(svc)

	rec := doRequest(t, router, testManager(), http.MethodPost, "/meetings/abc/schedule",
		meeting.ScheduleMeetingRequest{DateTime: "2024-03-12 14:30"})
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, "Meeting scheduled successfully", envelope["message"])
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opsdesk/workforce-backend-go/internal/domain/meeting"
	"github.com/opsdesk/workforce-backend-go/internal/handler/http/middleware"
	"github.com/opsdesk/workforce-backend-go/internal/handler/http/response"
)

type MeetingHandler interface {
	Book(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListHistory(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Schedule(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
}

type MeetingHandlerImpl struct {
	meetingService meeting.MeetingService
}

func NewMeetingHandler(meetingService meeting.MeetingService) MeetingHandler {
	return &MeetingHandlerImpl{meetingService: meetingService}
}

// Book implements MeetingHandler.
func (h *MeetingHandlerImpl) Book(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.CallerIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req meeting.BookMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Book decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.meetingService.Book(r.Context(), ident, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Meeting booked successfully", created)
}

// Get implements MeetingHandler.
func (h *MeetingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.CallerIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	meetingID := chi.URLParam(r, "id")
	if meetingID == "" {
		response.BadRequest(w, "Meeting ID is required", nil)
		return
	}

	m, err := h.meetingService.Get(r.Context(), ident, meetingID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, m)
}

// ListPending implements MeetingHandler.
func (h *MeetingHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.CallerIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	list, err := h.meetingService.ListPending(r.Context(), ident, parseListQuery(r))
	if err != nil {
		slog.Error("ListPending meetings failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Meetings, listMeta(list.Page, list.Limit, list.TotalCount, list.TotalPages))
}

// ListHistory implements MeetingHandler.
func (h *MeetingHandlerImpl) ListHistory(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.CallerIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	list, err := h.meetingService.ListHistory(r.Context(), ident, parseListQuery(r))
	if err != nil {
		slog.Error("ListHistory meetings failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Meetings, listMeta(list.Page, list.Limit, list.TotalCount, list.TotalPages))
}

// Approve implements MeetingHandler.
func (h *MeetingHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.CallerIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	meetingID := chi.URLParam(r, "id")
	if meetingID == "" {
		response.BadRequest(w, "Meeting ID is required", nil)
		return
	}

	if err := h.meetingService.Approve(r.Context(), ident, meetingID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Meeting approved successfully", nil)
}

// Schedule implements MeetingHandler.
func (h *MeetingHandlerImpl) Schedule(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.CallerIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req meeting.ScheduleMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Schedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.meetingService.Schedule(r.Context(), ident, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Meeting scheduled successfully", nil)
}

// Complete implements MeetingHandler.
func (h *MeetingHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.CallerIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	meetingID := chi.URLParam(r, "id")
	if meetingID == "" {
		response.BadRequest(w, "Meeting ID is required", nil)
		return
	}

	if err := h.meetingService.Complete(r.Context(), ident, meetingID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Meeting completed successfully", nil)
}

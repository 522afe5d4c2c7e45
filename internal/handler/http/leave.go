package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opsdesk/workforce-backend-go/internal/domain/leave"
	"github.com/opsdesk/workforce-backend-go/internal/handler/http/middleware"
	"github.com/opsdesk/workforce-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	File(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListHistory(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// File implements LeaveHandler.
func (h *LeaveHandlerImpl) File(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.CallerIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.FileLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("File decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.File(r.Context(), ident, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request filed successfully", created)
}

// Get implements LeaveHandler.
func (h *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.CallerIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	lr, err := h.leaveService.Get(r.Context(), ident, requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, lr)
}

// ListPending implements LeaveHandler.
func (h *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.CallerIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	list, err := h.leaveService.ListPending(r.Context(), ident, parseListQuery(r))
	if err != nil {
		slog.Error("ListPending leave requests failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.LeaveRequests, listMeta(list.Page, list.Limit, list.TotalCount, list.TotalPages))
}

// ListHistory implements LeaveHandler.
func (h *LeaveHandlerImpl) ListHistory(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.CallerIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	list, err := h.leaveService.ListHistory(r.Context(), ident, parseListQuery(r))
	if err != nil {
		slog.Error("ListHistory leave requests failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.LeaveRequests, listMeta(list.Page, list.Limit, list.TotalCount, list.TotalPages))
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.CallerIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	if err := h.leaveService.Approve(r.Context(), ident, requestID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved successfully", nil)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.CallerIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.RejectLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Reject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.leaveService.Reject(r.Context(), ident, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected successfully", nil)
}

// Cancel implements LeaveHandler.
func (h *LeaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.CallerIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.CancelLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Cancel decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.leaveService.Cancel(r.Context(), ident, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled successfully", nil)
}

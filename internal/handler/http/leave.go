package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/leave"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CalculateDays(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
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

// CalculateDays implements LeaveHandler.
func (h *LeaveHandlerImpl) CalculateDays(w http.ResponseWriter, r *http.Request) {
	calcReq := leave.CalculateDaysRequest{}
	if v := queryString(r, "start_date"); v != nil {
		calcReq.StartDate = *v
	}
	if v := queryString(r, "end_date"); v != nil {
		calcReq.EndDate = *v
	}

	calcResponse, err := h.leaveService.CalculateDays(r.Context(), calcReq)
	if err != nil {
		slog.Error("CalculateDays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, calcResponse)
}

// Submit implements LeaveHandler.
func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var submitReq leave.SubmitLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("Submit leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	leaveResponse, err := h.leaveService.Submit(r.Context(), submitReq)
	if err != nil {
		slog.Error("Submit leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request submitted", "leave_id", leaveResponse.ID)
	response.Created(w, "Leave request submitted successfully", leaveResponse)
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveFilter{
		Status:    queryString(r, "status"),
		LeaveType: queryString(r, "leave_type"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	listResponse, err := h.leaveService.ListMine(r.Context(), filter)
	if err != nil {
		slog.Error("ListMine leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, listResponse.Leaves, &response.Meta{
		Page:       listResponse.Page,
		Limit:      listResponse.Limit,
		TotalItems: listResponse.Total,
		TotalPages: totalPages(listResponse.Total, listResponse.Limit),
	})
}

// Get implements LeaveHandler.
func (h *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	leaveResponse, err := h.leaveService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Get leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaveResponse)
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveFilter{
		EmployeeID: queryString(r, "employee_id"),
		Status:     queryString(r, "status"),
		LeaveType:  queryString(r, "leave_type"),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}

	listResponse, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, listResponse.Leaves, &response.Meta{
		Page:       listResponse.Page,
		Limit:      listResponse.Limit,
		TotalItems: listResponse.Total,
		TotalPages: totalPages(listResponse.Total, listResponse.Limit),
	})
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	leaveResponse, err := h.leaveService.Approve(r.Context(), id)
	if err != nil {
		slog.Error("Approve leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request approved", "leave_id", id)
	response.SuccessWithMessage(w, "Leave request approved", leaveResponse)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var rejectReq leave.RejectLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&rejectReq); err != nil {
		slog.Error("Reject leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	rejectReq.ID = chi.URLParam(r, "id")

	leaveResponse, err := h.leaveService.Reject(r.Context(), rejectReq)
	if err != nil {
		slog.Error("Reject leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request rejected", "leave_id", rejectReq.ID)
	response.SuccessWithMessage(w, "Leave request rejected", leaveResponse)
}

// Cancel implements LeaveHandler.
func (h *LeaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	leaveResponse, err := h.leaveService.Cancel(r.Context(), id)
	if err != nil {
		slog.Error("Cancel leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request cancelled", "leave_id", id)
	response.SuccessWithMessage(w, "Leave request cancelled", leaveResponse)
}

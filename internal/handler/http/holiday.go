package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/holiday"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq holiday.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	holidayResponse, err := h.holidayService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Holiday created", "holiday_id", holidayResponse.ID)
	response.Created(w, "Holiday created successfully", holidayResponse)
}

// Get implements HolidayHandler.
func (h *HolidayHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	holidayResponse, err := h.holidayService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Get holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidayResponse)
}

// List implements HolidayHandler.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.holidayService.List(r.Context())
	if err != nil {
		slog.Error("List holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// Update implements HolidayHandler.
func (h *HolidayHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq holiday.UpdateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	holidayResponse, err := h.holidayService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Holiday updated", "holiday_id", updateReq.ID)
	response.SuccessWithMessage(w, "Holiday updated successfully", holidayResponse)
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.holidayService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Holiday deleted", "holiday_id", id)
	response.SuccessWithDeleted(w, "Holiday deleted successfully")
}

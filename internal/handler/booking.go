package handler

import (
	"encoding/json"
	"net/http"

	"confbook/internal/coordinator"
	httputil "confbook/pkg/http"
	"confbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

// Book admits or waitlists a booking request.
func (h *Handler) Book(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}
	if err := h.validator.ValidateBook(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	res, err := h.coordinator.Book(r.Context(), req.ConferenceID, req.UserID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, res)
}

// Cancel voids a booking and reports the promoted waitlist head, if any.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	res, err := h.coordinator.Cancel(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, res)
}

// Confirm claims the seat held open for a confirmable booking.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.coordinator.Confirm(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, coordinator.BookResult{BookingID: id, Status: model.StatusConfirmed})
}

type statusResponse struct {
	BookingID string              `json:"booking_id"`
	Status    model.BookingStatus `json:"status"`
}

// Status reports a booking's current lifecycle state.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	status, err := h.coordinator.Status(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, statusResponse{BookingID: id, Status: status})
}

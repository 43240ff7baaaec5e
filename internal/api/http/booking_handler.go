package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentacar-crm/internal/domain"
	"rentacar-crm/internal/service"
	"rentacar-crm/internal/store"
)

// BookingHandler exposes the booking store and mutation engine to the agent
// UI.
type BookingHandler struct {
	store      *store.BookingStore
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingStore *store.BookingStore, bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{store: bookingStore, bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	Booking   domain.Booking `json:"booking"`
	AgentName string         `json:"agentName"`
}

type modifyBookingRequest struct {
	Updates   []service.FieldUpdate `json:"updates"`
	FeeCharge string                `json:"feeCharge"`
	AgentName string                `json:"agentName"`
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.store.FetchAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	booking, err := h.store.FetchByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"booking": booking})
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	booking, err := h.bookingSvc.CreateBooking(r.Context(), &req.Booking, req.AgentName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"booking": booking})
}

func (h *BookingHandler) Modify(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req modifyBookingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	booking, err := h.bookingSvc.ModifyBooking(r.Context(), id, req.Updates, req.FeeCharge, req.AgentName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"booking": booking})
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	deleted, err := h.bookingSvc.DeleteBooking(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": deleted})
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var input service.CancelInput
	if !decodeBody(w, r, &input) {
		return
	}
	result, err := h.bookingSvc.CancelBooking(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ClearCurrent resets the current booking and all operation statuses, the
// view-teardown hook of the agent UI.
func (h *BookingHandler) ClearCurrent(w http.ResponseWriter, r *http.Request) {
	h.store.Clear()
	w.WriteHeader(http.StatusNoContent)
}

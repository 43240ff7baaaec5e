package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter builds the agent-facing HTTP surface.
func NewRouter(
	bookings *BookingHandler,
	notes *NoteHandler,
	dashboardH *DashboardHandler,
	companies *CompanyHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/bookings", bookings.List).Methods(http.MethodGet)
	api.HandleFunc("/bookings", bookings.Create).Methods(http.MethodPost)
	api.HandleFunc("/bookings/cancel", bookings.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/bookings/current", bookings.ClearCurrent).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{id}", bookings.Get).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", bookings.Modify).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{id}", bookings.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/bookings/{id}/notes", notes.Add).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}/notes/{noteId}", notes.Update).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{id}/notes/{noteId}", notes.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/dashboard", dashboardH.Query).Methods(http.MethodGet)

	api.HandleFunc("/rental-companies", companies.List).Methods(http.MethodGet)
	api.HandleFunc("/rental-companies", companies.Ensure).Methods(http.MethodPost)

	return r
}

package http

import (
	"net/http"
	"strconv"
	"sync"

	"rentacar-crm/internal/dashboard"
	"rentacar-crm/internal/store"
)

// DashboardHandler runs the query pipeline over the store's bookings list.
// It owns the agent's view state so repeated sorts toggle direction and a
// changed search term or tab snaps back to page 1.
type DashboardHandler struct {
	store *store.BookingStore

	mu    sync.Mutex
	state *dashboard.QueryState
}

func NewDashboardHandler(bookingStore *store.BookingStore, pageSize int) *DashboardHandler {
	return &DashboardHandler{
		store: bookingStore,
		state: dashboard.NewQueryState(pageSize),
	}
}

// Query applies any parameters present on the request to the view state, then
// returns the resulting page.
//
//	sort   — column key; sorting the active column again toggles direction
//	tab    — ALL, BOOKED, MODIFIED or CANCELLED
//	search — substring matched against name, email, phone
//	page   — page number
func (h *DashboardHandler) Query(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	h.mu.Lock()
	if v := params.Get("sort"); v != "" {
		h.state.ToggleSort(dashboard.SortKey(v))
	}
	if params.Has("tab") {
		h.state.SetTab(dashboard.Tab(params.Get("tab")))
	}
	if params.Has("search") {
		h.state.SetSearch(params.Get("search"))
	}
	if v := params.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			h.state.SetPage(page)
		}
	}
	query := h.state.Query()
	h.mu.Unlock()

	page := dashboard.Run(h.store.Bookings(), query)
	writeJSON(w, http.StatusOK, page)
}

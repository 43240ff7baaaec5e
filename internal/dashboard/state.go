package dashboard

// QueryState tracks the dashboard parameters across interactions: repeated
// sorting by the same key toggles direction, and changing the search term or
// the status tab resets the page to 1.
type QueryState struct {
	query Query
}

// NewQueryState returns the default dashboard view: newest bookings first,
// all statuses, first page.
func NewQueryState(pageSize int) *QueryState {
	return &QueryState{query: Query{
		Sort:      SortCreatedAt,
		Direction: Descending,
		Tab:       TabAll,
		Page:      1,
		PageSize:  pageSize,
	}}
}

// ToggleSort sorts by the given key, flipping direction when the key is
// already active.
func (s *QueryState) ToggleSort(key SortKey) {
	if s.query.Sort == key {
		if s.query.Direction == Ascending {
			s.query.Direction = Descending
		} else {
			s.query.Direction = Ascending
		}
		return
	}
	s.query.Sort = key
	s.query.Direction = Ascending
}

// SetSearch updates the search term and resets to the first page.
func (s *QueryState) SetSearch(term string) {
	if s.query.Search == term {
		return
	}
	s.query.Search = term
	s.query.Page = 1
}

// SetTab updates the status tab and resets to the first page.
func (s *QueryState) SetTab(tab Tab) {
	if s.query.Tab == tab {
		return
	}
	s.query.Tab = tab
	s.query.Page = 1
}

// SetPage moves to the given page.
func (s *QueryState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.query.Page = page
}

// Query returns the current parameter set.
func (s *QueryState) Query() Query {
	return s.query
}

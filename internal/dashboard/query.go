package dashboard

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"rentacar-crm/internal/domain"
)

// SortKey names a sortable dashboard column.
type SortKey string

const (
	SortCreatedAt     SortKey = "createdAt"
	SortFullName      SortKey = "fullName"
	SortRentalCompany SortKey = "rentalCompany"
	SortMCO           SortKey = "mco"
	SortPickupDate    SortKey = "pickupDate"
	SortSalesAgent    SortKey = "salesAgent"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Tab filters the list by booking status. TabAll shows everything.
type Tab string

const TabAll Tab = "ALL"

// Query is one complete set of dashboard parameters. Run is a pure function
// of (list, Query): identical inputs always yield identical ordered output.
type Query struct {
	Sort      SortKey
	Direction Direction
	Tab       Tab
	Search    string
	Page      int
	PageSize  int
}

// Page is one page of dashboard rows plus paging metadata.
type Page struct {
	Bookings   []domain.Booking `json:"bookings"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalRows  int              `json:"totalRows"`
	TotalPages int              `json:"totalPages"`
}

// Run executes the sort → filter → paginate pipeline. The input list is never
// mutated.
func Run(list []domain.Booking, q Query) Page {
	rows := make([]domain.Booking, len(list))
	copy(rows, list)

	sortRows(rows, q.Sort, q.Direction)
	rows = filterRows(rows, q.Tab, q.Search)
	return paginate(rows, q.Page, q.PageSize)
}

// sortRows orders ascending with a stable sort, then reverses for descending,
// so toggling the direction of the same key reverses the output exactly.
func sortRows(rows []domain.Booking, key SortKey, dir Direction) {
	if key == "" {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return lessValue(sortValue(&rows[i], key), sortValue(&rows[j], key))
	})
	if dir == Descending {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
}

func sortValue(b *domain.Booking, key SortKey) string {
	switch key {
	case SortCreatedAt:
		return b.CreatedAt
	case SortFullName:
		return b.FullName
	case SortRentalCompany:
		return b.RentalCompany
	case SortMCO:
		return b.MCO
	case SortPickupDate:
		return b.PickupDate
	case SortSalesAgent:
		return b.SalesAgent
	default:
		return ""
	}
}

// lessValue compares two cell values ascending. Empty values sort last, so
// they come first once a descending sort reverses the slice. Both-parseable
// dates compare as instants, both-parseable numbers compare numerically,
// everything else compares as case-insensitive text.
func lessValue(a, b string) bool {
	if a == "" || b == "" {
		return b == "" && a != ""
	}
	if at, aok := parseDate(a); aok {
		if bt, bok := parseDate(b); bok {
			return at.Before(bt)
		}
	}
	if an, aok := parseNumber(a); aok {
		if bn, bok := parseNumber(b); bok {
			return an.LessThan(bn)
		}
	}
	return strings.ToLower(a) < strings.ToLower(b)
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02",
	"01/02/2006",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseNumber(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// filterRows keeps rows matching the status tab AND the search term. The term
// matches case-insensitively against name, email, or phone.
func filterRows(rows []domain.Booking, tab Tab, search string) []domain.Booking {
	term := strings.ToLower(strings.TrimSpace(search))
	out := rows[:0]
	for _, b := range rows {
		if tab != "" && tab != TabAll && b.Status != domain.BookingStatus(tab) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(b.FullName), term) &&
			!strings.Contains(strings.ToLower(b.Email), term) &&
			!strings.Contains(strings.ToLower(b.Phone), term) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func paginate(rows []domain.Booking, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = 10
	}
	totalRows := len(rows)
	totalPages := (totalRows + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalRows {
		start = totalRows
	}
	if end > totalRows {
		end = totalRows
	}

	return Page{
		Bookings:   rows[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalRows:  totalRows,
		TotalPages: totalPages,
	}
}

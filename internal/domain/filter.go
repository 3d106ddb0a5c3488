package domain

// DateRange preset used by the admin dashboard
type DateRange string

const (
	DateRangeAll   DateRange = "all"
	DateRangeToday DateRange = "today"
	DateRangeWeek  DateRange = "week"
	DateRangeMonth DateRange = "month"
)

// SortField of the admin dashboard
type SortField string

const (
	SortByDate   SortField = "date"
	SortByUser   SortField = "user"
	SortByOven   SortField = "oven"
	SortByStatus SortField = "status"
)

// SortOrder direction
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// BookingsFilter фильтр бронирований для панели администратора
// Пустые поля означают отсутствие фильтра
type BookingsFilter struct {
	Status    *ReservationStatus
	UserID    *string
	OvenID    *string
	Search    string
	DateRange DateRange
	SortBy    SortField
	SortOrder SortOrder
}

// Normalize fills defaults: all dates, sort by date descending
func (f BookingsFilter) Normalize() BookingsFilter {
	if f.DateRange == "" {
		f.DateRange = DateRangeAll
	}
	if f.SortBy == "" {
		f.SortBy = SortByDate
	}
	if f.SortOrder == "" {
		f.SortOrder = SortDesc
	}
	return f
}

// IsValid checks enum values of the filter
func (f BookingsFilter) IsValid() bool {
	switch f.DateRange {
	case "", DateRangeAll, DateRangeToday, DateRangeWeek, DateRangeMonth:
	default:
		return false
	}
	switch f.SortBy {
	case "", SortByDate, SortByUser, SortByOven, SortByStatus:
	default:
		return false
	}
	switch f.SortOrder {
	case "", SortAsc, SortDesc:
	default:
		return false
	}
	if f.Status != nil && !f.Status.IsValid() {
		return false
	}
	return true
}

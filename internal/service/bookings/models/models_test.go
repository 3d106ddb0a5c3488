package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
)

var now = time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)

func views() []BookingView {
	return []BookingView{
		{ID: "b1", UserID: "u1", OvenID: "o1", Title: "Sintering", UserName: "Alice", UserEmail: "alice@lab.org", OvenName: "Carbolite", Status: "active", StartTime: now.Add(2 * time.Hour)},
		{ID: "b2", UserID: "u2", OvenID: "o2", Title: "Drying", UserName: "bob", UserEmail: "bob@lab.org", OvenName: "Nabertherm", Status: "completed", StartTime: now.Add(-3 * 24 * time.Hour)},
		{ID: "b3", UserID: "u1", OvenID: "o2", Title: "Annealing", UserName: "Alice", UserEmail: "alice@lab.org", OvenName: "Nabertherm", Status: "cancelled", StartTime: now.Add(-20 * 24 * time.Hour)},
		{ID: "b4", UserID: "u3", OvenID: "o1", Title: "Curing", UserName: "Carol", UserEmail: "carol@chem.org", OvenName: "Carbolite", Status: "active", StartTime: now.Add(5 * 24 * time.Hour)},
	}
}

func ids(vs []BookingView) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}

func TestFilterAndSort_DefaultIsDateDescending(t *testing.T) {
	got := FilterAndSort(views(), domain.BookingsFilter{}, now, time.UTC)
	assert.Equal(t, []string{"b4", "b1", "b2", "b3"}, ids(got))
}

func TestFilterAndSort_Filters(t *testing.T) {
	active := domain.StatusActive
	u1 := "u1"
	o2 := "o2"

	tests := []struct {
		name   string
		filter domain.BookingsFilter
		want   []string
	}{
		{"status", domain.BookingsFilter{Status: &active, SortOrder: domain.SortAsc}, []string{"b1", "b4"}},
		{"user", domain.BookingsFilter{UserID: &u1, SortOrder: domain.SortAsc}, []string{"b3", "b1"}},
		{"oven", domain.BookingsFilter{OvenID: &o2, SortOrder: domain.SortAsc}, []string{"b3", "b2"}},
		{"search by email, case insensitive", domain.BookingsFilter{Search: "CHEM"}, []string{"b4"}},
		{"search by oven name", domain.BookingsFilter{Search: "naber", SortOrder: domain.SortAsc}, []string{"b3", "b2"}},
		{"today", domain.BookingsFilter{DateRange: domain.DateRangeToday}, []string{"b1"}},
		{"week excludes future days", domain.BookingsFilter{DateRange: domain.DateRangeWeek}, []string{"b1", "b2"}},
		{"month", domain.BookingsFilter{DateRange: domain.DateRangeMonth}, []string{"b1", "b2", "b3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterAndSort(views(), tt.filter, now, time.UTC)))
		})
	}
}

func TestFilterAndSort_SortTieBreakByID(t *testing.T) {
	got := FilterAndSort(views(), domain.BookingsFilter{SortBy: domain.SortByUser, SortOrder: domain.SortAsc}, now, time.UTC)
	assert.Equal(t, []string{"b1", "b3", "b2", "b4"}, ids(got))

	got = FilterAndSort(views(), domain.BookingsFilter{SortBy: domain.SortByOven, SortOrder: domain.SortDesc}, now, time.UTC)
	assert.Equal(t, []string{"b2", "b3", "b1", "b4"}, ids(got))
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	in := views()
	_ = FilterAndSort(in, domain.BookingsFilter{SortBy: domain.SortByStatus}, now, time.UTC)
	assert.Equal(t, views(), in)
}

func TestBuildView(t *testing.T) {
	vc := NewViewContext(
		[]domain.User{{ID: "u1", Name: "Alice", Email: "alice@lab.org"}},
		[]domain.Oven{{ID: "o1", Name: "Carbolite"}},
		"u1", now, time.Hour,
	)

	r := domain.Reservation{ID: "b1", RequesterID: "u1", ResourceID: "o1", Status: domain.StatusActive, Start: now.Add(2 * time.Hour)}
	v := BuildView(&r, vc)
	assert.Equal(t, "Alice", v.UserName)
	assert.Equal(t, "Carbolite", v.OvenName)
	assert.True(t, v.CanCancel)

	r.Start = now.Add(30 * time.Minute)
	assert.False(t, BuildView(&r, vc).CanCancel)

	orphan := domain.Reservation{ID: "b2", RequesterID: "ghost", ResourceID: "gone", Status: domain.StatusActive, Start: now.Add(2 * time.Hour)}
	v = BuildView(&orphan, vc)
	assert.Equal(t, UnknownUserName, v.UserName)
	assert.Equal(t, UnknownOvenName, v.OvenName)
	assert.False(t, v.CanCancel)
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(
		[]domain.Oven{{Status: domain.OvenStatusActive}, {Status: domain.OvenStatusMaintenance}, {Status: domain.OvenStatusActive}},
		[]domain.User{{ID: "u1"}, {ID: "u2"}},
		5, 3,
	)
	assert.Equal(t, Stats{TotalOvens: 3, AvailableOvens: 2, ActiveBookings: 5, TotalUsers: 2, FilteredBookings: 3}, stats)
}

func TestBuildAdminCancellationReason(t *testing.T) {
	got, err := BuildAdminCancellationReason("Overlap", "")
	require.NoError(t, err)
	assert.Equal(t, "Overlap", got)

	got, err = BuildAdminCancellationReason("Personal Request", " family emergency ")
	require.NoError(t, err)
	assert.Equal(t, "Personal Request: family emergency", got)

	_, err = BuildAdminCancellationReason("Personal Request", "  ")
	assert.ErrorIs(t, err, ErrDetailsRequired)

	_, err = BuildAdminCancellationReason("", "")
	assert.ErrorIs(t, err, ErrReasonRequired)

	_, err = BuildAdminCancellationReason("Because", "")
	assert.ErrorIs(t, err, ErrUnknownReason)
}

func TestListBookingsRequest_ToDomainFilter(t *testing.T) {
	status := "active"
	f, err := (&ListBookingsRequest{Status: &status, SortBy: "oven"}).ToDomainFilter()
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, *f.Status)
	assert.Equal(t, domain.SortDesc, f.SortOrder)

	bad := "pending"
	_, err = (&ListBookingsRequest{Status: &bad}).ToDomainFilter()
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = (&ListBookingsRequest{DateRange: "year"}).ToDomainFilter()
	assert.Error(t, err)
}

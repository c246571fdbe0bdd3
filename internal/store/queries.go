package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotelcore/pkg/domain"
)

// The derived queries below are full scans over the in-memory document.
// Collections are small (a hotel, not a chain), so no caching or indexing is
// kept; results are recomputed on every call.

func strField(rec domain.Record, key string) string {
	v, _ := rec[key].(string)
	return v
}

func numField(rec domain.Record, key string) float64 {
	f, _ := asFloat(rec[key])
	return f
}

// DashboardSummary computes the KPI counters shown on the main dashboard:
// room states, today's arrivals and departures, open kitchen and maintenance
// work, low stock, hall events, and the month's money flow.
func (s *Store) DashboardSummary(ctx context.Context) (summary domain.DashboardSummary, err error) {
	defer s.observe("dashboard_summary", time.Now(), &err)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureReadyLocked(ctx); err != nil {
		return domain.DashboardSummary{}, err
	}

	now := s.nowFn()
	today := now.Format(dateLayout)
	month := now.Format("2006-01")
	summary.RoomsByStatus = make(map[string]int)

	for _, room := range s.state[domain.CollectionRooms] {
		summary.TotalRooms++
		summary.RoomsByStatus[strField(room, "status")]++
	}
	for _, booking := range s.state[domain.CollectionBookings] {
		if strField(booking, "booking_status") == string(domain.BookingCancelled) {
			continue
		}
		if strField(booking, "check_in") == today {
			summary.TodayCheckIns++
		}
		if strField(booking, "check_out") == today {
			summary.TodayCheckOuts++
		}
	}
	for _, order := range s.state[domain.CollectionOrders] {
		if strField(order, "status") == string(domain.OrderPending) {
			summary.PendingOrders++
		}
	}
	for _, item := range s.state[domain.CollectionInventory] {
		if numField(item, "current_stock") <= numField(item, "minimum_stock") {
			summary.LowStockItems++
		}
	}
	for _, req := range s.state[domain.CollectionMaintenanceRequests] {
		if strField(req, "status") == string(domain.MaintenancePending) {
			summary.PendingMaintenance++
		}
	}
	for _, hb := range s.state[domain.CollectionHallBookings] {
		if strField(hb, "event_date") == today && strField(hb, "status") != string(domain.BookingCancelled) {
			summary.TodayHallBookings++
		}
	}
	for _, tr := range s.state[domain.CollectionTransactions] {
		date := strField(tr, "date")
		amount := numField(tr, "amount")
		switch strField(tr, "type") {
		case string(domain.TransactionIncome):
			if strings.HasPrefix(date, month) {
				summary.MonthRevenue += amount
			}
			if date == today {
				summary.TodayRevenue += amount
			}
		case string(domain.TransactionExpense):
			if strings.HasPrefix(date, month) {
				summary.MonthExpenses += amount
			}
		}
	}
	return summary, nil
}

// AvailableRooms returns the rooms flagged available whose existing
// non-cancelled, non-checked-out bookings do not overlap the requested
// half-open interval [checkIn, checkOut). Two intervals [a,b) and [c,d)
// overlap iff c < b && d > a, so a booking ending on checkIn (checkout day
// equals the new arrival day) does not block the room. Dates are
// "YYYY-MM-DD" strings, which order lexicographically.
func (s *Store) AvailableRooms(ctx context.Context, checkIn, checkOut string) (rooms []domain.Record, err error) {
	defer s.observe("available_rooms", time.Now(), &err)
	if checkIn == "" || checkOut == "" {
		return nil, fmt.Errorf("check-in and check-out dates required")
	}
	if checkOut <= checkIn {
		return nil, fmt.Errorf("check-out %s must be after check-in %s", checkOut, checkIn)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureReadyLocked(ctx); err != nil {
		return nil, err
	}

	blocked := make(map[string]bool)
	for _, booking := range s.state[domain.CollectionBookings] {
		status := strField(booking, "booking_status")
		if status == string(domain.BookingCancelled) || status == string(domain.BookingCheckedOut) {
			continue
		}
		existingIn := strField(booking, "check_in")
		existingOut := strField(booking, "check_out")
		if checkIn < existingOut && checkOut > existingIn {
			blocked[strField(booking, "room_id")] = true
		}
	}
	out := make([]domain.Record, 0, len(s.state[domain.CollectionRooms]))
	for _, room := range s.state[domain.CollectionRooms] {
		if strField(room, "status") != string(domain.RoomAvailable) {
			continue
		}
		if blocked[strField(room, domain.FieldID)] {
			continue
		}
		out = append(out, room.Clone())
	}
	return out, nil
}

// FinancialSummary sums transactions dated on or after the period start:
// today is midnight of the current day, week is exactly seven days before
// now (not the start of a calendar week), month is the first of the current
// month, year is January 1st. Income is additionally bucketed by revenue
// category.
func (s *Store) FinancialSummary(ctx context.Context, period domain.Period) (summary domain.FinancialSummary, err error) {
	defer s.observe("financial_summary", time.Now(), &err)

	now := s.nowFn()
	var start time.Time
	switch period {
	case domain.PeriodToday:
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case domain.PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case domain.PeriodMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case domain.PeriodYear:
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		return domain.FinancialSummary{}, fmt.Errorf("unknown period %q", period)
	}
	startDate := start.Format(dateLayout)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureReadyLocked(ctx); err != nil {
		return domain.FinancialSummary{}, err
	}

	summary.Period = period
	summary.Start = startDate
	summary.RevenueByCategory = make(map[string]float64)
	for _, tr := range s.state[domain.CollectionTransactions] {
		if strField(tr, "date") < startDate {
			continue
		}
		amount := numField(tr, "amount")
		switch strField(tr, "type") {
		case string(domain.TransactionIncome):
			summary.Income += amount
			summary.RevenueByCategory[revenueBucket(strField(tr, "category"))] += amount
		case string(domain.TransactionExpense):
			summary.Expenses += amount
		}
	}
	summary.Net = summary.Income - summary.Expenses
	return summary, nil
}

// revenueBucket folds free-form transaction categories into the fixed set of
// dashboard revenue buckets.
func revenueBucket(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "rooms", "room", "booking", "bookings", "accommodation":
		return domain.CategoryRooms
	case "restaurant", "food", "kitchen":
		return domain.CategoryRestaurant
	case "bar", "drinks", "beverages":
		return domain.CategoryBar
	case "hall", "halls", "events", "event":
		return domain.CategoryHall
	case "pool", "swimming":
		return domain.CategoryPool
	default:
		return domain.CategoryOther
	}
}

package store

import (
	"context"
	"testing"
	"time"

	"hotelcore/pkg/domain"
)

// fixedNow pins the clock so "today", "this month", and period starts are
// deterministic: Friday 2024-03-15 10:00 UTC.
var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newQueryStore(t *testing.T) *Store {
	t.Helper()
	s, _ := newTestStore(t, WithClock(func() time.Time { return fixedNow }))
	return s
}

func mustInsert(t *testing.T, s *Store, collection domain.Collection, data domain.Record) domain.Record {
	t.Helper()
	rec, err := s.Insert(context.Background(), collection, data)
	if err != nil {
		t.Fatalf("insert %s: %v", collection, err)
	}
	return rec
}

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	s := newQueryStore(t)

	mustInsert(t, s, domain.CollectionRooms, domain.Record{"room_number": "101", "status": "available"})
	mustInsert(t, s, domain.CollectionRooms, domain.Record{"room_number": "102", "status": "occupied"})
	mustInsert(t, s, domain.CollectionRooms, domain.Record{"room_number": "103", "status": "occupied"})
	mustInsert(t, s, domain.CollectionRooms, domain.Record{"room_number": "104", "status": "maintenance"})

	mustInsert(t, s, domain.CollectionBookings, domain.Record{"check_in": "2024-03-15", "check_out": "2024-03-18", "booking_status": "confirmed"})
	mustInsert(t, s, domain.CollectionBookings, domain.Record{"check_in": "2024-03-12", "check_out": "2024-03-15", "booking_status": "checked_in"})
	// Cancelled bookings never count toward arrivals or departures.
	mustInsert(t, s, domain.CollectionBookings, domain.Record{"check_in": "2024-03-15", "check_out": "2024-03-16", "booking_status": "cancelled"})

	mustInsert(t, s, domain.CollectionOrders, domain.Record{"status": "pending"})
	mustInsert(t, s, domain.CollectionOrders, domain.Record{"status": "served"})

	mustInsert(t, s, domain.CollectionInventory, domain.Record{"name": "rice", "current_stock": 4.0, "minimum_stock": 10.0})
	mustInsert(t, s, domain.CollectionInventory, domain.Record{"name": "oil", "current_stock": 10.0, "minimum_stock": 10.0})
	mustInsert(t, s, domain.CollectionInventory, domain.Record{"name": "salt", "current_stock": 50.0, "minimum_stock": 10.0})

	mustInsert(t, s, domain.CollectionMaintenanceRequests, domain.Record{"status": "pending"})
	mustInsert(t, s, domain.CollectionMaintenanceRequests, domain.Record{"status": "completed"})

	mustInsert(t, s, domain.CollectionHallBookings, domain.Record{"event_date": "2024-03-15", "status": "confirmed"})
	mustInsert(t, s, domain.CollectionHallBookings, domain.Record{"event_date": "2024-03-15", "status": "cancelled"})
	mustInsert(t, s, domain.CollectionHallBookings, domain.Record{"event_date": "2024-03-20", "status": "confirmed"})

	mustInsert(t, s, domain.CollectionTransactions, domain.Record{"type": "income", "amount": 500.0, "date": "2024-03-15"})
	mustInsert(t, s, domain.CollectionTransactions, domain.Record{"type": "income", "amount": 300.0, "date": "2024-03-02"})
	mustInsert(t, s, domain.CollectionTransactions, domain.Record{"type": "expense", "amount": 120.0, "date": "2024-03-10"})
	// Outside the current month on both sides.
	mustInsert(t, s, domain.CollectionTransactions, domain.Record{"type": "income", "amount": 999.0, "date": "2024-02-28"})
	mustInsert(t, s, domain.CollectionTransactions, domain.Record{"type": "expense", "amount": 999.0, "date": "2024-04-01"})

	got, err := s.DashboardSummary(ctx)
	if err != nil {
		t.Fatalf("dashboard summary: %v", err)
	}
	if got.TotalRooms != 4 {
		t.Errorf("TotalRooms = %d, want 4", got.TotalRooms)
	}
	if got.RoomsByStatus["occupied"] != 2 || got.RoomsByStatus["available"] != 1 || got.RoomsByStatus["maintenance"] != 1 {
		t.Errorf("RoomsByStatus = %v", got.RoomsByStatus)
	}
	if got.TodayCheckIns != 1 || got.TodayCheckOuts != 1 {
		t.Errorf("check-ins/outs = %d/%d, want 1/1", got.TodayCheckIns, got.TodayCheckOuts)
	}
	if got.PendingOrders != 1 {
		t.Errorf("PendingOrders = %d, want 1", got.PendingOrders)
	}
	if got.LowStockItems != 2 {
		t.Errorf("LowStockItems = %d, want 2 (at-minimum counts)", got.LowStockItems)
	}
	if got.PendingMaintenance != 1 {
		t.Errorf("PendingMaintenance = %d, want 1", got.PendingMaintenance)
	}
	if got.TodayHallBookings != 1 {
		t.Errorf("TodayHallBookings = %d, want 1", got.TodayHallBookings)
	}
	if got.MonthRevenue != 800 || got.MonthExpenses != 120 || got.TodayRevenue != 500 {
		t.Errorf("money flow = %v/%v/%v, want 800/120/500", got.MonthRevenue, got.MonthExpenses, got.TodayRevenue)
	}
}

func TestAvailableRoomsValidation(t *testing.T) {
	ctx := context.Background()
	s := newQueryStore(t)

	if _, err := s.AvailableRooms(ctx, "", "2024-03-03"); err == nil {
		t.Fatalf("expected error for missing check-in")
	}
	if _, err := s.AvailableRooms(ctx, "2024-03-03", "2024-03-03"); err == nil {
		t.Fatalf("expected error for zero-length stay")
	}
	if _, err := s.AvailableRooms(ctx, "2024-03-05", "2024-03-03"); err == nil {
		t.Fatalf("expected error for inverted range")
	}
}

func TestAvailableRoomsBookingLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newQueryStore(t)

	room := mustInsert(t, s, domain.CollectionRooms, domain.Record{"room_number": "501", "status": "available"})
	roomID := room[domain.FieldID].(string)

	hasRoom := func(in, out string) bool {
		t.Helper()
		rooms, err := s.AvailableRooms(ctx, in, out)
		if err != nil {
			t.Fatalf("available rooms %s..%s: %v", in, out, err)
		}
		for _, r := range rooms {
			if r[domain.FieldID] == roomID {
				return true
			}
		}
		return false
	}

	if !hasRoom("2024-03-01", "2024-03-03") {
		t.Fatalf("unbooked room should be available")
	}

	booking := mustInsert(t, s, domain.CollectionBookings, domain.Record{
		"room_id":        roomID,
		"check_in":       "2024-03-01",
		"check_out":      "2024-03-03",
		"booking_status": "confirmed",
	})

	if hasRoom("2024-03-01", "2024-03-03") {
		t.Fatalf("booked range should block the room")
	}
	if hasRoom("2024-02-28", "2024-03-02") {
		t.Fatalf("overlap on the front edge should block the room")
	}
	// Back-to-back stays share a turnover day: a stay starting on the
	// existing checkout day does not overlap.
	if !hasRoom("2024-03-03", "2024-03-05") {
		t.Fatalf("stay starting on checkout day should be available")
	}
	if !hasRoom("2024-02-27", "2024-03-01") {
		t.Fatalf("stay ending on check-in day should be available")
	}

	// Cancelling releases the room.
	if _, _, err := s.Update(ctx, domain.CollectionBookings, booking[domain.FieldID].(string), domain.Record{"booking_status": "cancelled"}); err != nil {
		t.Fatalf("cancel booking: %v", err)
	}
	if !hasRoom("2024-03-01", "2024-03-03") {
		t.Fatalf("cancelled booking must not block the room")
	}
}

func TestAvailableRoomsExcludesNonAvailableStatus(t *testing.T) {
	ctx := context.Background()
	s := newQueryStore(t)

	mustInsert(t, s, domain.CollectionRooms, domain.Record{"room_number": "601", "status": "maintenance"})
	mustInsert(t, s, domain.CollectionRooms, domain.Record{"room_number": "602", "status": "occupied"})

	rooms, err := s.AvailableRooms(ctx, "2024-03-01", "2024-03-03")
	if err != nil {
		t.Fatalf("available rooms: %v", err)
	}
	if len(rooms) != 0 {
		t.Fatalf("expected no rooms, got %d", len(rooms))
	}
}

func TestFinancialSummaryPeriods(t *testing.T) {
	ctx := context.Background()
	s := newQueryStore(t)

	type tx struct {
		kind     string
		amount   float64
		date     string
		category string
	}
	for _, x := range []tx{
		{"income", 100, "2024-03-15", "rooms"},    // today
		{"income", 200, "2024-03-10", "restaurant"}, // this week and month
		{"income", 400, "2024-03-01", "events"},   // this month only
		{"income", 800, "2024-01-20", "pool"},     // this year only
		{"income", 1600, "2023-12-31", "rooms"},   // prior year, never counted
		{"expense", 50, "2024-03-15", "supplies"},
		{"expense", 70, "2024-02-10", "salaries"},
	} {
		mustInsert(t, s, domain.CollectionTransactions, domain.Record{
			"type": x.kind, "amount": x.amount, "date": x.date, "category": x.category,
		})
	}

	cases := []struct {
		period   domain.Period
		start    string
		income   float64
		expenses float64
	}{
		{domain.PeriodToday, "2024-03-15", 100, 50},
		{domain.PeriodWeek, "2024-03-08", 300, 50},
		{domain.PeriodMonth, "2024-03-01", 700, 50},
		{domain.PeriodYear, "2024-01-01", 1500, 120},
	}
	for _, tc := range cases {
		got, err := s.FinancialSummary(ctx, tc.period)
		if err != nil {
			t.Fatalf("%s: %v", tc.period, err)
		}
		if got.Start != tc.start {
			t.Errorf("%s: start = %s, want %s", tc.period, got.Start, tc.start)
		}
		if got.Income != tc.income || got.Expenses != tc.expenses {
			t.Errorf("%s: income/expenses = %v/%v, want %v/%v", tc.period, got.Income, got.Expenses, tc.income, tc.expenses)
		}
		if got.Net != tc.income-tc.expenses {
			t.Errorf("%s: net = %v, want %v", tc.period, got.Net, tc.income-tc.expenses)
		}
	}

	year, err := s.FinancialSummary(ctx, domain.PeriodYear)
	if err != nil {
		t.Fatalf("year summary: %v", err)
	}
	wantBuckets := map[string]float64{
		domain.CategoryRooms:      100,
		domain.CategoryRestaurant: 200,
		domain.CategoryHall:       400,
		domain.CategoryPool:       800,
	}
	for bucket, want := range wantBuckets {
		if year.RevenueByCategory[bucket] != want {
			t.Errorf("bucket %s = %v, want %v", bucket, year.RevenueByCategory[bucket], want)
		}
	}

	if _, err := s.FinancialSummary(ctx, "quarter"); err == nil {
		t.Fatalf("expected error for unknown period")
	}
}

func TestRevenueBucketFolding(t *testing.T) {
	cases := map[string]string{
		"rooms":          domain.CategoryRooms,
		"Booking":        domain.CategoryRooms,
		" accommodation ": domain.CategoryRooms,
		"FOOD":           domain.CategoryRestaurant,
		"drinks":         domain.CategoryBar,
		"event":          domain.CategoryHall,
		"swimming":       domain.CategoryPool,
		"laundry":        domain.CategoryOther,
		"":               domain.CategoryOther,
	}
	for in, want := range cases {
		if got := revenueBucket(in); got != want {
			t.Errorf("revenueBucket(%q) = %q, want %q", in, got, want)
		}
	}
}

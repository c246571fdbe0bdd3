package domain

// Meta carries the store-assigned identity and timestamp fields shared by
// every record. Timestamps are ISO-8601 strings in UTC.
type Meta struct {
	ID        string `json:"id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// RoomStatus enumerates housekeeping states of a guest room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
	RoomReserved    RoomStatus = "reserved"
)

// RoomStatuses lists the accepted room status values for bulk import.
func RoomStatuses() []string {
	return []string{
		string(RoomAvailable),
		string(RoomOccupied),
		string(RoomCleaning),
		string(RoomMaintenance),
		string(RoomReserved),
	}
}

// RoomType enumerates the room categories offered by the property.
type RoomType string

const (
	RoomTypeStandard     RoomType = "standard"
	RoomTypeDeluxe       RoomType = "deluxe"
	RoomTypeSuite        RoomType = "suite"
	RoomTypePresidential RoomType = "presidential"
)

// RoomTypes lists the accepted room type values for bulk import.
func RoomTypes() []string {
	return []string{
		string(RoomTypeStandard),
		string(RoomTypeDeluxe),
		string(RoomTypeSuite),
		string(RoomTypePresidential),
	}
}

// BookingStatus enumerates the lifecycle of a room booking.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

// OrderStatus enumerates restaurant/bar order states.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderCancelled OrderStatus = "cancelled"
)

// MaintenanceStatus enumerates maintenance request states.
type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "pending"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

// MaintenancePriority ranks maintenance requests.
type MaintenancePriority string

const (
	PriorityLow    MaintenancePriority = "low"
	PriorityMedium MaintenancePriority = "medium"
	PriorityHigh   MaintenancePriority = "high"
	PriorityUrgent MaintenancePriority = "urgent"
)

// TransactionType separates money in from money out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Revenue categories recognised by the financial summary. Unrecognised
// categories fall into CategoryOther.
const (
	CategoryRooms      = "rooms"
	CategoryRestaurant = "restaurant"
	CategoryBar        = "bar"
	CategoryHall       = "hall"
	CategoryPool       = "pool"
	CategoryOther      = "other"
)

// StaffRole enumerates staff profile roles.
type StaffRole string

const (
	RoleAdmin        StaffRole = "admin"
	RoleManager      StaffRole = "manager"
	RoleReceptionist StaffRole = "receptionist"
	RoleChef         StaffRole = "chef"
	RoleWaiter       StaffRole = "waiter"
	RoleHousekeeper  StaffRole = "housekeeper"
	RoleMaintenance  StaffRole = "maintenance"
	RoleAccountant   StaffRole = "accountant"
)

// StaffRoles lists the accepted staff role values for bulk import.
func StaffRoles() []string {
	return []string{
		string(RoleAdmin),
		string(RoleManager),
		string(RoleReceptionist),
		string(RoleChef),
		string(RoleWaiter),
		string(RoleHousekeeper),
		string(RoleMaintenance),
		string(RoleAccountant),
	}
}

// MenuCategories lists the accepted menu item categories for bulk import.
func MenuCategories() []string {
	return []string{"breakfast", "lunch", "dinner", "drinks", "desserts", "snacks"}
}

// InventoryCategories lists the accepted inventory categories for bulk import.
func InventoryCategories() []string {
	return []string{"food", "beverages", "cleaning", "linen", "toiletries", "maintenance", "office"}
}

// Profile is a staff/user account record.
type Profile struct {
	Meta
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
	Role     StaffRole `json:"role"`
	IsActive bool      `json:"is_active"`
}

// Room is a bookable guest room.
type Room struct {
	Meta
	RoomNumber    string     `json:"room_number"`
	RoomType      RoomType   `json:"room_type"`
	Status        RoomStatus `json:"status"`
	Floor         int        `json:"floor"`
	PricePerNight float64    `json:"price_per_night"`
	MaxOccupancy  int        `json:"max_occupancy"`
	Amenities     []string   `json:"amenities,omitempty"`
	Description   string     `json:"description,omitempty"`
}

// Booking reserves a room over a half-open date interval
// [check_in, check_out): the checkout day is exclusive, so a booking ending
// on a given day never overlaps one starting that same day.
type Booking struct {
	Meta
	RoomID        string        `json:"room_id"`
	GuestName     string        `json:"guest_name"`
	GuestEmail    string        `json:"guest_email,omitempty"`
	GuestPhone    string        `json:"guest_phone,omitempty"`
	CheckIn       string        `json:"check_in"`
	CheckOut      string        `json:"check_out"`
	Adults        int           `json:"adults"`
	Children      int           `json:"children"`
	TotalAmount   float64       `json:"total_amount"`
	BookingStatus BookingStatus `json:"booking_status"`
	PaymentStatus string        `json:"payment_status,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

// Hall is a bookable event hall.
type Hall struct {
	Meta
	Name         string   `json:"name"`
	Capacity     int      `json:"capacity"`
	PricePerHour float64  `json:"price_per_hour"`
	Amenities    []string `json:"amenities,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// HallBooking reserves a hall for an event on a given date.
type HallBooking struct {
	Meta
	HallID        string  `json:"hall_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone,omitempty"`
	EventType     string  `json:"event_type,omitempty"`
	EventDate     string  `json:"event_date"`
	StartTime     string  `json:"start_time,omitempty"`
	EndTime       string  `json:"end_time,omitempty"`
	GuestCount    int     `json:"guest_count"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`
}

// MenuItem is a restaurant or bar menu entry.
type MenuItem struct {
	Meta
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	IsAvailable bool    `json:"is_available"`
}

// RecipeIngredient ties a recipe line to an inventory item.
type RecipeIngredient struct {
	ItemName string  `json:"item_name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Recipe describes how a menu item is prepared.
type Recipe struct {
	Meta
	Name         string             `json:"name"`
	MenuItemID   string             `json:"menu_item_id,omitempty"`
	Servings     int                `json:"servings"`
	Ingredients  []RecipeIngredient `json:"ingredients,omitempty"`
	Instructions string             `json:"instructions,omitempty"`
}

// OrderLine is a single item on an order.
type OrderLine struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

// Order is a restaurant/bar order, optionally tied to a room.
type Order struct {
	Meta
	RoomID      string      `json:"room_id,omitempty"`
	TableNumber string      `json:"table_number,omitempty"`
	Items       []OrderLine `json:"items,omitempty"`
	Status      OrderStatus `json:"status"`
	Total       float64     `json:"total"`
	Notes       string      `json:"notes,omitempty"`
}

// InventoryItem tracks stock of a consumable or supply.
type InventoryItem struct {
	Meta
	ItemName     string  `json:"item_name"`
	Category     string  `json:"category"`
	CurrentStock float64 `json:"current_stock"`
	MinimumStock float64 `json:"minimum_stock"`
	Unit         string  `json:"unit"`
	CostPerUnit  float64 `json:"cost_per_unit"`
	Supplier     string  `json:"supplier,omitempty"`
}

// MaintenanceRequest reports a defect against a room or area.
type MaintenanceRequest struct {
	Meta
	RoomID      string              `json:"room_id,omitempty"`
	Area        string              `json:"area,omitempty"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Priority    MaintenancePriority `json:"priority"`
	Status      MaintenanceStatus   `json:"status"`
	AssignedTo  string              `json:"assigned_to,omitempty"`
}

// Transaction is a single accounting entry. Date is a "YYYY-MM-DD" string;
// the financial summaries match on it by prefix (month) or equality (day).
type Transaction struct {
	Meta
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
	Amount        float64         `json:"amount"`
	Description   string          `json:"description,omitempty"`
	Date          string          `json:"date"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	ReferenceID   string          `json:"reference_id,omitempty"`
}

// PoolSession records a pool visit.
type PoolSession struct {
	Meta
	GuestName string  `json:"guest_name"`
	Date      string  `json:"date"`
	StartTime string  `json:"start_time,omitempty"`
	EndTime   string  `json:"end_time,omitempty"`
	Guests    int     `json:"guests"`
	Amount    float64 `json:"amount"`
}

// StaffSchedule is a shift assignment for a staff profile.
type StaffSchedule struct {
	Meta
	ProfileID string `json:"profile_id"`
	Date      string `json:"date"`
	Shift     string `json:"shift"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

// Supplier is an external goods or service provider.
type Supplier struct {
	Meta
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	Category      string `json:"category,omitempty"`
}

// Customer is a returning guest kept for marketing and billing.
type Customer struct {
	Meta
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// DashboardSummary aggregates the KPI counters rendered by dashboards.
type DashboardSummary struct {
	TotalRooms         int            `json:"total_rooms"`
	RoomsByStatus      map[string]int `json:"rooms_by_status"`
	TodayCheckIns      int            `json:"today_check_ins"`
	TodayCheckOuts     int            `json:"today_check_outs"`
	PendingOrders      int            `json:"pending_orders"`
	LowStockItems      int            `json:"low_stock_items"`
	PendingMaintenance int            `json:"pending_maintenance"`
	TodayHallBookings  int            `json:"today_hall_bookings"`
	MonthRevenue       float64        `json:"month_revenue"`
	MonthExpenses      float64        `json:"month_expenses"`
	TodayRevenue       float64        `json:"today_revenue"`
}

// Period selects the time window of a financial summary.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// FinancialSummary aggregates transactions from a period start onwards.
type FinancialSummary struct {
	Period            Period             `json:"period"`
	Start             string             `json:"start"`
	Income            float64            `json:"income"`
	Expenses          float64            `json:"expenses"`
	Net               float64            `json:"net"`
	RevenueByCategory map[string]float64 `json:"revenue_by_category"`
}

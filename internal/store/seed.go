package store

import (
	"fmt"
	"time"

	"hotelcore/pkg/domain"
)

// Seed synthesizes the fixed sample dataset persisted when the slot holds no
// document: a handful of rooms, halls, staff profiles, menu items, inventory
// lines, and suppliers, enough for every screen to render something on first
// launch. Collections not listed here are created empty by normalize.
func Seed(now time.Time) domain.Document {
	meta := func(id string) domain.Meta {
		ts := now.UTC().Format(timeLayout)
		return domain.Meta{ID: id, CreatedAt: ts, UpdatedAt: ts}
	}

	rooms := []domain.Room{
		{Meta: meta("room-101"), RoomNumber: "101", RoomType: domain.RoomTypeStandard, Status: domain.RoomAvailable, Floor: 1, PricePerNight: 80, MaxOccupancy: 2, Amenities: []string{"wifi", "tv"}},
		{Meta: meta("room-102"), RoomNumber: "102", RoomType: domain.RoomTypeStandard, Status: domain.RoomAvailable, Floor: 1, PricePerNight: 80, MaxOccupancy: 2, Amenities: []string{"wifi", "tv"}},
		{Meta: meta("room-201"), RoomNumber: "201", RoomType: domain.RoomTypeDeluxe, Status: domain.RoomCleaning, Floor: 2, PricePerNight: 120, MaxOccupancy: 3, Amenities: []string{"wifi", "tv", "minibar"}},
		{Meta: meta("room-202"), RoomNumber: "202", RoomType: domain.RoomTypeDeluxe, Status: domain.RoomOccupied, Floor: 2, PricePerNight: 120, MaxOccupancy: 3, Amenities: []string{"wifi", "tv", "minibar"}},
		{Meta: meta("room-301"), RoomNumber: "301", RoomType: domain.RoomTypeSuite, Status: domain.RoomAvailable, Floor: 3, PricePerNight: 220, MaxOccupancy: 4, Amenities: []string{"wifi", "tv", "minibar", "balcony"}},
	}
	halls := []domain.Hall{
		{Meta: meta("hall-grand"), Name: "Grand Hall", Capacity: 200, PricePerHour: 150, Amenities: []string{"stage", "sound_system", "projector"}},
		{Meta: meta("hall-garden"), Name: "Garden Hall", Capacity: 80, PricePerHour: 90, Amenities: []string{"open_air", "sound_system"}},
	}
	profiles := []domain.Profile{
		{Meta: meta("profile-admin"), FullName: "System Administrator", Email: "admin@hotel.local", Role: domain.RoleAdmin, IsActive: true},
		{Meta: meta("profile-manager"), FullName: "Front Office Manager", Email: "manager@hotel.local", Role: domain.RoleManager, IsActive: true},
		{Meta: meta("profile-chef"), FullName: "Head Chef", Email: "chef@hotel.local", Role: domain.RoleChef, IsActive: true},
	}
	menuItems := []domain.MenuItem{
		{Meta: meta("menu-breakfast-set"), Name: "Continental Breakfast", Category: "breakfast", Price: 12.5, IsAvailable: true},
		{Meta: meta("menu-club-sandwich"), Name: "Club Sandwich", Category: "lunch", Price: 9, IsAvailable: true},
		{Meta: meta("menu-grilled-fish"), Name: "Grilled Fish", Category: "dinner", Price: 18, IsAvailable: true},
		{Meta: meta("menu-house-wine"), Name: "House Wine (glass)", Category: "drinks", Price: 6.5, IsAvailable: true},
	}
	inventory := []domain.InventoryItem{
		{Meta: meta("inv-rice"), ItemName: "Rice", Category: "food", CurrentStock: 40, MinimumStock: 10, Unit: "kg", CostPerUnit: 1.2},
		{Meta: meta("inv-cooking-oil"), ItemName: "Cooking Oil", Category: "food", CurrentStock: 8, MinimumStock: 10, Unit: "l", CostPerUnit: 3.5},
		{Meta: meta("inv-towels"), ItemName: "Bath Towels", Category: "linen", CurrentStock: 120, MinimumStock: 50, Unit: "pcs", CostPerUnit: 4},
		{Meta: meta("inv-detergent"), ItemName: "Detergent", Category: "cleaning", CurrentStock: 25, MinimumStock: 15, Unit: "l", CostPerUnit: 2.1},
	}
	suppliers := []domain.Supplier{
		{Meta: meta("supplier-fresh-farms"), Name: "Fresh Farms Ltd", ContactPerson: "A. Mensah", Phone: "+233200000001", Category: "food"},
		{Meta: meta("supplier-cleanco"), Name: "CleanCo Supplies", ContactPerson: "K. Owusu", Phone: "+233200000002", Category: "cleaning"},
	}

	doc := domain.Document{}
	putAll(doc, domain.CollectionRooms, rooms)
	putAll(doc, domain.CollectionHalls, halls)
	putAll(doc, domain.CollectionProfiles, profiles)
	putAll(doc, domain.CollectionMenuItems, menuItems)
	putAll(doc, domain.CollectionInventory, inventory)
	putAll(doc, domain.CollectionSuppliers, suppliers)
	return doc
}

func putAll[T any](doc domain.Document, collection domain.Collection, items []T) {
	records := make([]domain.Record, 0, len(items))
	for _, item := range items {
		rec, err := domain.AsRecord(item)
		if err != nil {
			panic(fmt.Errorf("seed %s: %w", collection, err))
		}
		records = append(records, rec)
	}
	doc[collection] = records
}

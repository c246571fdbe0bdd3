// Package spreadsheet generates Excel import templates, exports collections
// to workbooks, and bulk-imports validated rows into the record store.
package spreadsheet

import (
	"fmt"

	"hotelcore/pkg/domain"
)

type kind int

const (
	kindText kind = iota
	kindNumber
	kindInteger
	kindBool
)

// column maps one spreadsheet column onto a record field.
type column struct {
	Header   string
	Field    string
	Kind     kind
	Required bool
	Allowed  []string // enum allow-list, matched case-insensitively
	Width    float64
	Example  any
}

// sheetSchema describes the workbook layout for one collection.
type sheetSchema struct {
	Collection domain.Collection
	Sheet      string
	Columns    []column
}

var schemas = map[domain.Collection]sheetSchema{
	domain.CollectionRooms: {
		Collection: domain.CollectionRooms,
		Sheet:      "Rooms",
		Columns: []column{
			{Header: "Room Number", Field: "room_number", Required: true, Width: 14, Example: "101"},
			{Header: "Room Type", Field: "room_type", Required: true, Allowed: domain.RoomTypes(), Width: 14, Example: "standard"},
			{Header: "Status", Field: "status", Required: true, Allowed: domain.RoomStatuses(), Width: 14, Example: "available"},
			{Header: "Floor", Field: "floor", Kind: kindInteger, Width: 8, Example: 1},
			{Header: "Price Per Night", Field: "price_per_night", Kind: kindNumber, Required: true, Width: 16, Example: 80},
			{Header: "Max Occupancy", Field: "max_occupancy", Kind: kindInteger, Width: 14, Example: 2},
			{Header: "Description", Field: "description", Width: 30},
		},
	},
	domain.CollectionMenuItems: {
		Collection: domain.CollectionMenuItems,
		Sheet:      "Menu Items",
		Columns: []column{
			{Header: "Name", Field: "name", Required: true, Width: 24, Example: "Club Sandwich"},
			{Header: "Category", Field: "category", Required: true, Allowed: domain.MenuCategories(), Width: 14, Example: "lunch"},
			{Header: "Price", Field: "price", Kind: kindNumber, Required: true, Width: 10, Example: 9.5},
			{Header: "Available", Field: "is_available", Kind: kindBool, Width: 10, Example: "yes"},
			{Header: "Description", Field: "description", Width: 30},
		},
	},
	domain.CollectionInventory: {
		Collection: domain.CollectionInventory,
		Sheet:      "Inventory",
		Columns: []column{
			{Header: "Item Name", Field: "item_name", Required: true, Width: 24, Example: "Rice"},
			{Header: "Category", Field: "category", Required: true, Allowed: domain.InventoryCategories(), Width: 14, Example: "food"},
			{Header: "Current Stock", Field: "current_stock", Kind: kindNumber, Required: true, Width: 14, Example: 40},
			{Header: "Minimum Stock", Field: "minimum_stock", Kind: kindNumber, Required: true, Width: 14, Example: 10},
			{Header: "Unit", Field: "unit", Required: true, Width: 8, Example: "kg"},
			{Header: "Cost Per Unit", Field: "cost_per_unit", Kind: kindNumber, Width: 14, Example: 1.2},
			{Header: "Supplier", Field: "supplier", Width: 20},
		},
	},
	domain.CollectionRecipes: {
		Collection: domain.CollectionRecipes,
		Sheet:      "Recipes",
		Columns: []column{
			{Header: "Name", Field: "name", Required: true, Width: 24, Example: "Jollof Rice"},
			{Header: "Servings", Field: "servings", Kind: kindInteger, Required: true, Width: 10, Example: 4},
			{Header: "Instructions", Field: "instructions", Width: 40},
		},
	},
	domain.CollectionHalls: {
		Collection: domain.CollectionHalls,
		Sheet:      "Halls",
		Columns: []column{
			{Header: "Name", Field: "name", Required: true, Width: 20, Example: "Grand Hall"},
			{Header: "Capacity", Field: "capacity", Kind: kindInteger, Required: true, Width: 10, Example: 200},
			{Header: "Price Per Hour", Field: "price_per_hour", Kind: kindNumber, Required: true, Width: 14, Example: 150},
			{Header: "Description", Field: "description", Width: 30},
		},
	},
	domain.CollectionProfiles: {
		Collection: domain.CollectionProfiles,
		Sheet:      "Staff",
		Columns: []column{
			{Header: "Full Name", Field: "full_name", Required: true, Width: 24, Example: "Ama Serwaa"},
			{Header: "Email", Field: "email", Required: true, Width: 26, Example: "ama@hotel.local"},
			{Header: "Phone", Field: "phone", Width: 16},
			{Header: "Role", Field: "role", Required: true, Allowed: domain.StaffRoles(), Width: 14, Example: "receptionist"},
			{Header: "Active", Field: "is_active", Kind: kindBool, Width: 8, Example: "yes"},
		},
	},
	domain.CollectionSuppliers: {
		Collection: domain.CollectionSuppliers,
		Sheet:      "Suppliers",
		Columns: []column{
			{Header: "Name", Field: "name", Required: true, Width: 24, Example: "Fresh Farms Ltd"},
			{Header: "Contact Person", Field: "contact_person", Width: 20},
			{Header: "Phone", Field: "phone", Width: 16},
			{Header: "Email", Field: "email", Width: 26},
			{Header: "Category", Field: "category", Allowed: domain.InventoryCategories(), Width: 14, Example: "food"},
			{Header: "Address", Field: "address", Width: 30},
		},
	},
	domain.CollectionCustomers: {
		Collection: domain.CollectionCustomers,
		Sheet:      "Customers",
		Columns: []column{
			{Header: "Full Name", Field: "full_name", Required: true, Width: 24, Example: "Kofi Boateng"},
			{Header: "Email", Field: "email", Width: 26},
			{Header: "Phone", Field: "phone", Width: 16},
			{Header: "Address", Field: "address", Width: 30},
			{Header: "Notes", Field: "notes", Width: 30},
		},
	},
}

// schemaFor returns the workbook schema of a collection supported by the
// spreadsheet surface.
func schemaFor(collection domain.Collection) (sheetSchema, error) {
	schema, ok := schemas[collection]
	if !ok {
		return sheetSchema{}, fmt.Errorf("no spreadsheet schema for collection %q", collection)
	}
	return schema, nil
}

// Collections lists the collections with a spreadsheet schema.
func Collections() []domain.Collection {
	out := make([]domain.Collection, 0, len(schemas))
	for _, name := range domain.KnownCollections() {
		if _, ok := schemas[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

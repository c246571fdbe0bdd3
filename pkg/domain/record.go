// Package domain defines the record model, collection shapes, and error
// taxonomy shared by the hotelcore store and its collaborators.
package domain

import (
	"encoding/json"
	"fmt"
)

// Record is a schema-less store record: a mapping from field name to value.
// Values follow the JSON value domain (string, float64, bool, nil, []any,
// map[string]any). Every record held by the store carries the reserved
// fields below, assigned by the store and never by callers.
type Record map[string]any

// Reserved record fields managed exclusively by the store.
const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

// Document is the full store state: collection name to ordered records.
// It is the unit of persistence and of export/import.
type Document map[string][]Record

// Collection names a record collection.
type Collection = string

// Collections pre-declared by the store. Unknown names are still accepted
// by Insert (the collection is created on first write) and yield an empty
// result from Select.
const (
	CollectionProfiles            Collection = "profiles"
	CollectionRooms               Collection = "rooms"
	CollectionBookings            Collection = "bookings"
	CollectionHalls               Collection = "halls"
	CollectionHallBookings        Collection = "hall_bookings"
	CollectionMenuItems           Collection = "menu_items"
	CollectionRecipes             Collection = "recipes"
	CollectionOrders              Collection = "orders"
	CollectionInventory           Collection = "inventory"
	CollectionMaintenanceRequests Collection = "maintenance_requests"
	CollectionTransactions        Collection = "transactions"
	CollectionPoolSessions        Collection = "pool_sessions"
	CollectionAnalyticsData       Collection = "analytics_data"
	CollectionStaffSchedules      Collection = "staff_schedules"
	CollectionSuppliers           Collection = "suppliers"
	CollectionCustomers           Collection = "customers"
)

// KnownCollections returns the pre-declared collection names in a stable order.
func KnownCollections() []Collection {
	return []Collection{
		CollectionProfiles,
		CollectionRooms,
		CollectionBookings,
		CollectionHalls,
		CollectionHallBookings,
		CollectionMenuItems,
		CollectionRecipes,
		CollectionOrders,
		CollectionInventory,
		CollectionMaintenanceRequests,
		CollectionTransactions,
		CollectionPoolSessions,
		CollectionAnalyticsData,
		CollectionStaffSchedules,
		CollectionSuppliers,
		CollectionCustomers,
	}
}

// Clone returns a deep copy of the record. Mutating the copy never affects
// the original.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

// Clone returns a deep copy of the document with all collections present
// in the original, each holding cloned records.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for name, records := range d {
		cp := make([]Record, len(records))
		for i, rec := range records {
			cp[i] = rec.Clone()
		}
		out[name] = cp
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Record:
		return map[string]any(val.Clone())
	case map[string]any:
		return map[string]any(Record(val).Clone())
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), val...)
	default:
		return v
	}
}

// AsRecord converts a typed value (one of the collection shapes, or any
// json-taggable struct) into a generic Record via a JSON round trip, so the
// resulting value domain matches records loaded from a persisted document.
func AsRecord(v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

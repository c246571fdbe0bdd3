package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestRecordCloneIsDeep(t *testing.T) {
	rec := Record{
		"name":      "Grand Hall",
		"amenities": []any{"projector", "stage"},
		"contact":   map[string]any{"phone": "0200000000"},
	}
	cp := rec.Clone()
	cp["name"] = "tampered"
	cp["amenities"].([]any)[0] = "tampered"
	cp["contact"].(map[string]any)["phone"] = "tampered"

	if rec["name"] != "Grand Hall" {
		t.Fatalf("top-level value mutated through clone")
	}
	if rec["amenities"].([]any)[0] != "projector" {
		t.Fatalf("slice element mutated through clone")
	}
	if rec["contact"].(map[string]any)["phone"] != "0200000000" {
		t.Fatalf("nested map mutated through clone")
	}
	if Record(nil).Clone() != nil {
		t.Fatalf("nil record should clone to nil")
	}
}

func TestDocumentCloneIsDeep(t *testing.T) {
	doc := Document{
		CollectionRooms: {{"room_number": "101"}},
	}
	cp := doc.Clone()
	cp[CollectionRooms][0]["room_number"] = "tampered"
	cp[CollectionBookings] = []Record{{}}

	if doc[CollectionRooms][0]["room_number"] != "101" {
		t.Fatalf("record mutated through document clone")
	}
	if _, ok := doc[CollectionBookings]; ok {
		t.Fatalf("collection added through document clone")
	}
}

func TestAsRecordMatchesDecodedValueDomain(t *testing.T) {
	room := Room{
		Meta:          Meta{ID: "r-1"},
		RoomNumber:    "101",
		RoomType:      RoomTypeStandard,
		Status:        RoomAvailable,
		Floor:         1,
		PricePerNight: 80,
	}
	rec, err := AsRecord(room)
	if err != nil {
		t.Fatalf("as record: %v", err)
	}
	if rec["room_number"] != "101" || rec["status"] != "available" {
		t.Fatalf("unexpected record: %v", rec)
	}
	// Numeric fields arrive as float64, same as a persisted document would.
	if _, ok := rec["floor"].(float64); !ok {
		t.Fatalf("floor should decode to float64, got %T", rec["floor"])
	}
	if _, ok := rec["price_per_night"].(float64); !ok {
		t.Fatalf("price should decode to float64, got %T", rec["price_per_night"])
	}

	if _, err := AsRecord(func() {}); err == nil {
		t.Fatalf("expected encode error for unmarshalable value")
	}
}

func TestKnownCollectionsAreStableAndUnique(t *testing.T) {
	a, b := KnownCollections(), KnownCollections()
	if len(a) != len(b) {
		t.Fatalf("unstable length")
	}
	seen := make(map[Collection]bool, len(a))
	for i, name := range a {
		if name != b[i] {
			t.Fatalf("unstable order at %d: %s vs %s", i, name, b[i])
		}
		if seen[name] {
			t.Fatalf("duplicate collection %s", name)
		}
		seen[name] = true
	}
	if !seen[CollectionRooms] || !seen[CollectionAnalyticsData] {
		t.Fatalf("expected pre-declared collections present")
	}
}

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("connection refused")
	pe := &PersistenceError{Op: "save", Err: cause}
	if pe.Error() != "persist save: connection refused" {
		t.Fatalf("unexpected message %q", pe.Error())
	}
	if !errors.Is(pe, cause) {
		t.Fatalf("persistence error should unwrap to its cause")
	}

	parse := &ParseError{Err: fmt.Errorf("unexpected end of JSON input")}
	if parse.Error() != "parse document: unexpected end of JSON input" {
		t.Fatalf("unexpected message %q", parse.Error())
	}

	row := &RowError{Row: 4, Field: "Category", Msg: "invalid value"}
	if row.Error() != "row 4: Category: invalid value" {
		t.Fatalf("unexpected message %q", row.Error())
	}
	bare := &RowError{Row: 2, Msg: "empty"}
	if bare.Error() != "row 2: empty" {
		t.Fatalf("unexpected message %q", bare.Error())
	}
}

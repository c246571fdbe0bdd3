// Package store implements the hotelcore record store: an in-memory document
// of named record collections, loaded once from a persisted slot and flushed
// back wholesale after every mutation.
package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"hotelcore/internal/observability"
	"hotelcore/internal/slot"
	"hotelcore/pkg/domain"
)

// timeLayout matches the ISO-8601 millisecond timestamps the documents carry.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// dateLayout is the calendar-date form used by bookings and transactions.
const dateLayout = "2006-01-02"

// Store holds all collections in memory and persists the whole document to
// its slot after every mutating operation. A single mutex funnels every
// mutate-then-persist sequence so read-modify-write operations cannot
// interleave; there is one Store per process, constructed explicitly and
// passed to consumers.
type Store struct {
	mu      sync.Mutex
	slot    slot.Slot
	logger  *zap.Logger
	metrics observability.Recorder
	nowFn   func() time.Time
	strict  bool
	seedFn  func(now time.Time) domain.Document

	// state is nil until initialization succeeds; every operation routes
	// through ensureReadyLocked and retries initialization while it is nil.
	state domain.Document
}

// New constructs a store over the given slot. The store is lazy: the first
// operation (or an explicit Initialize) loads the persisted document.
func New(s slot.Slot, opts ...Option) *Store {
	st := &Store{
		slot:    s,
		logger:  zap.NewNop(),
		metrics: observability.NopRecorder{},
		nowFn:   func() time.Time { return time.Now().UTC() },
		seedFn:  Seed,
	}
	for _, opt := range opts {
		opt(st)
	}
	return st
}

// Initialize loads the persisted document, seeding a fresh one when the slot
// is empty. Idempotent; safe to call any number of times. When the document
// is present but malformed it is reseeded (and the prior content lost)
// unless WithStrictLoad was set, in which case a ParseError is returned.
func (s *Store) Initialize(ctx context.Context) (err error) {
	defer s.observe("initialize", time.Now(), &err)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureReadyLocked(ctx)
}

func (s *Store) ensureReadyLocked(ctx context.Context) error {
	if s.state != nil {
		return nil
	}
	data, found, err := s.slot.Load(ctx)
	if err != nil {
		return &domain.PersistenceError{Op: "load", Err: err}
	}
	if found {
		var doc domain.Document
		parseErr := json.Unmarshal(data, &doc)
		if parseErr == nil && doc == nil {
			parseErr = errors.New("document is null")
		}
		if parseErr == nil {
			s.state = normalize(doc)
			return nil
		}
		if s.strict {
			return &domain.ParseError{Err: parseErr}
		}
		// At-most-once recovery: reseed over the corrupt document. The
		// prior persisted state is lost, which the store accepts in
		// exchange for availability.
		s.logger.Warn("persisted document is corrupt, reseeding", zap.Error(parseErr))
	}
	seed := normalize(s.seedFn(s.nowFn()))
	payload, err := json.Marshal(seed)
	if err != nil {
		return fmt.Errorf("encode seed document: %w", err)
	}
	if err := s.slot.Save(ctx, payload); err != nil {
		return &domain.PersistenceError{Op: "seed", Err: err}
	}
	s.state = seed
	s.logger.Info("seeded store document", zap.Int("collections", len(seed)))
	return nil
}

// normalize guarantees every known collection is present so dashboards can
// scan them without nil checks. Unknown collections in the document are kept.
func normalize(doc domain.Document) domain.Document {
	for _, name := range domain.KnownCollections() {
		if doc[name] == nil {
			doc[name] = []domain.Record{}
		}
	}
	return doc
}

// newID combines a millisecond timestamp with a random suffix. No global
// counter is persisted; uniqueness under concurrent inserts comes from the
// random component.
func (s *Store) newID(now time.Time) string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), hex.EncodeToString(b[:]))
}

func (s *Store) observe(op string, start time.Time, err *error) {
	s.metrics.Observe(op, *err == nil, time.Since(start))
}

func (s *Store) persistLocked(ctx context.Context) error {
	payload, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := s.slot.Save(ctx, payload); err != nil {
		return &domain.PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// Select returns a fresh copy of the records in the named collection that
// match the filter, in insertion order. Unknown collections yield an empty
// slice, never an error; callers may freely mutate the result.
func (s *Store) Select(ctx context.Context, collection domain.Collection, filter Filter) (records []domain.Record, err error) {
	defer s.observe("select", time.Now(), &err)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureReadyLocked(ctx); err != nil {
		return nil, err
	}
	out := make([]domain.Record, 0, len(s.state[collection]))
	for _, rec := range s.state[collection] {
		if filter.Matches(rec) {
			out = append(out, rec.Clone())
		}
	}
	return out, nil
}

// Insert appends a record to the named collection, creating the collection
// if it does not yet exist, and persists the whole document before
// returning. The id, created_at, and updated_at fields are assigned by the
// store; caller-supplied values for them are discarded. On a persist failure
// the materialized record is returned together with a PersistenceError: the
// in-memory state has already advanced, so callers must not assume
// durability.
func (s *Store) Insert(ctx context.Context, collection domain.Collection, data domain.Record) (rec domain.Record, err error) {
	defer s.observe("insert", time.Now(), &err)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureReadyLocked(ctx); err != nil {
		return nil, err
	}
	rec = data.Clone()
	if rec == nil {
		rec = domain.Record{}
	}
	now := s.nowFn()
	ts := now.UTC().Format(timeLayout)
	rec[domain.FieldID] = s.newID(now)
	rec[domain.FieldCreatedAt] = ts
	rec[domain.FieldUpdatedAt] = ts
	s.state[collection] = append(s.state[collection], rec.Clone())
	if err := s.persistLocked(ctx); err != nil {
		return rec, err
	}
	s.logger.Debug("inserted record",
		zap.String("collection", collection),
		zap.Any("id", rec[domain.FieldID]))
	return rec, nil
}

// Update shallow-merges partial onto the record with the given id, refreshes
// updated_at, persists, and returns the merged record. A missing id is
// signalled by found == false with a nil error and performs no persistence
// write; callers must branch on it explicitly.
func (s *Store) Update(ctx context.Context, collection domain.Collection, id string, partial domain.Record) (rec domain.Record, found bool, err error) {
	defer s.observe("update", time.Now(), &err)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureReadyLocked(ctx); err != nil {
		return nil, false, err
	}
	records := s.state[collection]
	for i, current := range records {
		if current[domain.FieldID] != id {
			continue
		}
		merged := current.Clone()
		for k, v := range partial.Clone() {
			if k == domain.FieldID || k == domain.FieldCreatedAt {
				continue
			}
			merged[k] = v
		}
		merged[domain.FieldUpdatedAt] = s.nowFn().UTC().Format(timeLayout)
		records[i] = merged
		if err := s.persistLocked(ctx); err != nil {
			return merged.Clone(), true, err
		}
		return merged.Clone(), true, nil
	}
	return nil, false, nil
}

// Delete removes the record with the given id and reports whether a removal
// occurred. Dependent records in other collections are never touched.
func (s *Store) Delete(ctx context.Context, collection domain.Collection, id string) (removed bool, err error) {
	defer s.observe("delete", time.Now(), &err)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureReadyLocked(ctx); err != nil {
		return false, err
	}
	records := s.state[collection]
	for i, current := range records {
		if current[domain.FieldID] != id {
			continue
		}
		s.state[collection] = append(records[:i], records[i+1:]...)
		if err := s.persistLocked(ctx); err != nil {
			return true, err
		}
		return true, nil
	}
	return false, nil
}

// ExportDocument serializes the full in-memory document as indented JSON.
func (s *Store) ExportDocument(ctx context.Context) (data []byte, err error) {
	defer s.observe("export", time.Now(), &err)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureReadyLocked(ctx); err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return out, nil
}

// ImportDocument parses data as a full store document and wholesale-replaces
// the in-memory state with it, then persists. A malformed blob fails with a
// ParseError before any in-memory or persisted state changes.
func (s *Store) ImportDocument(ctx context.Context, data []byte) (err error) {
	defer s.observe("import", time.Now(), &err)
	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return &domain.ParseError{Err: err}
	}
	if doc == nil {
		return &domain.ParseError{Err: errors.New("document is null")}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = normalize(doc.Clone())
	if err := s.persistLocked(ctx); err != nil {
		return err
	}
	s.logger.Info("imported store document", zap.Int("collections", len(doc)))
	return nil
}

// Package draft holds the order currently being assembled by a customer
// at a table. The store is the single source of truth for that draft and
// persists it durably so a reload or restart does not lose the cart.
package draft

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/ikaro-souza/warlike-spiders/internal/domain"
	"github.com/ikaro-souza/warlike-spiders/internal/storage"
)

// Store owns one draft. Every operation is total: mutating without a
// draft degrades to a no-op instead of an error, and "no draft" is a
// valid state distinct from a draft with an empty item list. A mutex
// serializes operations so each mutation runs to completion before the
// next one starts.
type Store struct {
	key     string
	storage storage.Store
	logger  *zap.Logger

	mu    sync.Mutex
	draft *domain.OrderCreation
}

// NewStore loads any previously persisted draft from stor under key. A
// value that fails to decode is discarded rather than propagated, the
// same way a corrupt browser-storage entry would be.
func NewStore(key string, stor storage.Store, logger *zap.Logger) *Store {
	s := &Store{
		key:     key,
		storage: stor,
		logger:  logger,
	}

	data, ok, err := stor.Get(key)
	if err != nil {
		logger.Warn("loading persisted draft failed", zap.String("key", key), zap.Error(err))
		return s
	}
	if !ok {
		return s
	}

	var draft domain.OrderCreation
	if err := json.Unmarshal(data, &draft); err != nil {
		logger.Warn("discarding undecodable persisted draft", zap.String("key", key), zap.Error(err))
		return s
	}
	s.draft = &draft
	return s
}

// GetDraft returns a copy of the current draft, or ok=false if no draft
// has been started.
func (s *Store) GetDraft() (domain.OrderCreation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return domain.OrderCreation{}, false
	}
	return copyDraft(*s.draft), true
}

// SetDraft replaces the draft wholesale, overwriting any prior draft
// unconditionally. Used when seeding from a previously confirmed server
// order; a late-arriving seed wins over local edits (last write wins).
func (s *Store) SetDraft(order domain.OrderCreation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := copyDraft(order)
	s.draft = &draft
	s.persist()
}

// SetCustomer creates an empty draft bound to customerID if none exists,
// otherwise rebinds the existing draft. Idempotent for the same id.
func (s *Store) SetCustomer(customerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		s.draft = &domain.OrderCreation{
			CustomerID: customerID,
			Items:      []domain.OrderItemCreationData{},
		}
	} else {
		s.draft.CustomerID = customerID
	}
	s.persist()
}

// AddItem appends item to the draft. No-op when no draft exists: an item
// cannot be added before a customer context is established. First write
// wins when the itemId is already present; the existing quantity and
// note are kept.
func (s *Store) AddItem(item domain.OrderItemCreationData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return
	}
	for _, existing := range s.draft.Items {
		if existing.ItemID == item.ItemID {
			return
		}
	}
	s.draft.Items = append(s.draft.Items, copyItem(item))
	s.persist()
}

// UpdateItem replaces the entry with item's itemId at its original
// position. An update for an id that is not in the draft is silently
// dropped, which forgives out-of-order UI events.
func (s *Store) UpdateItem(item domain.OrderItemCreationData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return
	}
	for i, existing := range s.draft.Items {
		if existing.ItemID == item.ItemID {
			s.draft.Items[i] = copyItem(item)
			s.persist()
			return
		}
	}
}

// RemoveItem drops the entry with itemID if present. The draft itself
// survives even when the last item is removed; an empty cart is not the
// same as no draft.
func (s *Store) RemoveItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return
	}
	for i, existing := range s.draft.Items {
		if existing.ItemID == itemID {
			s.draft.Items = append(s.draft.Items[:i], s.draft.Items[i+1:]...)
			s.persist()
			return
		}
	}
}

// Clear resets the store to "no draft", discarding the customer binding
// and all items. Called after a successful submission or an explicit
// cancellation.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = nil
	if err := s.storage.Delete(s.key); err != nil {
		s.logger.Warn("clearing persisted draft failed", zap.String("key", s.key), zap.Error(err))
	}
}

// persist writes the full draft in one replacement. A failed write keeps
// the in-memory state authoritative; mutations never fail user-visibly.
func (s *Store) persist() {
	data, err := json.Marshal(s.draft)
	if err != nil {
		s.logger.Error("encoding draft failed", zap.String("key", s.key), zap.Error(err))
		return
	}
	if err := s.storage.Set(s.key, data); err != nil {
		s.logger.Warn("persisting draft failed", zap.String("key", s.key), zap.Error(err))
	}
}

func copyDraft(draft domain.OrderCreation) domain.OrderCreation {
	items := make([]domain.OrderItemCreationData, len(draft.Items))
	for i, item := range draft.Items {
		items[i] = copyItem(item)
	}
	draft.Items = items
	return draft
}

// copyItem keeps the item snapshot an owned value: callers mutating
// their argument after the fact must not reach into the draft.
func copyItem(item domain.OrderItemCreationData) domain.OrderItemCreationData {
	if item.Note != nil {
		note := *item.Note
		item.Note = &note
	}
	return item
}

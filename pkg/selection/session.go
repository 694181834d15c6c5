package selection

import (
	"buildchem-be/internal/entity"
)

type State int

const (
	StateEmpty State = iota
	StateNonEmpty
)

func (s State) String() string {
	if s == StateNonEmpty {
		return "NON_EMPTY"
	}
	return "EMPTY"
}

type ChangeKind string

const (
	ChangeAdded   ChangeKind = "ADDED"
	ChangeRemoved ChangeKind = "REMOVED"
	ChangeCleared ChangeKind = "CLEARED"
)

// Change describes a completed mutation. Count is the size after the mutation.
type Change struct {
	Kind      ChangeKind
	ProductId string
	Count     int
}

type Listener func(Change)

type subscription struct {
	id int
	fn Listener
}

// Session is the ordered set of items one visitor has selected.
//
// A Session has exactly one owner and is not safe for concurrent use.
// Every mutation is written through to the Store and then announced to
// subscribers, synchronously and in subscription order.
type Session struct {
	store       Store
	items       []entity.SelectionItem
	subscribers []subscription
	nextSubId   int
}

// NewSession rehydrates a session from store.
func NewSession(store Store) *Session {
	items := store.Load()
	if items == nil {
		items = []entity.SelectionItem{}
	}
	return &Session{
		store: store,
		items: items,
	}
}

// Add appends item unless its product id is already present (or empty).
// It reports whether the item was added.
func (s *Session) Add(item entity.SelectionItem) bool {
	if item.ProductId == "" || s.Contains(item.ProductId) {
		return false
	}
	s.items = append(s.items, item)
	s.commit(Change{Kind: ChangeAdded, ProductId: item.ProductId})
	return true
}

// Remove drops the item with productId. Removing an absent id still persists
// and notifies with the unchanged state.
func (s *Session) Remove(productId string) {
	kept := s.items[:0:0]
	for _, it := range s.items {
		if it.ProductId != productId {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.commit(Change{Kind: ChangeRemoved, ProductId: productId})
}

func (s *Session) Clear() {
	s.items = []entity.SelectionItem{}
	s.commit(Change{Kind: ChangeCleared})
}

func (s *Session) Contains(productId string) bool {
	for _, it := range s.items {
		if it.ProductId == productId {
			return true
		}
	}
	return false
}

func (s *Session) Count() int {
	return len(s.items)
}

func (s *Session) State() State {
	if len(s.items) == 0 {
		return StateEmpty
	}
	return StateNonEmpty
}

// Items returns a copy of the current items in insertion order.
func (s *Session) Items() []entity.SelectionItem {
	return entity.CloneSelectionItems(s.items)
}

// Subscribe registers fn for every successful mutation. The returned func removes it.
func (s *Session) Subscribe(fn Listener) func() {
	s.nextSubId++
	id := s.nextSubId
	s.subscribers = append(s.subscribers, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *Session) commit(change Change) {
	// Save failures are logged by the store and otherwise ignored.
	_ = s.store.Save(s.items)

	change.Count = len(s.items)
	subs := make([]subscription, len(s.subscribers))
	copy(subs, s.subscribers)
	for _, sub := range subs {
		sub.fn(change)
	}
}

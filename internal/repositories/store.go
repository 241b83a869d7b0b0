package repository

import (
	"sync"
	"time"

	"github.com/aaravmahajanofficial/templatehub/internal/models"
	"github.com/google/uuid"
)

// ChangeKind tells listeners which part of the store a mutation touched.
type ChangeKind string

const (
	ChangeCatalog ChangeKind = "catalog"
	ChangeCart    ChangeKind = "cart"
	ChangeOrder   ChangeKind = "order"
	ChangeUser    ChangeKind = "user"
)

type Change struct {
	Kind ChangeKind
	ID   string
}

// Store is the in-memory marketplace: catalog, carts, orders and users.
// A single mutex serialises every operation, so each call runs to completion
// before the next one observes the state. Values handed out are copies.
type Store struct {
	mu        sync.Mutex
	users     map[string]*userRecord
	templates map[string]*models.Template
	carts     map[string]*models.Cart
	orders    map[string]*models.Order

	listenersMu sync.RWMutex
	listeners   map[uint64]func(Change)
	nextID      uint64

	now   func() time.Time
	newID func() string
}

type Option func(*Store)

// WithClock overrides the time source, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		users:     make(map[string]*userRecord),
		templates: make(map[string]*models.Template),
		carts:     make(map[string]*models.Cart),
		orders:    make(map[string]*models.Order),
		listeners: make(map[uint64]func(Change)),
		now:       time.Now,
		newID:     uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// OnChange registers fn to run after every successful mutation. Listeners are
// called synchronously outside the store lock and must not block. The returned
// function removes the listener and may be called any number of times.
func (s *Store) OnChange(fn func(Change)) func() {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, id)
			s.listenersMu.Unlock()
		})
	}
}

func (s *Store) notify(kind ChangeKind, id string) {
	s.listenersMu.RLock()
	fns := make([]func(Change), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.listenersMu.RUnlock()

	change := Change{Kind: kind, ID: id}
	for _, fn := range fns {
		fn(change)
	}
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

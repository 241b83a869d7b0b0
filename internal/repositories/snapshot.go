package repository

import (
	"fmt"

	"github.com/aaravmahajanofficial/templatehub/internal/models"
	"github.com/aaravmahajanofficial/templatehub/internal/storage"
)

// Snapshot copies the full state into the persisted document layout.
func (s *Store) Snapshot() *storage.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &storage.Snapshot{
		Version:   storage.CurrentVersion,
		Users:     make([]storage.StoredUser, 0, len(s.users)),
		Templates: make([]*models.Template, 0, len(s.templates)),
		Carts:     make([]*models.Cart, 0, len(s.carts)),
		Orders:    make([]*models.Order, 0, len(s.orders)),
	}

	for _, record := range s.users {
		snap.Users = append(snap.Users, storage.StoredUser{User: *record.public(), Password: record.passwordHash})
	}
	for _, t := range s.templates {
		snap.Templates = append(snap.Templates, t.Clone())
	}
	for _, c := range s.carts {
		snap.Carts = append(snap.Carts, c.Clone())
	}
	for _, o := range s.sortedOrders() {
		snap.Orders = append(snap.Orders, o.Clone())
	}

	return snap
}

// Restore replaces the whole state with snap. Listeners are not notified.
func (s *Store) Restore(snap *storage.Snapshot) error {
	if err := storage.CheckVersion(snap); err != nil {
		return err
	}

	users := make(map[string]*userRecord, len(snap.Users))
	for _, u := range snap.Users {
		if u.ID == "" {
			return fmt.Errorf("snapshot contains a user without id")
		}
		record := &userRecord{user: u.User, passwordHash: u.Password}
		record.user = *record.public()
		users[u.ID] = record
	}

	templates := make(map[string]*models.Template, len(snap.Templates))
	for _, t := range snap.Templates {
		if t == nil || t.ID == "" {
			return fmt.Errorf("snapshot contains a template without id")
		}
		templates[t.ID] = t.Clone()
	}

	carts := make(map[string]*models.Cart, len(snap.Carts))
	for _, c := range snap.Carts {
		if c == nil || c.ID == "" {
			return fmt.Errorf("snapshot contains a cart without id")
		}
		cart := c.Clone()
		recalculate(cart)
		carts[c.ID] = cart
	}

	orders := make(map[string]*models.Order, len(snap.Orders))
	for _, o := range snap.Orders {
		if o == nil || o.ID == "" {
			return fmt.Errorf("snapshot contains an order without id")
		}
		orders[o.ID] = o.Clone()
	}

	s.mu.Lock()
	s.users = users
	s.templates = templates
	s.carts = carts
	s.orders = orders
	s.mu.Unlock()

	return nil
}

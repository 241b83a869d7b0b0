package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/templatehub/internal/models"
)

type BootstrapOptions struct {
	AdminUsername string
	AdminPassword string
	// SeedCatalog inserts demo templates and orders into an empty store.
	SeedCatalog bool
}

// Bootstrap makes sure the admin account exists and, when requested, seeds an
// empty catalog and order book. It is safe to run on every start.
func (s *Store) Bootstrap(ctx context.Context, opts BootstrapOptions) error {
	if err := s.ensureAdminUser(ctx, opts.AdminUsername, opts.AdminPassword); err != nil {
		return err
	}

	if !opts.SeedCatalog {
		return nil
	}

	s.mu.Lock()
	needTemplates := len(s.templates) == 0
	s.mu.Unlock()

	var seeded []*models.Template
	if needTemplates {
		for _, req := range seedTemplates() {
			seeded = append(seeded, s.CreateTemplate(ctx, req))
		}
	}

	s.seedOrders(seeded)

	return nil
}

func (s *Store) ensureAdminUser(ctx context.Context, username, password string) error {
	if username == "" {
		username = "admin"
	}
	if password == "" {
		password = "admin123"
	}

	if _, ok := s.GetUserByUsername(ctx, username); ok {
		return nil
	}

	if _, err := s.CreateUser(ctx, username, password, models.RoleAdmin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	return nil
}

// seedOrders adds two paid demo orders, 12 and 36 hours old, when there are no
// orders yet. Without freshly seeded templates it uses the current catalog.
func (s *Store) seedOrders(templates []*models.Template) {
	if len(templates) == 0 {
		templates = s.ListTemplates(context.Background(), models.TemplateFilters{Sort: models.SortOldest})
	}
	if len(templates) == 0 {
		return
	}

	s.mu.Lock()

	if len(s.orders) > 0 {
		s.mu.Unlock()
		return
	}

	pick := func(i int) *models.Template { return templates[i%len(templates)] }
	now := s.timestamp()

	item := func(t *models.Template) models.CartItem {
		return models.CartItem{
			ID:         s.newID(),
			TemplateID: t.ID,
			Quantity:   1,
			UnitPrice:  t.Price,
			AddedAt:    now,
			Template:   t.Summary(),
		}
	}

	seeds := []struct {
		items []models.CartItem
		age   time.Duration
	}{
		{items: []models.CartItem{item(pick(0)), item(pick(2))}, age: 12 * time.Hour},
		{items: []models.CartItem{item(pick(1)), item(pick(4))}, age: 36 * time.Hour},
	}

	var ids []string
	for _, seed := range seeds {
		order := &models.Order{
			ID:        s.newID(),
			CartID:    s.newID(),
			Items:     seed.items,
			Total:     sumItems(seed.items),
			Status:    models.OrderStatusPaid,
			CreatedAt: now.Add(-seed.age),
		}
		s.orders[order.ID] = order
		ids = append(ids, order.ID)
	}

	s.mu.Unlock()

	for _, id := range ids {
		s.notify(ChangeOrder, id)
	}
}

func seedTemplates() []*models.CreateTemplateRequest {
	published := models.TemplateStatusPublished
	price := func(v float64) *float64 { return &v }
	image := func(photo string) string {
		return "https://images.unsplash.com/" + photo + "?auto=format&fit=crop&w=1600&q=80"
	}
	hero := func(photo string) *string {
		v := image(photo)
		return &v
	}

	return []*models.CreateTemplateRequest{
		{
			Title:       "Modern E-Commerce",
			Category:    models.CategoryEcommerce,
			Price:       price(79),
			Status:      &published,
			Description: "A high-converting online store template with advanced product filtering, cart, and checkout experiences.",
			HeroImage:   hero("photo-1454165205744-3b78555e5572"),
			GalleryImages: []string{
				image("photo-1483478550801-ceba5fe50e8e"),
				image("photo-1431540015161-0bf868a2d407"),
			},
			Tags:     []string{"shop", "commerce", "responsive"},
			Features: []string{"Advanced product filtering", "Integrated shopping cart", "Customizable hero sections"},
		},
		{
			Title:       "Creative Portfolio",
			Category:    models.CategoryPortfolio,
			Price:       price(59),
			Status:      &published,
			Description: "Showcase your creative work with immersive galleries, case studies, and client testimonials.",
			HeroImage:   hero("photo-1521737604893-d14cc237f11d"),
			GalleryImages: []string{
				image("photo-1526481280695-3c46917b3cfa"),
				image("photo-1521737604893-d14cc237f11d"),
			},
			Tags:     []string{"design", "portfolio", "agency"},
			Features: []string{"Interactive project galleries", "Testimonials carousel", "Case study templates"},
		},
		{
			Title:       "SaaS Landing Pro",
			Category:    models.CategorySaaS,
			Price:       price(89),
			Status:      &published,
			Description: "A conversion-focused SaaS landing page with pricing tables, feature highlights, and integrations sections.",
			HeroImage:   hero("photo-1523475472560-d2df97ec485c"),
			GalleryImages: []string{
				image("photo-1523475472560-d2df97ec485c"),
				image("photo-1531498860502-7c67cf02f77b"),
			},
			Tags:     []string{"startup", "landing", "pricing"},
			Features: []string{"Dynamic pricing tables", "Customer logos grid", "Integrations showcase"},
		},
		{
			Title:       "Restaurant Deluxe",
			Category:    models.CategoryRestaurant,
			Price:       price(69),
			Status:      &published,
			Description: "A culinary experience template with interactive menus, online reservation integration, and chef highlights.",
			HeroImage:   hero("photo-1466978913421-dad2ebd01d17"),
			GalleryImages: []string{
				image("photo-1466978913421-dad2ebd01d17"),
				image("photo-1559339352-11d035aa65de"),
			},
			Tags:     []string{"food", "hospitality", "menu"},
			Features: []string{"Interactive menu layout", "Reservations widget", "Chef spotlight section"},
		},
		{
			Title:       "Corporate Suite",
			Category:    models.CategoryCorporate,
			Price:       price(99),
			Status:      &published,
			Description: "A polished corporate website template with services overview, leadership bios, and case studies.",
			HeroImage:   hero("photo-1520607162513-77705c0f0d4a"),
			GalleryImages: []string{
				image("photo-1507679799987-c73779587ccf"),
				image("photo-1521737604893-d14cc237f11d"),
			},
			Tags:     []string{"business", "consulting", "enterprise"},
			Features: []string{"Services overview sections", "Leadership profiles", "Detailed case studies"},
		},
		{
			Title:       "Fitness Hub",
			Category:    models.CategoryFitness,
			Price:       price(74),
			Status:      &published,
			Description: "An energetic fitness studio template with class schedules, coach profiles, and membership plans.",
			HeroImage:   hero("photo-1517832207067-4db24a2ae47c"),
			GalleryImages: []string{
				image("photo-1517832207067-4db24a2ae47c"),
				image("photo-1584467735871-1394f54ccbec"),
			},
			Tags:     []string{"fitness", "studio", "schedule"},
			Features: []string{"Class schedule management", "Coach biographies", "Membership pricing plans"},
		},
	}
}

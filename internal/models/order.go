package models

import "time"

type OrderStatus string

// Only OrderStatusPaid is produced today; the others are kept for stored data
// created by external tooling.
const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusPaid     OrderStatus = "paid"
	OrderStatusFailed   OrderStatus = "failed"
	OrderStatusRefunded OrderStatus = "refunded"
)

type Order struct {
	ID        string      `json:"id"`
	CartID    string      `json:"cartId"`
	Items     []CartItem  `json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Items = append([]CartItem{}, o.Items...)
	return &clone
}

// OrderSummary is the projection shown in the admin dashboard's recent orders.
type OrderSummary struct {
	ID        string      `json:"id"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

type AdminStats struct {
	TotalTemplates     int            `json:"totalTemplates"`
	PublishedTemplates int            `json:"publishedTemplates"`
	TotalOrders        int            `json:"totalOrders"`
	TotalRevenue       float64        `json:"totalRevenue"`
	RecentOrders       []OrderSummary `json:"recentOrders"`
}

package models

import "time"

type CartItem struct {
	ID         string          `json:"id"`
	TemplateID string          `json:"templateId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  float64         `json:"unitPrice"`
	AddedAt    time.Time       `json:"addedAt"`
	Template   TemplateSummary `json:"template"`
}

type Cart struct {
	ID       string     `json:"id"`
	Subtotal float64    `json:"subtotal"`
	Items    []CartItem `json:"items"`
}

func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Items = append([]CartItem{}, c.Items...)
	return &clone
}

type AddCartItemRequest struct {
	TemplateID string `json:"templateId" validate:"required,uuid"`
	Quantity   *int   `json:"quantity,omitempty" validate:"omitempty,min=1,max=99"`
}

// UpdateCartItemRequest accepts zero or negative quantities, which remove the line.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required,max=99"`
}

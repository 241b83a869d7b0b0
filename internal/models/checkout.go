package models

type CheckoutSessionResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
}

type CompleteCheckoutRequest struct {
	SessionID string `json:"sessionId" validate:"required,min=1"`
}

type CompleteCheckoutResponse struct {
	Order *Order `json:"order"`
	Cart  *Cart  `json:"cart"`
}

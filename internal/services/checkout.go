package service

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/templatehub/internal/api/middleware"
	"github.com/aaravmahajanofficial/templatehub/internal/cache"
	"github.com/aaravmahajanofficial/templatehub/internal/errors"
	"github.com/aaravmahajanofficial/templatehub/internal/metrics"
	"github.com/aaravmahajanofficial/templatehub/internal/models"
	repository "github.com/aaravmahajanofficial/templatehub/internal/repositories"
	"github.com/aaravmahajanofficial/templatehub/pkg/sendgrid"
	stripeClient "github.com/aaravmahajanofficial/templatehub/pkg/stripe"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v81"
)

// completedSessionTTL bounds how long a processed checkout session id is remembered.
const completedSessionTTL = 7 * 24 * time.Hour

// completedCheckout is the cache record for a checkout session. OrderID stays
// empty while the first completion is still creating the order.
type completedCheckout struct {
	CartID  string `json:"cartId"`
	OrderID string `json:"orderId,omitempty"`
}

type CheckoutService interface {
	CreateCheckoutSession(ctx context.Context, cartID, baseURL string) (*models.CheckoutSessionResponse, error)
	CompleteCheckout(ctx context.Context, sessionID string) (*models.CompleteCheckoutResponse, error)
}

type checkoutService struct {
	carts    repository.CartRepository
	orders   repository.OrderRepository
	payments stripeClient.Client
	cache    cache.Cache
	email    sendgrid.EmailService
	currency string
}

// NewCheckoutService wires checkout. payments and email may be nil when the
// processor or mail provider is not configured.
func NewCheckoutService(
	carts repository.CartRepository,
	orders repository.OrderRepository,
	payments stripeClient.Client,
	c cache.Cache,
	email sendgrid.EmailService,
	currency string,
) CheckoutService {
	return &checkoutService{
		carts:    carts,
		orders:   orders,
		payments: payments,
		cache:    c,
		email:    email,
		currency: strings.ToLower(currency),
	}
}

func (s *checkoutService) CreateCheckoutSession(ctx context.Context, cartID, baseURL string) (*models.CheckoutSessionResponse, error) {
	if s.payments == nil {
		return nil, errors.ServiceUnavailableError("Stripe is not configured")
	}

	cart := s.carts.GetOrCreateCart(ctx, cartID)
	if len(cart.Items) == 0 {
		return nil, errors.BadRequestError("Cart is empty")
	}

	base := strings.TrimRight(baseURL, "/")

	params := &stripe.CheckoutSessionParams{
		Mode:                stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:          stripe.String(base + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:           stripe.String(base + "/checkout/cancel"),
		AllowPromotionCodes: stripe.Bool(true),
		AutomaticTax:        &stripe.CheckoutSessionAutomaticTaxParams{Enabled: stripe.Bool(false)},
	}
	params.AddMetadata("cartId", cart.ID)

	for _, item := range cart.Items {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Template.Title),
		}
		if image := absoluteURL(base, item.Template.HeroImage); image != "" {
			product.Images = stripe.StringSlice([]string{image})
		}

		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(item.Quantity)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(s.currency),
				UnitAmount:  stripe.Int64(minorUnits(item.UnitPrice)),
				ProductData: product,
			},
		})
	}

	session, err := s.payments.CreateCheckoutSession(ctx, params)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to create checkout session").WithError(err)
	}

	if session.URL == "" {
		return nil, errors.InternalError("Failed to create Stripe checkout session")
	}

	return &models.CheckoutSessionResponse{URL: session.URL, SessionID: session.ID}, nil
}

func (s *checkoutService) CompleteCheckout(ctx context.Context, sessionID string) (*models.CompleteCheckoutResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	if s.payments == nil {
		return nil, errors.ServiceUnavailableError("Stripe is not configured")
	}

	key := cache.Key(cache.CheckoutSessionKeyPrefix, sessionID)

	// A session already turned into an order is answered from the cache
	// without another round trip to Stripe.
	var done completedCheckout
	found, err := s.cache.Get(ctx, key, &done)
	if err != nil {
		logger.Warn("Checkout completion lookup failed", slog.String("sessionId", sessionID), slog.Any("error", err))
	}
	if found && done.OrderID != "" {
		return s.existingOrder(ctx, done.CartID)
	}

	session, err := s.payments.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to retrieve checkout session").WithError(err)
	}

	if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid && session.Status != stripe.CheckoutSessionStatusComplete {
		return nil, errors.PaymentIncompleteError("Checkout session is not paid")
	}

	cartID := session.Metadata["cartId"]
	if cartID == "" {
		return nil, errors.BadRequestError("Checkout session missing cart information")
	}

	// An unreachable cache does not block completion: a repeated call finds
	// the cart already empty and falls back to the existing order.
	firstCompletion, err := s.cache.SetNX(ctx, key, completedCheckout{CartID: cartID}, completedSessionTTL)
	if err != nil {
		logger.Warn("Checkout idempotency check failed", slog.String("sessionId", sessionID), slog.Any("error", err))
		firstCompletion = true
	}

	var order *models.Order

	if firstCompletion {
		order, err = s.orders.CreateOrderFromCart(ctx, cartID)
		switch {
		case err == nil:
			metrics.RecordOrderCreated(order.Total)
			logger.Info("Order created from checkout",
				slog.String("orderId", order.ID),
				slog.String("cartId", cartID),
				slog.Float64("total", order.Total),
			)
			if setErr := s.cache.Set(ctx, key, completedCheckout{CartID: cartID, OrderID: order.ID}, completedSessionTTL); setErr != nil {
				logger.Warn("Failed to record completed checkout", slog.String("sessionId", sessionID), slog.Any("error", setErr))
			}
			s.sendReceipt(ctx, session, order)
		case stdErrors.Is(err, repository.ErrCartEmpty):
			order = nil
		default:
			if delErr := s.cache.Delete(ctx, key); delErr != nil {
				logger.Warn("Failed to release checkout session key", slog.String("sessionId", sessionID), slog.Any("error", delErr))
			}
			return nil, errors.InternalError("Failed to create order").WithError(err)
		}
	}

	if order == nil {
		return s.existingOrder(ctx, cartID)
	}

	return &models.CompleteCheckoutResponse{
		Order: order,
		Cart:  s.carts.GetOrCreateCart(ctx, cartID),
	}, nil
}

// existingOrder answers a repeated completion with the cart's latest order.
func (s *checkoutService) existingOrder(ctx context.Context, cartID string) (*models.CompleteCheckoutResponse, error) {
	order, ok := s.orders.FindLatestOrderForCart(ctx, cartID)
	if !ok {
		return nil, errors.NotFoundError("No order found for this checkout session")
	}

	return &models.CompleteCheckoutResponse{
		Order: order,
		Cart:  s.carts.GetOrCreateCart(ctx, cartID),
	}, nil
}

// sendReceipt is best effort; failures are logged only.
func (s *checkoutService) sendReceipt(ctx context.Context, session *stripe.CheckoutSession, order *models.Order) {
	if s.email == nil {
		return
	}

	recipient, name := session.CustomerEmail, ""
	if session.CustomerDetails != nil {
		if session.CustomerDetails.Email != "" {
			recipient = session.CustomerDetails.Email
		}
		name = session.CustomerDetails.Name
	}
	if recipient == "" {
		return
	}

	if err := s.email.Send(ctx, receiptEmail(order, recipient, name)); err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to send order receipt",
			slog.String("orderId", order.ID),
			slog.Any("error", err),
		)
	}
}

func receiptEmail(order *models.Order, recipient, name string) *models.EmailNotificationRequest {
	var text, rows strings.Builder

	fmt.Fprintf(&text, "Thanks for your purchase! Order %s\n\n", order.ID)
	for _, item := range order.Items {
		line := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		fmt.Fprintf(&text, "%d x %s  %s\n", item.Quantity, item.Template.Title, line.StringFixed(2))
		fmt.Fprintf(&rows, "<tr><td>%d &times; %s</td><td>%s</td></tr>", item.Quantity, item.Template.Title, line.StringFixed(2))
	}
	total := decimal.NewFromFloat(order.Total).StringFixed(2)
	fmt.Fprintf(&text, "\nTotal: %s\n", total)

	return &models.EmailNotificationRequest{
		Subject:     "Your TemplateHub order " + order.ID,
		Content:     text.String(),
		HTMLContent: fmt.Sprintf("<h1>Thanks for your purchase!</h1><table>%s</table><p>Total: <strong>%s</strong></p>", rows.String(), total),
		Recipient:   recipient,
		Name:        name,
	}
}

// minorUnits converts a price to cents.
func minorUnits(price float64) int64 {
	return decimal.NewFromFloat(price).Shift(2).Round(0).IntPart()
}

// absoluteURL resolves site-relative media against base; other values pass
// through only when they are already absolute http(s) URLs.
func absoluteURL(base, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "/") {
		return base + ref
	}
	if u, err := url.Parse(ref); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return ref
	}
	return ""
}

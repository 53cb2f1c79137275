package services

import (
	"github.com/MeadowlarkTravel/meadowlark-go/internal/domain/entities/session"
	emailtemplates "github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/email/templates"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/logging"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/security"
)

// orderConfirmationSubject is the subject line of the checkout email
const orderConfirmationSubject = "Thank you for booking your trip with Meadowlark Travel"

// OrderNotifier sends a transactional email given a destination address,
// subject and HTML body.
type OrderNotifier interface {
	Send(to, subject, htmlBody string) error
}

// CheckoutService assigns order identifiers and issues the best-effort
// confirmation email.
type CheckoutService struct {
	notifier OrderNotifier
	logger   *logging.ChanneledLogger
}

// NewCheckoutService creates the checkout service over the given notifier
func NewCheckoutService(notifier OrderNotifier, logger *logging.ChanneledLogger) *CheckoutService {
	return &CheckoutService{
		notifier: notifier,
		logger:   logger,
	}
}

// PlaceOrder assigns the cart's order number and billing details. The
// email has been validated by the handler before this runs.
func (s *CheckoutService) PlaceOrder(cart *session.Cart, name, email string) {
	cart.Number = security.GenerateOrderNumber()
	cart.Billing = &session.Billing{
		Name:  name,
		Email: email,
	}

	if s.logger != nil {
		s.logger.Order().Info("Order placed", "orderNumber", cart.Number)
	}
}

// NotifyOrderConfirmation issues the confirmation email for a placed
// order. Delivery is best-effort: the send runs in its own goroutine and
// a failure is logged on the mail channel, never surfaced to the user.
func (s *CheckoutService) NotifyOrderConfirmation(cart *session.Cart) {
	if cart == nil || cart.Billing == nil {
		return
	}

	content := emailtemplates.GetOrderConfirmationContent(emailtemplates.OrderConfirmationProps{
		Name:        cart.Billing.Name,
		OrderNumber: cart.Number,
	})
	htmlBody := emailtemplates.GetEmailLayout(emailtemplates.EmailLayoutProps{
		Preheader: "Your Meadowlark Travel reservation",
		Content:   content,
	})

	to := cart.Billing.Email
	go func() {
		err := s.notifier.Send(to, orderConfirmationSubject, htmlBody)
		if s.logger != nil {
			s.logger.LogMailOutcome(to, orderConfirmationSubject, err)
		}
	}()
}

// Package session defines the per-client server-side state carried
// across requests via the session cookie.
package session

import "time"

// Flash severity tags
const (
	FlashDanger  = "danger"
	FlashSuccess = "success"
)

// FlashMessage is a one-time notice displayed on the next rendered page only.
type FlashMessage struct {
	Type    string `json:"type"`
	Intro   string `json:"intro"`
	Message string `json:"message"`
}

// Billing holds the contact details submitted at checkout.
type Billing struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Cart is the session shopping cart. Number and Billing are set only by a
// successful checkout.
type Cart struct {
	Number  string   `json:"number,omitempty"`
	Billing *Billing `json:"billing,omitempty"`
}

// Empty reports whether the cart has no order attached yet.
func (c *Cart) Empty() bool {
	return c == nil || (c.Number == "" && c.Billing == nil)
}

// Session is per-client state keyed by an opaque identifier delivered
// via cookie.
type Session struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	LastSeen  time.Time     `json:"lastSeen"`
	Cart      *Cart         `json:"cart,omitempty"`
	Flash     *FlashMessage `json:"flash,omitempty"`
}

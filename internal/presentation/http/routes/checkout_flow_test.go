package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"
)

var orderNumberPattern = regexp.MustCompile(`<strong>(\d+)</strong>`)

func TestGetCheckoutRendersForm(t *testing.T) {
	engine := newTestEngine(t, nil, nil, "")

	w := doRequest(engine, httptest.NewRequest(http.MethodGet, "/cart/checkout", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /cart/checkout = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `action="/cart/checkout"`) {
		t.Error("checkout form missing from the page")
	}
}

func TestCheckoutPlacesOrderAndNotifies(t *testing.T) {
	notifier := newFakeNotifier()
	engine := newTestEngine(t, nil, notifier, "")

	req := postForm("/cart/checkout", url.Values{"name": {"Joe Customer"}, "email": {"joe@example.com"}})
	req.Header.Set("Accept", "text/html")

	w := doRequest(engine, req)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /cart/checkout = %d, want 200", w.Code)
	}

	body := w.Body.String()
	match := orderNumberPattern.FindStringSubmatch(body)
	if match == nil {
		t.Fatalf("thank-you page carries no numeric reservation number: %s", body)
	}
	if strings.HasPrefix(match[1], "0") {
		t.Errorf("reservation number %q has a leading zero", match[1])
	}
	if !strings.Contains(body, "joe@example.com") {
		t.Error("thank-you page does not name the confirmation recipient")
	}

	// The confirmation email is sent asynchronously
	select {
	case mail := <-notifier.sent:
		if mail.To != "joe@example.com" {
			t.Errorf("email sent to %q, want joe@example.com", mail.To)
		}
		if !strings.Contains(mail.Subject, "Meadowlark Travel") {
			t.Errorf("unexpected subject: %q", mail.Subject)
		}
		if !strings.Contains(mail.Body, match[1]) {
			t.Error("confirmation email does not carry the reservation number")
		}
		if !strings.Contains(mail.Body, "Joe Customer") {
			t.Error("confirmation email does not address the customer by name")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation email was never sent")
	}
}

func TestCheckoutInvalidEmail(t *testing.T) {
	t.Run("browser gets flash and redirect back", func(t *testing.T) {
		notifier := newFakeNotifier()
		engine := newTestEngine(t, nil, notifier, "")

		req := postForm("/cart/checkout", url.Values{"name": {"Joe"}, "email": {"nope"}})
		req.Header.Set("Accept", "text/html")

		w := doRequest(engine, req)
		if w.Code != http.StatusSeeOther {
			t.Fatalf("POST /cart/checkout = %d, want 303", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/cart/checkout" {
			t.Errorf("Location = %q, want /cart/checkout", loc)
		}

		cookie := sessionCookie(t, w)
		followUp := httptest.NewRequest(http.MethodGet, "/cart/checkout", nil)
		followUp.AddCookie(cookie)
		form := doRequest(engine, followUp)
		if !strings.Contains(form.Body.String(), "The email address you entered was not valid.") {
			t.Error("validation flash missing on the checkout form")
		}

		select {
		case mail := <-notifier.sent:
			t.Errorf("rejected checkout still sent email: %+v", mail)
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("xhr gets the error object", func(t *testing.T) {
		engine := newTestEngine(t, nil, nil, "")

		req := postForm("/cart/checkout", url.Values{"name": {"Joe"}, "email": {"nope"}})
		req.Header.Set("X-Requested-With", "XMLHttpRequest")

		w := doRequest(engine, req)
		// Validation outcomes ride in the body with a success status
		if w.Code != http.StatusOK {
			t.Fatalf("POST /cart/checkout = %d, want 200", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Invalid email address.") {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCartSurvivesAcrossRequests(t *testing.T) {
	engine := newTestEngine(t, nil, newFakeNotifier(), "")

	// Place an order, then revisit the thank-you state via the same session
	req := postForm("/cart/checkout", url.Values{"name": {"Joe"}, "email": {"joe@example.com"}})
	req.Header.Set("Accept", "text/html")
	w := doRequest(engine, req)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /cart/checkout = %d, want 200", w.Code)
	}
	cookie := sessionCookie(t, w)

	// The checkout form is still reachable; the session cart was not reset
	followUp := httptest.NewRequest(http.MethodGet, "/cart/checkout", nil)
	followUp.AddCookie(cookie)
	form := doRequest(engine, followUp)
	if form.Code != http.StatusOK {
		t.Fatalf("GET /cart/checkout after order = %d, want 200", form.Code)
	}
}

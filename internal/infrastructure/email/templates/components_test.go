package templates

import (
	"strings"
	"testing"
)

func TestOrderConfirmationContent(t *testing.T) {
	content := GetOrderConfirmationContent(OrderConfirmationProps{
		Name:        "Joe Customer",
		OrderNumber: "8675309",
	})

	if !strings.Contains(content, "Joe Customer") {
		t.Error("confirmation does not address the customer")
	}
	if !strings.Contains(content, "8675309") {
		t.Error("confirmation does not carry the reservation number")
	}
}

func TestEmailLayoutDefaults(t *testing.T) {
	html := GetEmailLayout(EmailLayoutProps{
		Content: "<p>body</p>",
	})

	if !strings.Contains(html, "<p>body</p>") {
		t.Error("layout dropped the content block")
	}
	if !strings.Contains(html, "Meadowlark Travel") {
		t.Error("layout missing the default branding")
	}
}

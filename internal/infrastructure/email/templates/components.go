package templates

import (
	"bytes"
	"html/template"
	"log"
)

// OrderConfirmationProps carries the checkout details into the
// thank-you email body.
type OrderConfirmationProps struct {
	Name        string
	OrderNumber string
}

var orderConfirmationTemplate = template.Must(template.New("orderConfirmation").Parse(`
<h1 style="font-size: 24px; font-weight: bold; margin: 0 0 16px;">Thank you for booking your trip with Meadowlark Travel!</h1>
<p style="margin: 0 0 16px;">{{if .Name}}Dear {{.Name}},{{else}}Hello,{{end}}</p>
<p style="margin: 0 0 16px;">
  We look forward to your visit. Your reservation number is
  <strong>{{.OrderNumber}}</strong>; please keep it handy when you contact us.
</p>
<p style="margin: 0;">Happy travels,<br>The Meadowlark Travel team</p>`))

// GetOrderConfirmationContent renders the order confirmation body for
// embedding in the shared email layout.
func GetOrderConfirmationContent(props OrderConfirmationProps) string {
	var buf bytes.Buffer
	if err := orderConfirmationTemplate.Execute(&buf, props); err != nil {
		log.Printf("Error executing order confirmation template: %v", err)
		return "<p>Thank you for booking your trip with Meadowlark Travel.</p>"
	}
	return buf.String()
}

package notify

import (
	"bytes"
	"html/template"

	"bakehouse-api/internal/models"
)

const designImageSize = 600

// orderEmailView is the typed view model both templates render from. The
// conditional-section rules live here, not in the markup, so they can be
// tested without parsing HTML.
type orderEmailView struct {
	Order models.Order

	ShowDeliveryAddress bool
	DesignImages        []string
	HasNotes            bool
	HasGiftNote         bool
}

func (d *Dispatcher) view(order models.Order) orderEmailView {
	v := orderEmailView{Order: order}

	v.ShowDeliveryAddress = order.Delivery.DeliveryMethod != models.DeliveryMethodCollection &&
		order.Delivery.DeliveryAddress != ""
	v.HasNotes = order.Delivery.DeliveryNotes != ""
	v.HasGiftNote = order.Delivery.GiftNote != ""

	if hasIndividualDesign(order.Items) {
		for _, ref := range attachmentRefs(order.Messages) {
			url, err := d.images.ImageURL(ref, designImageSize, designImageSize)
			if err != nil {
				continue
			}
			v.DesignImages = append(v.DesignImages, url)
		}
	}

	return v
}

func hasIndividualDesign(items []models.OrderItem) bool {
	for _, it := range items {
		if it.DesignType == models.DesignTypeIndividual {
			return true
		}
	}
	return false
}

func attachmentRefs(messages []models.OrderMessage) []string {
	var refs []string
	for _, m := range messages {
		refs = append(refs, m.Attachments...)
	}
	return refs
}

var customerTmpl = template.Must(template.New("customer").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:Georgia,serif;color:#3d2c1e;max-width:600px;margin:0 auto">
  <h1>Thank you, {{.Order.Customer.Name}}!</h1>
  <p>We have received your order <strong>{{.Order.OrderNumber}}</strong> and will be in touch shortly to confirm the details.</p>
  <table width="100%" cellpadding="6" style="border-collapse:collapse">
    <tr style="border-bottom:1px solid #e0d5c8"><th align="left">Item</th><th align="right">Qty</th><th align="right">Price</th></tr>
    {{range .Order.Items}}
    <tr>
      <td>{{.ProductName}}{{if .Size}} ({{.Size}}){{end}}{{if .Flavor}}, {{.Flavor}}{{end}}</td>
      <td align="right">{{.Quantity}}</td>
      <td align="right">&pound;{{printf "%.2f" .TotalPrice}}</td>
    </tr>
    {{end}}
    <tr style="border-top:1px solid #e0d5c8"><td colspan="2" align="right"><strong>Total</strong></td><td align="right"><strong>&pound;{{printf "%.2f" .Order.Pricing.Total}}</strong></td></tr>
  </table>
  {{if .ShowDeliveryAddress}}
  <h3>Delivery</h3>
  <p>{{.Order.Delivery.DeliveryAddress}}</p>
  {{else}}
  <p>Your order will be ready for collection{{if .Order.Delivery.DateNeeded}} on {{.Order.Delivery.DateNeeded}}{{end}}.</p>
  {{end}}
  {{if .HasGiftNote}}
  <h3>Gift note</h3>
  <p>{{.Order.Delivery.GiftNote}}</p>
  {{end}}
  <p>With love from the bakehouse 🍞</p>
</body>
</html>`))

var adminTmpl = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif;max-width:640px;margin:0 auto">
  <h2>New order {{.Order.OrderNumber}}</h2>
  <p><strong>{{.Order.Customer.Name}}</strong> &lt;{{.Order.Customer.Email}}&gt; &middot; {{.Order.Customer.Phone}}</p>
  <table width="100%" cellpadding="4" border="1" style="border-collapse:collapse">
    <tr><th align="left">Item</th><th>Type</th><th>Design</th><th>Qty</th><th>Unit</th><th>Total</th></tr>
    {{range .Order.Items}}
    <tr>
      <td>{{.ProductName}}{{if .SpecialInstructions}}<br><em>{{.SpecialInstructions}}</em>{{end}}</td>
      <td>{{.ProductType}}</td>
      <td>{{.DesignType}}</td>
      <td align="center">{{.Quantity}}</td>
      <td align="right">{{printf "%.2f" .UnitPrice}}</td>
      <td align="right">{{printf "%.2f" .TotalPrice}}</td>
    </tr>
    {{end}}
  </table>
  <p>Subtotal {{printf "%.2f" .Order.Pricing.Subtotal}} &middot; Delivery {{printf "%.2f" .Order.Pricing.DeliveryFee}} &middot; Discount {{printf "%.2f" .Order.Pricing.Discount}} &middot; <strong>Total {{printf "%.2f" .Order.Pricing.Total}}</strong></p>
  <p>Method: {{.Order.Delivery.DeliveryMethod}}{{if .Order.Delivery.DateNeeded}} &middot; Needed: {{.Order.Delivery.DateNeeded}}{{end}}</p>
  {{if .ShowDeliveryAddress}}
  <p><strong>Deliver to:</strong> {{.Order.Delivery.DeliveryAddress}}</p>
  {{end}}
  {{range .Order.Messages}}
  <blockquote>{{.Message}}</blockquote>
  {{end}}
  {{if .HasNotes}}
  <p><strong>Notes:</strong> {{.Order.Delivery.DeliveryNotes}}</p>
  {{end}}
  {{if .HasGiftNote}}
  <p><strong>Gift note:</strong> {{.Order.Delivery.GiftNote}}</p>
  {{end}}
  {{if .DesignImages}}
  <h3>Design references</h3>
  {{range .DesignImages}}
  <img src="{{.}}" width="300" style="margin:4px;border:1px solid #ccc">
  {{end}}
  {{end}}
  <p>Referrer: {{.Order.Metadata.Referrer}} &middot; IP: {{.Order.Metadata.IPAddress}}</p>
</body>
</html>`))

func renderCustomerEmail(v orderEmailView) (string, error) {
	var b bytes.Buffer
	if err := customerTmpl.Execute(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderAdminEmail(v orderEmailView) (string, error) {
	var b bytes.Buffer
	if err := adminTmpl.Execute(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

package mailer

import (
	"bytes"
	"html/template"
	"strings"
)

// Template data shared by the customer-facing bodies.
type siteDetails struct {
	Name    string
	Address string
	Phone   string
}

var contactNotificationTmpl = template.Must(template.New("contactNotification").Parse(`
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
<hr>
<p><small>Submitted at: {{.SubmittedAt}}</small></p>
`))

var contactConfirmationTmpl = template.Must(template.New("contactConfirmation").Parse(`
<h2>Thank you for contacting us!</h2>
<p>Dear {{.Name}},</p>
<p>We have received your message and will get back to you as soon as possible.</p>
<p><strong>Your message:</strong></p>
<p>{{.Message}}</p>
<hr>
<p>Best regards,<br>{{.Site.Name}} Team</p>
<p>📍 {{.Site.Address}}</p>
<p>📞 {{.Site.Phone}}</p>
`))

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #d32f2f;">{{if .Back}}Welcome back to {{.Site.Name}}!{{else}}¡Bienvenido to {{.Site.Name}}!{{end}}</h2>
  <p>Hello {{if .Name}}{{.Name}}{{else}}there{{end}},</p>
  {{if .Back}}<p>We're excited to have you back on our newsletter list!</p>{{else}}<p>Thank you for subscribing to our newsletter!</p>{{end}}
  <p>You'll receive updates about:</p>
  <ul>
    <li>🌮 New menu items and specials</li>
    <li>🎉 Special events and promotions</li>
    <li>📅 Weekend Pollo a la Brasa specials</li>
    <li>🎊 Exclusive offers for newsletter subscribers</li>
  </ul>
  <p>Visit us at:</p>
  <p>📍 {{.Site.Address}}</p>
  <p>📞 {{.Site.Phone}}</p>
  <hr>
  <p><small>If you wish to unsubscribe, please reply to this email with "UNSUBSCRIBE".</small></p>
</div>
`))

var newsletterTmpl = template.Must(template.New("newsletter").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #d32f2f;">{{.Site.Name}} Newsletter</h2>
  {{.Content}}
  <hr>
  <p>📍 {{.Site.Address}}</p>
  <p>📞 {{.Site.Phone}}</p>
  <p><small>If you wish to unsubscribe, please reply to this email with "UNSUBSCRIBE".</small></p>
</div>
`))

var orderConfirmationTmpl = template.Must(template.New("orderConfirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #d32f2f;">Order Confirmed</h2>
  <p>Dear {{.CustomerName}},</p>
  <p>Your {{.Type}} order <strong>{{.OrderNumber}}</strong> has been received.</p>
  <ul>
    {{range .Items}}<li>{{.Name}} x {{.Quantity}} — {{printf "%.2f" .LineTotal}}</li>
    {{end}}
  </ul>
  <p>Subtotal: {{printf "%.2f" .Subtotal}}<br>
  VAT (20%): {{printf "%.2f" .Tax}}<br>
  {{if .DeliveryFee}}Delivery fee: {{printf "%.2f" .DeliveryFee}}<br>{{end}}
  <strong>Total: {{printf "%.2f" .Total}}</strong></p>
  <p>We'll let you know as soon as it's ready.</p>
  <p>📍 {{.Site.Address}}</p>
  <p>📞 {{.Site.Phone}}</p>
</div>
`))

var reservationConfirmationTmpl = template.Must(template.New("reservationConfirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #d32f2f;">Reservation Received</h2>
  <p>Dear {{.CustomerName}},</p>
  <p>We have received your reservation for <strong>{{.PartySize}}</strong> on <strong>{{.Date}}</strong> at <strong>{{.Time}}</strong>.</p>
  <p>We'll confirm it shortly. If your plans change, just give us a call.</p>
  <p>📍 {{.Site.Address}}</p>
  <p>📞 {{.Site.Phone}}</p>
</div>
`))

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// Package mailer sends the transactional emails of the site: contact form
// notifications, newsletter welcomes and broadcasts, order and reservation
// confirmations. Delivery failures are the caller's concern to log; nothing
// here retries. When no SMTP host is configured every send returns
// ErrDisabled so the rest of the app keeps working without a mail relay.
package mailer

import (
	"errors"
	"html/template"
	"time"

	"github.com/pacoyass/cantina/config"
	"github.com/pacoyass/cantina/internal/models"

	"gopkg.in/gomail.v2"
)

var ErrDisabled = errors.New("email delivery disabled")

// deliver is swapped out in tests.
var deliver = smtpDeliver

func smtpDeliver(to, subject, htmlBody string) error {
	cfg := config.AppConfig.Email
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.User)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	return d.DialAndSend(m)
}

func Send(to, subject, htmlBody string) error {
	if config.AppConfig == nil || config.AppConfig.Email.Host == "" {
		return ErrDisabled
	}
	return deliver(to, subject, htmlBody)
}

func site() siteDetails {
	return siteDetails{
		Name:    config.AppConfig.Site.Name,
		Address: config.AppConfig.Restaurant.Address,
		Phone:   config.AppConfig.Restaurant.Phone,
	}
}

// SendContactNotification mails the staff inbox about a new contact form
// submission.
func SendContactNotification(msg models.ContactMessage) error {
	body, err := render(contactNotificationTmpl, struct {
		Name, Email, Phone, Subject, Message, SubmittedAt string
	}{msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message, time.Now().Format("2006-01-02 15:04:05")})
	if err != nil {
		return err
	}
	return Send(config.AppConfig.Restaurant.Email, "New Contact Form Submission: "+msg.Subject, body)
}

// SendContactConfirmation acknowledges the submission to the customer.
func SendContactConfirmation(msg models.ContactMessage) error {
	body, err := render(contactConfirmationTmpl, struct {
		Name, Message string
		Site          siteDetails
	}{msg.Name, msg.Message, site()})
	if err != nil {
		return err
	}
	return Send(msg.Email, "Thank you for contacting "+config.AppConfig.Site.Name, body)
}

// SendWelcome greets a new (or returning, when back is true) newsletter
// subscriber.
func SendWelcome(email, name string, back bool) error {
	body, err := render(welcomeTmpl, struct {
		Name string
		Back bool
		Site siteDetails
	}{name, back, site()})
	if err != nil {
		return err
	}
	subject := "Welcome to " + config.AppConfig.Site.Name + " Newsletter!"
	if back {
		subject = "Welcome back to " + config.AppConfig.Site.Name + " Newsletter!"
	}
	return Send(email, subject, body)
}

// SendNewsletter wraps the broadcast content in the house layout and sends it
// to one subscriber.
func SendNewsletter(to, subject, content string) error {
	body, err := render(newsletterTmpl, struct {
		Content template.HTML
		Site    siteDetails
	}{template.HTML(content), site()})
	if err != nil {
		return err
	}
	return Send(to, subject, body)
}

type orderLine struct {
	Name      string
	Quantity  int
	LineTotal float64
}

// SendOrderConfirmation mails the order summary to the customer. Order items
// must be loaded with their menu items.
func SendOrderConfirmation(order models.Order) error {
	lines := make([]orderLine, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		name := ""
		if item.MenuItem != nil {
			name = item.MenuItem.Name
		}
		lines = append(lines, orderLine{Name: name, Quantity: item.Quantity, LineTotal: item.Price * float64(item.Quantity)})
	}
	body, err := render(orderConfirmationTmpl, struct {
		CustomerName, OrderNumber  string
		Type                       models.OrderType
		Items                      []orderLine
		Subtotal, Tax, DeliveryFee float64
		Total                      float64
		Site                       siteDetails
	}{order.CustomerName, order.OrderNumber, order.Type, lines, order.Subtotal, order.Tax, order.DeliveryFee, order.Total, site()})
	if err != nil {
		return err
	}
	return Send(order.CustomerEmail, "Your order "+order.OrderNumber+" at "+config.AppConfig.Site.Name, body)
}

// SendReservationConfirmation acknowledges a new reservation request.
func SendReservationConfirmation(res models.Reservation) error {
	body, err := render(reservationConfirmationTmpl, struct {
		CustomerName, Date, Time string
		PartySize                int
		Site                     siteDetails
	}{res.CustomerName, res.Date.Format("2006-01-02"), res.Time, res.PartySize, site()})
	if err != nil {
		return err
	}
	return Send(res.CustomerEmail, "Your reservation at "+config.AppConfig.Site.Name, body)
}

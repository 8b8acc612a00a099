package notify

import (
	"context"
	"errors"
	"fmt"

	"bakehouse-api/internal/models"
	"bakehouse-api/internal/repository"
)

// ErrNotConfigured is returned when no email API key was provided. The
// intake pipeline treats it like any other send failure: logged, never
// surfaced to the customer.
var ErrNotConfigured = errors.New("email dispatch not configured")

type Email struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// EmailSender is injected into the Dispatcher so tests can substitute a
// fake and no process-wide client singleton is needed.
type EmailSender interface {
	Send(ctx context.Context, email Email) (string, error)
}

type Dispatcher struct {
	sender EmailSender
	images repository.ImageURLBuilder

	fromEmail  string
	adminEmail string
}

func NewDispatcher(sender EmailSender, images repository.ImageURLBuilder, fromEmail, adminEmail string) *Dispatcher {
	return &Dispatcher{
		sender:     sender,
		images:     images,
		fromEmail:  fromEmail,
		adminEmail: adminEmail,
	}
}

// SendCustomerConfirmation renders and sends the acknowledgement email to
// the customer. Requires the order to already carry its id and number.
func (d *Dispatcher) SendCustomerConfirmation(ctx context.Context, order models.Order) (string, error) {
	body, err := renderCustomerEmail(d.view(order))
	if err != nil {
		return "", err
	}
	return d.sender.Send(ctx, Email{
		From:    d.fromEmail,
		To:      []string{order.Customer.Email},
		Subject: fmt.Sprintf("Order received — %s", order.OrderNumber),
		HTML:    body,
	})
}

// SendAdminAlert renders and sends the internal new-order alert.
func (d *Dispatcher) SendAdminAlert(ctx context.Context, order models.Order) (string, error) {
	body, err := renderAdminEmail(d.view(order))
	if err != nil {
		return "", err
	}
	return d.sender.Send(ctx, Email{
		From:    d.fromEmail,
		To:      []string{d.adminEmail},
		ReplyTo: order.Customer.Email,
		Subject: fmt.Sprintf("New order %s from %s", order.OrderNumber, order.Customer.Name),
		HTML:    body,
	})
}

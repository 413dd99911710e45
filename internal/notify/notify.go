// Package notify tells the operator about new bookings and contact messages.
package notify

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"safari-booking/internal/data/entity"
	"safari-booking/pkg/utils"

	"go.uber.org/zap"
)

const sendTimeout = 5 * time.Second

// Message is one outgoing e-mail.
type Message struct {
	To      []string
	Subject string
	HTML    string
	ReplyTo string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Notifier formats submission notifications and hands them to a Sender.
type Notifier interface {
	BookingReceived(ctx context.Context, booking *entity.Booking) error
	ContactReceived(ctx context.Context, msg *entity.ContactMessage) error
}

type notifier struct {
	sender Sender
	to     []string
	log    *zap.Logger
}

func NewNotifier(sender Sender, to string, log *zap.Logger) Notifier {
	return &notifier{
		sender: sender,
		to:     splitRecipients(to),
		log:    log.With(zap.String("component", "notify")),
	}
}

func splitRecipients(to string) []string {
	var out []string
	for _, addr := range strings.Split(to, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

func (n *notifier) BookingReceived(ctx context.Context, booking *entity.Booking) error {
	var b strings.Builder
	b.WriteString("<h2>New booking request</h2><ul>")
	row(&b, "Booking", fmt.Sprintf("#%d", booking.ID))
	row(&b, "Name", booking.FullName)
	row(&b, "Email", booking.Email)
	row(&b, "Phone", booking.Phone)
	if booking.WhatsApp != nil {
		row(&b, "WhatsApp", *booking.WhatsApp)
	}
	if booking.TravelDate != nil {
		row(&b, "Travel date", booking.TravelDate.Format("2006-01-02"))
	}
	row(&b, "Travellers", fmt.Sprintf("%d", booking.NumberOfTravelers))
	if booking.TourPackageID != nil {
		row(&b, "Package", fmt.Sprintf("#%d", *booking.TourPackageID))
	}
	if booking.SpecialRequests != nil {
		row(&b, "Special requests", *booking.SpecialRequests)
	}
	b.WriteString("</ul>")

	return n.send(ctx, Message{
		Subject: fmt.Sprintf("Booking #%d from %s", booking.ID, booking.FullName),
		HTML:    b.String(),
		ReplyTo: replyTo(booking.Email),
	})
}

func (n *notifier) ContactReceived(ctx context.Context, msg *entity.ContactMessage) error {
	var b strings.Builder
	b.WriteString("<h2>New contact message</h2><ul>")
	row(&b, "Message", fmt.Sprintf("#%d", msg.ID))
	row(&b, "Name", msg.Name)
	row(&b, "Email", msg.Email)
	if msg.Phone != nil {
		row(&b, "Phone", *msg.Phone)
	}
	b.WriteString("</ul><p>")
	b.WriteString(strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>"))
	b.WriteString("</p>")

	return n.send(ctx, Message{
		Subject: fmt.Sprintf("Contact message from %s", msg.Name),
		HTML:    b.String(),
		ReplyTo: replyTo(msg.Email),
	})
}

func (n *notifier) send(ctx context.Context, msg Message) error {
	if len(n.to) == 0 {
		n.log.Debug("No notification recipients configured", zap.String("subject", msg.Subject))
		return nil
	}
	msg.To = n.to

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := n.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("send notification %q: %w", msg.Subject, err)
	}
	return nil
}

// replyTo drops visitor addresses the mail provider would reject.
func replyTo(email string) string {
	if utils.IsSimpleEmail(email) {
		return email
	}
	return ""
}

func row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<li><strong>%s:</strong> %s</li>", html.EscapeString(label), html.EscapeString(value))
}

// internal/adapters/mailer/mailer.go
package mailer

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"

	"smarthjem/internal/adapters/observability"
	"smarthjem/internal/domain"
)

var ErrNotConfigured = errors.New("mailer: not configured")

// Mailer delivers booking inquiries to the operator's inbox via MailerSend.
// With no API key or inbox address it stays disabled and every send
// short-circuits without network I/O.
type Mailer struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	inbox   string
	enabled bool
}

func New(apiKey, fromName, fromEmail, inbox string) *Mailer {
	m := &Mailer{
		from:    mailersend.From{Name: fromName, Email: fromEmail},
		inbox:   inbox,
		enabled: apiKey != "" && fromEmail != "" && inbox != "",
	}
	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}
	return m
}

func (m *Mailer) Enabled() bool { return m.enabled }

// NotifyBooking emails the booking to the operator with the guest's address
// as Reply-To, so the operator can answer directly. Returns the provider
// message id.
func (m *Mailer) NotifyBooking(ctx context.Context, b domain.BookingRequest, propertyName string) (string, error) {
	if !m.enabled {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	subject := fmt.Sprintf("Ny bookingforespørsel: %s", propertyName)
	text := bookingText(b, propertyName)

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Email: m.inbox}})
	msg.SetReplyTo(mailersend.ReplyTo{
		Name:  b.FirstName + " " + b.LastName,
		Email: b.Email,
	})
	msg.SetSubject(subject)
	msg.SetText(text)
	msg.SetHTML(bookingHTML(b, propertyName))

	start := time.Now()
	res, err := m.client.Email.Send(ctx, msg)
	if err != nil {
		observability.ObserveExternal("mailersend", "/email", 0, time.Since(start))
		return "", err
	}
	defer res.Body.Close()
	observability.ObserveExternal("mailersend", "/email", res.StatusCode, time.Since(start))

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("mailersend: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
	}
	return res.Header.Get("X-Message-Id"), nil
}

func bookingText(b domain.BookingRequest, propertyName string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Eiendom: %s (%s)\n", propertyName, b.PropertyID)
	fmt.Fprintf(&sb, "Innsjekk: %s\nUtsjekk: %s\nGjester: %d\n", b.CheckIn, b.CheckOut, b.Guests)
	fmt.Fprintf(&sb, "Navn: %s %s\nE-post: %s\nTelefon: %s\n", b.FirstName, b.LastName, b.Email, b.Phone)
	if b.SpecialRequests != "" {
		fmt.Fprintf(&sb, "Spesielle ønsker: %s\n", b.SpecialRequests)
	}
	return sb.String()
}

func bookingHTML(b domain.BookingRequest, propertyName string) string {
	esc := html.EscapeString
	rows := []string{
		fmt.Sprintf("<tr><td>Eiendom</td><td>%s (%s)</td></tr>", esc(propertyName), esc(b.PropertyID)),
		fmt.Sprintf("<tr><td>Innsjekk</td><td>%s</td></tr>", esc(b.CheckIn)),
		fmt.Sprintf("<tr><td>Utsjekk</td><td>%s</td></tr>", esc(b.CheckOut)),
		fmt.Sprintf("<tr><td>Gjester</td><td>%d</td></tr>", b.Guests),
		fmt.Sprintf("<tr><td>Navn</td><td>%s %s</td></tr>", esc(b.FirstName), esc(b.LastName)),
		fmt.Sprintf("<tr><td>E-post</td><td>%s</td></tr>", esc(b.Email)),
		fmt.Sprintf("<tr><td>Telefon</td><td>%s</td></tr>", esc(b.Phone)),
	}
	if b.SpecialRequests != "" {
		rows = append(rows, fmt.Sprintf("<tr><td>Spesielle ønsker</td><td>%s</td></tr>", esc(b.SpecialRequests)))
	}
	return "<table>" + strings.Join(rows, "") + "</table>"
}

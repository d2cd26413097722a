package notification

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"vallit/models"
	"vallit/utils"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

const replyToAddress = "contact@vallit.net"

// SMTPMailer implements NotificationService over an SSL-wrapped SMTP relay.
// Each dispatch opens one authenticated session, sends every message of the
// dispatch over it and closes it; there is no internal retry.
type SMTPMailer struct {
	Host         string
	Port         int
	Username     string
	Password     string
	Sender       string // From address for all outgoing mail
	ContactEmail string // operator inbox for booking alerts
}

// NewSMTPMailer constructs a mailer from explicit relay settings.
func NewSMTPMailer(host string, port int, username, password, sender, contactEmail string) *SMTPMailer {
	return &SMTPMailer{
		Host:         host,
		Port:         port,
		Username:     username,
		Password:     password,
		Sender:       sender,
		ContactEmail: contactEmail,
	}
}

func (m *SMTPMailer) client() (*mail.Client, error) {
	if m.Username == "" || m.Password == "" {
		return nil, fmt.Errorf("missing SMTP credentials")
	}
	return mail.NewClient(m.Host,
		mail.WithPort(m.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.Username),
		mail.WithPassword(m.Password),
		mail.WithTimeout(15*time.Second),
	)
}

// SendBookingConfirmation composes the customer and operator mails and sends
// both over one relay session, the ICS invite attached to each.
func (m *SMTPMailer) SendBookingConfirmation(ctx context.Context, p ConfirmationParams) error {
	logger := utils.GetLogger()
	formattedDate := formatDisplayTime(p.DateTime)

	userMsg := mail.NewMsg()
	if err := userMsg.FromFormat("WTM Consulting", m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := userMsg.To(p.Email); err != nil {
		return fmt.Errorf("invalid customer address %q: %w", p.Email, err)
	}
	if err := userMsg.ReplyTo(replyToAddress); err != nil {
		return fmt.Errorf("invalid reply-to address: %w", err)
	}
	userMsg.Subject("Ihr Termin: " + p.Topic)
	userMsg.SetBodyString(mail.TypeTextHTML, customerBody(p.Name, p.Topic, formattedDate, p.JoinURL))
	if err := userMsg.AttachReader("termin.ics", bytes.NewReader(p.ICS)); err != nil {
		return fmt.Errorf("failed to attach invite: %w", err)
	}

	adminMsg := mail.NewMsg()
	if err := adminMsg.FromFormat("WTM Bot", m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := adminMsg.To(m.ContactEmail); err != nil {
		return fmt.Errorf("invalid operator address %q: %w", m.ContactEmail, err)
	}
	adminMsg.Subject(fmt.Sprintf("📝 NEUE BUCHUNG: %s - %s", p.Name, p.Topic))
	adminMsg.SetBodyString(mail.TypeTextHTML, operatorBody(p, formattedDate))
	if err := adminMsg.AttachReader("booking.ics", bytes.NewReader(p.ICS)); err != nil {
		return fmt.Errorf("failed to attach invite: %w", err)
	}

	client, err := m.client()
	if err != nil {
		return err
	}

	logger.Info("Connecting to SMTP relay",
		zap.String("host", m.Host), zap.Int("port", m.Port))
	if err := client.DialAndSendWithContext(ctx, userMsg, adminMsg); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	logger.Info("Confirmation mails sent",
		zap.String("customer", p.Email), zap.String("operator", m.ContactEmail))
	return nil
}

// SendReminder delivers the day-before reminder to the customer.
func (m *SMTPMailer) SendReminder(ctx context.Context, p models.ReminderPayload) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat("WTM Consulting", m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(p.Email); err != nil {
		return fmt.Errorf("invalid customer address %q: %w", p.Email, err)
	}
	if err := msg.ReplyTo(replyToAddress); err != nil {
		return fmt.Errorf("invalid reply-to address: %w", err)
	}
	msg.Subject("Erinnerung: " + p.Topic)
	msg.SetBodyString(mail.TypeTextHTML, reminderBody(p.Name, p.Topic, formatDisplayTime(p.DateTime), p.JoinURL))

	client, err := m.client()
	if err != nil {
		return err
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

package infra

import (
	"fmt"
	"net/smtp"

	"github.com/angelolorensi/vending-machine-api/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for operator notification mails.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// SendRestockAlert mails the operator that a slot has vended its last unit.
func (m *Mailer) SendRestockAlert(to, machineName, location string, slotNumber int, productName string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Restock needed: %s, slot %d", machineName, slotNumber)
	e.Text = []byte(fmt.Sprintf(
		"Slot %d of machine %q (%s) just vended its last unit of %q.\nPlease schedule a refill.",
		slotNumber, machineName, location, productName,
	))

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}

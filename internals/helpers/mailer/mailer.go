// file: internals/helpers/mailer/mailer.go
package mailer

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"gerejaku_backend/internals/configs"
)

// Mailer sends transactional mail. The app only ever needs verification
// mail; everything heavier stays with the provider.
type Mailer interface {
	SendVerificationEmail(toName, toEmail, verifyURL string) error
}

// New returns the SendGrid mailer, or the console fallback when no API
// key is configured (local dev).
func New() Mailer {
	if configs.SendgridAPIKey == "" {
		return consoleMailer{}
	}
	return sendgridMailer{key: configs.SendgridAPIKey}
}

type sendgridMailer struct {
	key string
}

func (m sendgridMailer) SendVerificationEmail(toName, toEmail, verifyURL string) error {
	from := sgmail.NewEmail(configs.MailFromName, configs.MailFromAddress)
	to := sgmail.NewEmail(toName, toEmail)
	subject := "[GerejaKu] Verify your email address"
	plain := fmt.Sprintf("Hi %s,\n\nPlease verify your email address by opening:\n%s\n\nIf you did not register, ignore this message.", toName, verifyURL)
	html := fmt.Sprintf(`<p>Hi %s,</p><p>Please verify your email address by clicking <a href="%s">this link</a>.</p><p>If you did not register, ignore this message.</p>`, toName, verifyURL)

	msg := sgmail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(m.key)

	resp, err := client.Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// consoleMailer prints the link instead of sending.
type consoleMailer struct{}

func (consoleMailer) SendVerificationEmail(toName, toEmail, verifyURL string) error {
	log.Printf("[MAIL] verification for %s <%s>: %s", toName, toEmail, verifyURL)
	return nil
}

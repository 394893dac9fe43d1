package utils

import (
	"camp/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEnrollmentConfirmation mails the student after a successful payment.
// Called from a goroutine; failures are logged and never surfaced.
func SendEnrollmentConfirmation(email, name, className string, amount float64) error {
	if config.AppConfig.SendGridApiKey == "defaultSecret" {
		log.Printf("SendGrid key not configured, skipping confirmation email to %s", email)
		return nil
	}

	from := mail.NewEmail("Summer Camp", config.AppConfig.EmailSender)
	to := mail.NewEmail(name, email)
	subject := "Enrollment confirmed: " + className

	plain := fmt.Sprintf(
		"Hi %s,\n\nYour payment of $%.2f was received and your seat in %s is confirmed.\n\nSee you in class!",
		name, amount, className,
	)
	html := fmt.Sprintf(
		`<p>Hi %s,</p><p>Your payment of <strong>$%.2f</strong> was received and your seat in <strong>%s</strong> is confirmed.</p><p>See you in class!</p>`,
		name, amount, className,
	)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending enrollment confirmation to %s: %v", email, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Enrollment confirmation to %s rejected: %d %s", email, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	log.Printf("Enrollment confirmation sent to %s for %s", email, className)
	return nil
}

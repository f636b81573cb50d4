package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"os"
)

// Send delivers a plain-text email through the configured SMTP relay.
// When SMTP_HOST is unset (local development, tests) the mail is logged and
// dropped; notification email is best-effort everywhere it is used.
func Send(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		slog.Info("SMTP not configured, dropping email", slog.String("to", to), slog.String("subject", subject))
		return nil
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "no-reply@artisanspace.example"
	}

	message := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", username, password, host)
	if err := smtp.SendMail(host+":"+port, auth, from, []string{to}, message); err != nil {
		slog.Error("failed to send email", slog.String("to", to), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func OrderConfirmation(to, orderRef string, total float64) error {
	body := fmt.Sprintf("Thank you for your order! Your order reference is %s and the total charged is %.2f. We are processing it now.", orderRef, total)
	return Send(to, "Order Confirmation", body)
}

func ProductApprovalNotice(to, productName string, approved bool) error {
	if approved {
		return Send(to, "Listing approved", fmt.Sprintf("Your listing %q has been approved and is now visible to customers.", productName))
	}
	return Send(to, "Listing not approved", fmt.Sprintf("Your listing %q was not approved. Please review the listing guidelines and resubmit.", productName))
}

func TicketReply(to, subject, reply string) error {
	return Send(to, "Re: "+subject, reply)
}

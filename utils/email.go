package utils

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

// VerificationEmailContent returns the subject and body for a verification
// status notification. The second return is false for unknown statuses.
func VerificationEmailContent(name, status string) (string, string, bool) {
	switch status {
	case "verified":
		return "Your verification is complete",
			fmt.Sprintf("Hi %s,\n\nYour identity verification has been approved. You now have full access to your account.", name),
			true
	case "rejected":
		return "Your verification was not approved",
			fmt.Sprintf("Hi %s,\n\nWe were unable to approve your verification. Please contact support for details.", name),
			true
	case "incomplete":
		return "Your verification needs more information",
			fmt.Sprintf("Hi %s,\n\nYour verification is missing required details. Please log in and complete the remaining fields.", name),
			true
	case "pending":
		return "Your verification is under review",
			fmt.Sprintf("Hi %s,\n\nWe have received your verification documents and they are under review.", name),
			true
	}
	return "", "", false
}

// SendVerificationStatusEmail notifies a user that their verification status
// changed. Delivery failures are logged, not returned; mail is best-effort.
func SendVerificationStatusEmail(email, name, status string) {
	subject, body, ok := VerificationEmailContent(name, status)
	if !ok {
		Log.Warnf("No email template for verification status %q", status)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_SENDER"))
	m.SetHeader("To", email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		465,
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASS"),
	)

	if err := d.DialAndSend(m); err != nil {
		Log.Errorf("Failed to send verification email to %s: %v", email, err)
		return
	}

	Log.Infof("Verification email sent to %s (status %s)", email, status)
}

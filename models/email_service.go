package models

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	return &EmailService{dialer: gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)}, nil
}

func (s *EmailService) SendOrderConfirmationEmail(toEmail, orderNumber string, total decimal.Decimal) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%s - Maison Lumine Jewelry", orderNumber))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Georgia, serif; background-color: #faf7f2; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 8px;">
        <h2 style="color: #2b2118;">Maison Lumine Jewelry</h2>
        <p>Thank you for your order!</p>
        <div style="background-color: #f6efe4; padding: 20px; margin: 20px 0; border-radius: 8px;">
            <p><strong>Order Number:</strong> %s</p>
            <p><strong>Total:</strong> $%s</p>
        </div>
        <p>Your order has been received and is being prepared. We'll send tracking details once it ships.</p>
        <p style="color: #8a7b6b; font-size: 12px;">This is an automated email. Please do not reply.</p>
    </div>
</body>
</html>
	`, orderNumber, total.StringFixed(2))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *EmailService) SendTicketReplyEmail(toEmail, subject, reply string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Re: %s - Maison Lumine Support", subject))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Georgia, serif; background-color: #faf7f2; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 8px;">
        <h2 style="color: #2b2118;">Maison Lumine Support</h2>
        <p>Our team has replied to your ticket:</p>
        <div style="background-color: #f6efe4; padding: 20px; margin: 20px 0; border-radius: 8px;">
            <p>%s</p>
        </div>
        <p style="color: #8a7b6b; font-size: 12px;">Reply to this ticket from your account page.</p>
    </div>
</body>
</html>
	`, reply)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

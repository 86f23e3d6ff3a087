package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func loadEmailConfig() EmailConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	return EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// SendEmail sends an HTML email using SMTP
func SendEmail(to, subject, body string) error {
	config := loadEmailConfig()

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}

// SendResetOTPEmail sends a password reset OTP
func SendResetOTPEmail(to, otp string) error {
	body := fmt.Sprintf(`
		<h2>ZestMart Password Reset</h2>
		<p>Use the following OTP to reset your password:</p>
		<h1 style="color: #4CAF50; font-size: 32px; letter-spacing: 5px;">%s</h1>
		<p>This OTP will expire in 10 minutes.</p>
		<p>If you didn't request this reset, please ignore this email.</p>
	`, otp)

	return SendEmail(to, "Your ZestMart Password Reset OTP", body)
}

// SendB2BApprovalEmail notifies a business account that it can now log in
func SendB2BApprovalEmail(to, businessName string) error {
	body := fmt.Sprintf(`
		<h2>Welcome to ZestMart Business</h2>
		<p>The application for <strong>%s</strong> has been approved.</p>
		<p>You can now log in with your registered email and access business pricing.</p>
	`, businessName)

	return SendEmail(to, "Your ZestMart Business account is approved", body)
}

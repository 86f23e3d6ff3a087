package utils

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

var smsClient = &http.Client{Timeout: 10 * time.Second}

// SendSMS delivers a message through the configured SMS gateway. When no
// gateway is configured the message is logged instead, which is what local
// development runs on.
func SendSMS(phone, message string) error {
	gateway := os.Getenv("SMS_GATEWAY_URL")
	if gateway == "" {
		LogInfo("SMS gateway not configured, message for %s: %s", phone, message)
		return nil
	}

	form := url.Values{}
	form.Set("to", phone)
	form.Set("body", message)
	form.Set("from", os.Getenv("SMS_SENDER_ID"))

	req, err := http.NewRequest(http.MethodPost, gateway, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(os.Getenv("SMS_API_KEY"), os.Getenv("SMS_API_SECRET"))

	resp, err := smsClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("SMS gateway returned status %d", resp.StatusCode)
	}

	return nil
}

// SendVerificationSMS sends a phone verification OTP
func SendVerificationSMS(phone, otp string) error {
	return SendSMS(phone, fmt.Sprintf("Your ZestMart verification code is %s. It expires in 10 minutes.", otp))
}

// SendPasswordResetSMS sends a password reset OTP
func SendPasswordResetSMS(phone, otp string) error {
	return SendSMS(phone, fmt.Sprintf("Your ZestMart password reset code is %s. It expires in 10 minutes.", otp))
}

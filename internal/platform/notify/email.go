package notify

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// Mailer delivers transactional mail over SMTP. It performs no retries;
// retry policy belongs to the caller.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(host string, port int, user, pass, from string) *Mailer {
	return &Mailer{dialer: gomail.NewDialer(host, port, user, pass), from: from}
}

// SendOTP mails a verification code. The send is bounded by the context
// deadline; a timeout surfaces as an ordinary delivery error.
func (m *Mailer) SendOTP(ctx context.Context, to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your OTP Verification Code - ELance Portal")
	msg.SetBody("text/html", otpBody(code))

	done := make(chan error, 1)
	go func() { done <- m.dialer.DialAndSend(msg) }()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send otp to %s: %w", to, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("send otp to %s: %w", to, ctx.Err())
	}
}

func otpBody(code string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #0078d4; text-align: center;">ELance Portal</h2>
  <div style="background-color: #f8f9fa; border-radius: 5px; padding: 20px;">
    <p>Hello,</p>
    <p>Your verification code is:</p>
    <div style="background-color: #ffffff; padding: 15px; text-align: center; border-radius: 5px; border: 2px dashed #0078d4;">
      <h1 style="color: #0078d4; margin: 0; font-size: 32px; letter-spacing: 5px;">%s</h1>
    </div>
    <p style="font-size: 14px; color: #666;">This code will expire in 5 minutes.</p>
    <p style="font-size: 14px; color: #666;">If you didn't request this code, please ignore this email.</p>
  </div>
  <p style="text-align: center; color: #666; font-size: 12px;">This is an automated message, please do not reply.<br>&copy; %d ELance Portal. All rights reserved.</p>
</div>`, code, time.Now().Year())
}

package mail

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"healthcareplus/internal/domain/entity"
)

// Mailer delivers one rendered HTML message to one recipient.
type Mailer interface {
	Send(setting *entity.MailSetting, to, subject, htmlBody string) error
}

type smtpMailer struct{}

func NewSMTPMailer() Mailer {
	return &smtpMailer{}
}

func (m *smtpMailer) Send(setting *entity.MailSetting, to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", setting.MailServer, setting.MailPort)

	from := setting.DefaultEmail
	msg := []byte(fmt.Sprintf(
		"From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		setting.DefaultName, from, to, subject, htmlBody,
	))

	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("smtp dial %s: %w", addr, err)
	}
	defer client.Close()

	if setting.MailUseTLS {
		if err := client.StartTLS(&tls.Config{ServerName: setting.MailServer}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}

	auth := smtp.PlainAuth("", setting.MailUsername, setting.MailPassword, setting.MailServer)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}

	return client.Quit()
}

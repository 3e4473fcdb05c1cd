package mailer

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

var ErrNotConfigured = errors.New("mailer: smtp not configured")

type IEmailService interface {
	Send(toEmail, subject, body string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	configured  bool
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	configured := host != "" && username != "" && password != ""

	var d *gomail.Dialer
	if configured {
		d = gomail.NewDialer(host, port, username, password)
	}

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		configured:  configured,
	}
}

func (s *emailService) Send(toEmail, subject, body string) error {
	if !s.configured {
		return ErrNotConfigured
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Message sent to %s\n", toEmail)
	return nil
}

// Package service contains the outbound mail transport and the
// background maintenance jobs.
package service

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// Mailer delivers signup verification codes. Delivery is synchronous
// and not retried; a failed send leaves the stored code valid so the
// user can request a resend.
type Mailer interface {
	SendVerificationCode(to, code string) error
}

type SMTPMailer struct {
	host     string
	port     int
	sender   string
	password string
}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		host:     viper.GetString("mail.host"),
		port:     viper.GetInt("mail.port"),
		sender:   viper.GetString("mail.sender"),
		password: viper.GetString("mail.password"),
	}
}

func (s *SMTPMailer) SendVerificationCode(to, code string) error {
	if to == s.sender {
		return errors.New("invalid email address")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.sender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Verification Code For Sign-Up")
	m.SetBody("text/plain", fmt.Sprintf("Your verification code is: %s\n\nThis code will expire in 15 minutes", code))

	d := gomail.NewDialer(s.host, s.port, s.sender, s.password)

	return d.DialAndSend(m)
}

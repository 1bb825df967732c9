package services

import (
	"fmt"
	"net/smtp"
	"net/url"
	"strings"

	"wander/internal/config"
)

type IMailService interface {
	SendMailToResetPassword(email, token string) error
}

type smtpMailService struct {
	cfg     config.SMTPConfig
	appName string
	baseURL string
}

func NewSMTPMailService(cfg config.SMTPConfig, appName, baseURL string) IMailService {
	return &smtpMailService{cfg: cfg, appName: appName, baseURL: baseURL}
}

func (s *smtpMailService) SendMailToResetPassword(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s",
		strings.TrimRight(s.baseURL, "/"), url.QueryEscape(token))

	subject := "Reset your password"
	body := fmt.Sprintf(
		"We received a request to reset your %s password.\r\n\r\n"+
			"Open the link below to continue. If you didn't request this, you can safely ignore this email.\r\n\r\n%s\r\n",
		s.appName, link)

	return s.send(to, subject, body)
}

func (s *smtpMailService) send(to, subject, body string) error {
	from := s.cfg.From
	msg := strings.Join([]string{
		fmt.Sprintf("From: %s <%s>", s.cfg.FromName, from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	return smtp.SendMail(addr, auth, from, []string{to}, []byte(msg))
}

package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"careshift/internal/config"
)

type Service interface {
	SendAccountApprovedEmail(ctx context.Context, toEmail, fullName string) error
	SendAccountRejectedEmail(ctx context.Context, toEmail, fullName string) error
	SendPayslipEmail(ctx context.Context, toEmail, fullName, period string) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}
}

func (s *service) sendEmail(toEmail, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("CareShift <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body,
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}

func (s *service) SendAccountApprovedEmail(ctx context.Context, toEmail, fullName string) error {
	body := fmt.Sprintf(
		`<p>Hello %s,</p><p>Your account has been approved. You can now sign in at <a href="http://%s/login">%s</a>.</p>`,
		fullName, s.config.Domain, s.config.Domain,
	)
	return s.sendEmail(toEmail, "Your account has been approved", body)
}

func (s *service) SendAccountRejectedEmail(ctx context.Context, toEmail, fullName string) error {
	body := fmt.Sprintf(
		`<p>Hello %s,</p><p>Your registration could not be approved. Please contact your administrator for details.</p>`,
		fullName,
	)
	return s.sendEmail(toEmail, "Your registration was not approved", body)
}

func (s *service) SendPayslipEmail(ctx context.Context, toEmail, fullName, period string) error {
	body := fmt.Sprintf(
		`<p>Hello %s,</p><p>Your payslip for %s is ready. Sign in at <a href="http://%s/payslips">%s</a> to view it.</p>`,
		fullName, period, s.config.Domain, s.config.Domain,
	)
	return s.sendEmail(toEmail, fmt.Sprintf("New payslip for %s", period), body)
}

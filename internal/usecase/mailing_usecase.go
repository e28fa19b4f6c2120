package usecase

import (
	"context"

	"github.com/swifttrack/backoffice/pkg/logger"
)

// Mailer is the outbound email port. Delivery is an external concern; this
// layer only assembles recipient lists and accounts for failures.
type Mailer interface {
	Send(to []string, subject, body string) error
}

type MailingUseCase struct {
	drivers   *DriverUseCase
	customers *CustomerUseCase
	mailer    Mailer
}

func NewMailingUseCase(drivers *DriverUseCase, customers *CustomerUseCase, mailer Mailer) *MailingUseCase {
	return &MailingUseCase{
		drivers:   drivers,
		customers: customers,
		mailer:    mailer,
	}
}

type MailingReport struct {
	Sent   int      `json:"sent"`
	Total  int      `json:"total"`
	Errors []string `json:"errors,omitempty"`
}

// MailCustomers sends one message per customer so a single bad address only
// costs that recipient, and the report can say exactly how far it got.
func (uc *MailingUseCase) MailCustomers(ctx context.Context, subject, body string) MailingReport {
	var emails []string
	for _, c := range uc.customers.GetAllCustomers(ctx) {
		if c.Email != "" {
			emails = append(emails, c.Email)
		}
	}

	report := MailingReport{Total: len(emails)}
	for _, email := range emails {
		if err := uc.mailer.Send([]string{email}, subject, body); err != nil {
			logger.Warn("mailing: failed to send to %s: %v", email, err)
			report.Errors = append(report.Errors, err.Error())
			continue
		}
		report.Sent++
	}
	return report
}

// MailDrivers sends a single batch to all driver addresses; driver blasts are
// rare enough that all-or-nothing matches how staff use them.
func (uc *MailingUseCase) MailDrivers(ctx context.Context, subject, body string) MailingReport {
	var emails []string
	for _, d := range uc.drivers.GetAllDrivers(ctx) {
		if d.Email != "" {
			emails = append(emails, d.Email)
		}
	}

	report := MailingReport{Total: len(emails)}
	if len(emails) == 0 {
		return report
	}

	if err := uc.mailer.Send(emails, subject, body); err != nil {
		logger.Warn("mailing: driver batch failed: %v", err)
		report.Errors = append(report.Errors, err.Error())
		return report
	}
	report.Sent = len(emails)
	return report
}

package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// SubmissionNotificationData holds data for the email sent to the
// configured admin address when a new submission arrives.
type SubmissionNotificationData struct {
	SubmissionID string
	OwnerKind    OwnerKind
	OwnerTitle   string
	Section      SectionSlug
	FieldCount   int
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendSubmissionNotification(ctx context.Context, data *SubmissionNotificationData) error
}

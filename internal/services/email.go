package services

import (
	"context"
	"fmt"

	"multaqa/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	notifyTo string
	baseURL  string
}

// NewEmailService creates an EmailService that sends submission
// notifications to the configured admin address through the given
// template renderer. baseURL is the dashboard origin used to build the
// review link.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, notifyTo, baseURL string) domain.EmailService {
	return &emailService{
		mailer:   mailer,
		renderer: renderer,
		notifyTo: notifyTo,
		baseURL:  baseURL,
	}
}

// submissionNotificationPayload is the template data for the
// submission_notification template set.
type submissionNotificationPayload struct {
	Where      string
	FieldCount int
	ReviewURL  string
}

func (s *emailService) SendSubmissionNotification(ctx context.Context, data *domain.SubmissionNotificationData) error {
	if data == nil {
		return fmt.Errorf("submission notification data is nil")
	}
	if s.notifyTo == "" {
		return nil
	}
	where := string(data.OwnerKind)
	if data.OwnerTitle != "" {
		where = data.OwnerTitle
	}
	if data.Section != "" {
		where = fmt.Sprintf("%s / %s", where, data.Section)
	}
	payload := submissionNotificationPayload{
		Where:      where,
		FieldCount: data.FieldCount,
		ReviewURL:  fmt.Sprintf("%s/admin/submissions/%s", s.baseURL, data.SubmissionID),
	}
	subject, htmlBody, textBody, err := s.renderer.Render("submission_notification", payload)
	if err != nil {
		return fmt.Errorf("render submission_notification template: %w", err)
	}
	if err := s.mailer.Send(s.notifyTo, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send submission notification: %w", err)
	}
	return nil
}

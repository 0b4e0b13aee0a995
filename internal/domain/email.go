package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
// replyTo may be empty; when set, replies to the email go there instead
// of the from address.
type Mailer interface {
	Send(to, replyTo, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ContactMessageEmailData holds data for the contact-form notification email.
type ContactMessageEmailData struct {
	Name    string
	Email   string
	Message string
}

// ContactService delivers contact-form submissions to the collective's inbox.
type ContactService interface {
	SendContactMessage(ctx context.Context, data *ContactMessageEmailData) error
}

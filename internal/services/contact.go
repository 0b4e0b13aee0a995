package services

import (
	"context"
	"fmt"

	"afairytale/internal/domain"
)

type contactService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	toEmail  string
}

// NewContactService creates a ContactService delivering contact-form
// submissions to the collective's inbox.
func NewContactService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, toEmail string) domain.ContactService {
	return &contactService{
		mailer:   mailer,
		renderer: renderer,
		toEmail:  toEmail,
	}
}

func (s *contactService) SendContactMessage(_ context.Context, data *domain.ContactMessageEmailData) error {
	subject, html, text, err := s.renderer.Render("contact_message", data)
	if err != nil {
		return fmt.Errorf("render contact email: %w", err)
	}
	// Replies from the inbox should go to the person who wrote in.
	if err := s.mailer.Send(s.toEmail, data.Email, subject, html, text); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}

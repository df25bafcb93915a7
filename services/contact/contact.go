package contact

import (
	"fmt"

	contentRepo "codabs/database/repository/content"
	"codabs/models"
	"codabs/services/notification"

	"github.com/google/uuid"
)

// ValidationError reports a malformed contact message. Surfaced as a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ContactService stores contact-form messages and forwards them to the operator.
type ContactService interface {
	// Submit validates, stores and forwards a contact message.
	Submit(msg models.ContactMessage) error
}

// DefaultContactService is the production ContactService.
type DefaultContactService struct {
	Repo     contentRepo.ContentRepository
	Notifier notification.NotificationService
}

// Submit validates, stores and forwards a contact message. The stored record
// is the commit point; forwarding failures surface so the visitor can retry.
func (s *DefaultContactService) Submit(msg models.ContactMessage) error {
	if msg.Name == "" || msg.Telephone == "" || msg.From == "" || msg.Subject == "" || msg.Message == "" {
		return &ValidationError{Message: "All fields (name, telephone, from, subject, message) are required"}
	}

	msg.ID = uuid.NewString()
	if err := s.Repo.Insert(&msg); err != nil {
		return fmt.Errorf("failed to store contact message: %w", err)
	}

	body := fmt.Sprintf("From: %s <%s>\nPhone: %s\n\n%s", msg.Name, msg.From, msg.Telephone, msg.Message)
	if err := s.Notifier.SendToOperator(msg.From, msg.Subject, body); err != nil {
		return fmt.Errorf("failed to forward contact message: %w", err)
	}
	return nil
}

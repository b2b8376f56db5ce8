package service

import (
	"context"
	"time"

	"github.com/launchhub/business-portal/internal/core/domain"
	"github.com/launchhub/business-portal/internal/core/ports"
)

// MessageService implements direct messaging between portal users.
type MessageService struct {
	users    ports.UserRepository
	messages ports.MessageRepository
}

func NewMessageService(users ports.UserRepository, messages ports.MessageRepository) *MessageService {
	return &MessageService{users: users, messages: messages}
}

// Send delivers a message unless the recipient has opted out of
// communications.
func (s *MessageService) Send(ctx context.Context, senderID, recipientID uint, subject, body string) (*domain.Message, error) {
	recipient, err := s.users.FindByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if recipient.OptedOut {
		return nil, domain.ErrRecipientOptedOut
	}

	return s.messages.Create(ctx, &domain.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Subject:     subject,
		Body:        body,
	})
}

// Inbox lists the messages addressed to the user, newest first.
func (s *MessageService) Inbox(ctx context.Context, userID uint) ([]domain.Message, error) {
	return s.messages.ListByRecipient(ctx, userID)
}

// MarkRead stamps the message read. A message addressed to someone else
// reads as not found rather than forbidden, so existence is not confirmed.
func (s *MessageService) MarkRead(ctx context.Context, userID, messageID uint) error {
	m, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		return err
	}
	if m.RecipientID != userID {
		return domain.ErrMessageNotFound
	}
	if m.Read() {
		return nil
	}

	m.ReadAt = time.Now().UTC()
	return s.messages.Update(ctx, m)
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/launchhub/business-portal/internal/core/domain"
)

func messagingUsers() *memUserRepo {
	return newMemUserRepo(
		&domain.User{ID: 1, Name: "Sender", Email: "sender@example.com", Role: domain.RoleInternal, Approved: true},
		&domain.User{ID: 2, Name: "Recipient", Email: "recipient@example.com", Role: domain.RoleExternal, Approved: true},
		&domain.User{ID: 3, Name: "Quiet", Email: "quiet@example.com", Role: domain.RoleExternal, Approved: true, OptedOut: true},
	)
}

func TestMessageService_SendAndInbox(t *testing.T) {
	svc := NewMessageService(messagingUsers(), newMemMessageRepo())

	sent, err := svc.Send(context.Background(), 1, 2, "Welcome", "Glad to have you aboard.")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if sent.Read() {
		t.Fatalf("new message must be unread")
	}

	inbox, err := svc.Inbox(context.Background(), 2)
	if err != nil {
		t.Fatalf("inbox: %v", err)
	}
	if len(inbox) != 1 || inbox[0].Subject != "Welcome" {
		t.Fatalf("unexpected inbox: %+v", inbox)
	}

	// The sender's inbox stays empty.
	senderInbox, err := svc.Inbox(context.Background(), 1)
	if err != nil {
		t.Fatalf("inbox: %v", err)
	}
	if len(senderInbox) != 0 {
		t.Fatalf("sent message must not land in the sender's inbox")
	}
}

func TestMessageService_SendToOptedOut(t *testing.T) {
	svc := NewMessageService(messagingUsers(), newMemMessageRepo())

	if _, err := svc.Send(context.Background(), 1, 3, "Hi", "Checking in."); !errors.Is(err, domain.ErrRecipientOptedOut) {
		t.Fatalf("expected ErrRecipientOptedOut, got %v", err)
	}
}

func TestMessageService_SendToUnknownUser(t *testing.T) {
	svc := NewMessageService(messagingUsers(), newMemMessageRepo())

	if _, err := svc.Send(context.Background(), 1, 404, "Hi", "Anyone there?"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMessageService_MarkRead(t *testing.T) {
	messages := newMemMessageRepo()
	svc := NewMessageService(messagingUsers(), messages)

	sent, err := svc.Send(context.Background(), 1, 2, "Welcome", "Hello.")
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if err := svc.MarkRead(context.Background(), 2, sent.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	stored, err := messages.FindByID(context.Background(), sent.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !stored.Read() {
		t.Fatalf("message must be read after MarkRead")
	}
	readAt := stored.ReadAt

	// Marking again is a no-op and keeps the original timestamp.
	if err := svc.MarkRead(context.Background(), 2, sent.ID); err != nil {
		t.Fatalf("second mark read: %v", err)
	}
	stored, _ = messages.FindByID(context.Background(), sent.ID)
	if !stored.ReadAt.Equal(readAt) {
		t.Fatalf("repeat MarkRead must not move the timestamp")
	}
}

// Someone else's message reads as not found, not forbidden.
func TestMessageService_MarkReadWrongRecipient(t *testing.T) {
	svc := NewMessageService(messagingUsers(), newMemMessageRepo())

	sent, err := svc.Send(context.Background(), 1, 2, "Welcome", "Hello.")
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if err := svc.MarkRead(context.Background(), 1, sent.ID); !errors.Is(err, domain.ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

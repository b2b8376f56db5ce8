package domain

import "time"

// Message is a direct message between two portal users.
type Message struct {
	ID          uint      `json:"id"`
	SenderID    uint      `json:"sender_id"`
	RecipientID uint      `json:"recipient_id"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	ReadAt      time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Read reports whether the recipient has opened the message.
func (m *Message) Read() bool {
	return !m.ReadAt.IsZero()
}

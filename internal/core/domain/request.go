package domain

import "time"

// Account request lifecycle states.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestDenied   = "denied"
)

// AccountRequest tracks a self-service signup awaiting an access decision.
// The referenced user row already exists but stays unapproved until the
// request is decided.
type AccountRequest struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	DecidedBy uint      `json:"decided_by,omitempty"`
	DecidedAt time.Time `json:"decided_at,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

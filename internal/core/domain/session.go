package domain

import "time"

// Session is the decoded authority window carried by the session cookie.
//
// Its fields are a point-in-time snapshot of the user row taken at issuance
// (or at the last refresh); they can drift from the database until the cookie
// is re-issued, bounded by the token lifetime. The snapshot deliberately
// excludes the password hash and any other secret material.
type Session struct {
	UserID             uint   `json:"user_id"`
	Email              string `json:"email"`
	Name               string `json:"name"`
	Role               Role   `json:"role"`
	CanApproveRequests bool   `json:"can_approve_requests"`

	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HasFlag reports whether the named permission flag was set on the user at
// snapshot time.
func (s *Session) HasFlag(f Flag) bool {
	switch f {
	case FlagApproveRequests:
		return s.CanApproveRequests
	default:
		return false
	}
}

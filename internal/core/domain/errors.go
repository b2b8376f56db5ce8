package domain

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must never distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountPending is returned when the account exists but has not
	// been approved yet.
	ErrAccountPending = errors.New("account pending approval")
	// ErrTooManyAttempts is returned when the login throttle trips.
	ErrTooManyAttempts = errors.New("too many login attempts")

	// ErrInvalidToken means the session token failed signature or
	// structural verification.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrExpiredToken means the session token verified but is past expiry.
	ErrExpiredToken = errors.New("expired session token")

	// ErrForbidden means the caller is authenticated but its role or
	// permission flags do not satisfy the operation's requirement.
	ErrForbidden = errors.New("access forbidden")

	// ErrInvalidRole is returned when a role outside the enumerated set
	// is supplied.
	ErrInvalidRole = errors.New("invalid role")

	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user already exists")
	ErrRequestNotFound     = errors.New("account request not found")
	ErrRequestDecided      = errors.New("account request already decided")
	ErrBusinessNotFound    = errors.New("business not found")
	ErrMessageNotFound     = errors.New("message not found")
	ErrRecipientOptedOut   = errors.New("recipient opted out of communications")
	ErrCompetitionNotFound = errors.New("competition not found")
	ErrCompetitionClosed   = errors.New("competition closed")
	ErrEntryNotFound       = errors.New("entry not found")
	ErrDuplicateEntry      = errors.New("entry already submitted")
)

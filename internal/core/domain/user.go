package domain

import "time"

// Role is the coarse-grained authorization category assigned to every user.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleInternal Role = "internal"
	RoleExternal Role = "external"
)

// level orders roles so authority comparisons are monotonic:
// admin outranks internal, internal outranks external.
func (r Role) level() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleInternal:
		return 2
	case RoleExternal:
		return 1
	default:
		return 0
	}
}

// Valid reports whether r is one of the three enumerated roles.
func (r Role) Valid() bool {
	return r.level() > 0
}

// AtLeast reports whether r carries at least the authority of other.
// An unrecognised role never satisfies anything.
func (r Role) AtLeast(other Role) bool {
	return r.level() > 0 && r.level() >= other.level()
}

// Flag names a fine-grained boolean capability attached to a user beyond
// its role.
type Flag string

// FlagApproveRequests grants authority to approve or deny pending account
// requests.
const FlagApproveRequests Flag = "can_approve_requests"

// User models an account holder in the portal.
type User struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	Phone              string    `json:"phone,omitempty"`
	Email              string    `json:"email"`
	PasswordHash       string    `json:"-"`
	Role               Role      `json:"role"`
	Approved           bool      `json:"approved"`
	HasBusiness        bool      `json:"has_business"`
	OptedOut           bool      `json:"opted_out"`
	CanApproveRequests bool      `json:"can_approve_requests"`
	Address            string    `json:"address,omitempty"`
	City               string    `json:"city,omitempty"`
	State              string    `json:"state,omitempty"`
	Zip                string    `json:"zip,omitempty"`
	PhotoURL           string    `json:"photo_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// HasFlag reports whether the named permission flag is set on the user.
func (u *User) HasFlag(f Flag) bool {
	switch f {
	case FlagApproveRequests:
		return u.CanApproveRequests
	default:
		return false
	}
}

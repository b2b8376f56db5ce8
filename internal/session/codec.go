package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/launchhub/business-portal/internal/core/domain"
)

// TokenTTL is the fixed session lifetime. Expiry is the only revocation
// mechanism; no server-side session state exists.
const TokenTTL = time.Hour

// claims is the signed payload: a minimal snapshot of the user plus the
// registered expiry and issued-at fields. The password hash and any other
// secret material are excluded from the token.
type claims struct {
	UserID             uint        `json:"user_id"`
	Email              string      `json:"email"`
	Name               string      `json:"name"`
	Role               domain.Role `json:"role"`
	CanApproveRequests bool        `json:"can_approve_requests"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a symmetric secret using
// HS256. The secret is injected at construction, never read from ambient
// state, so tests can supply a fixture value.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// NewCodec builds a Codec around the given secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret), now: time.Now}
}

// Encode issues a signed token for the user with a fresh TokenTTL window
// and returns the session snapshot it carries.
func (c *Codec) Encode(user *domain.User) (string, *domain.Session, error) {
	now := c.now().UTC()
	sess := &domain.Session{
		UserID:             user.ID,
		Email:              user.Email,
		Name:               user.Name,
		Role:               user.Role,
		CanApproveRequests: user.CanApproveRequests,
		IssuedAt:           now,
		ExpiresAt:          now.Add(TokenTTL),
	}

	cl := claims{
		UserID:             sess.UserID,
		Email:              sess.Email,
		Name:               sess.Name,
		Role:               sess.Role,
		CanApproveRequests: sess.CanApproveRequests,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(sess.IssuedAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(c.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}
	return token, sess, nil
}

// Decode verifies the token signature and expiry and returns the session it
// carries. It returns domain.ErrExpiredToken when the token verified but is
// past expiry, and domain.ErrInvalidToken for every other failure. An
// unverified payload is never trusted, and a token signed with a different
// algorithm is rejected outright.
func (c *Codec) Decode(token string) (*domain.Session, error) {
	var cl claims
	parsed, err := jwt.ParseWithClaims(token, &cl, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}
	if !parsed.Valid || !cl.Role.Valid() {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Session{
		UserID:             cl.UserID,
		Email:              cl.Email,
		Name:               cl.Name,
		Role:               cl.Role,
		CanApproveRequests: cl.CanApproveRequests,
		IssuedAt:           cl.IssuedAt.Time,
		ExpiresAt:          cl.ExpiresAt.Time,
	}, nil
}

package jwt

import (
	"time"
)

// Claims represents the verified token claims consumed by the
// authorization layer.
type Claims struct {
	Subject string
	Roles   []string
}

// Signer defines methods for signing and verifying JWT tokens.
type Signer interface {
	Sign(subject string, roles []string, duration time.Duration) (token string, err error)
	Verify(tokenString string) (*Claims, error)
}

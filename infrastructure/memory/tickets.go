package memory

import (
	"crewcast/errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TicketCodec signs the opaque part of invitation keys.
type TicketCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTicketCodec issues tickets valid for ttl, or forever when ttl is zero.
func NewTicketCodec(secret string, ttl time.Duration) *TicketCodec {
	return &TicketCodec{secret: []byte(secret), ttl: ttl}
}

func (c *TicketCodec) Issue(topicID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:       uuid.NewString(),
		Subject:  topicID,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if c.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(c.ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify returns the topic id carried by a ticket.
func (c *TicketCodec) Verify(ticket string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(ticket, &claims, func(token *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidTicket, err)
	}
	if claims.Subject == "" {
		return "", errors.ErrInvalidTicket
	}
	return claims.Subject, nil
}

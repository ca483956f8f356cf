package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Member is one entry of a topic roster.
// IsActive is derived from LastSeenAt by the periodic sweep.
type Member struct {
	NodeID     string
	FirstName  string
	LastName   string
	LastSeenAt time.Time
	IsActive   bool
}

// MemberMeta is the user block carried by check-in broadcasts.
type MemberMeta struct {
	Email     string
	FirstName string
	LastName  string
}

func (m Member) DisplayName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// Initial is the upper-cased first letter of the first name, used as an avatar.
func (m Member) Initial() string {
	r, _ := utf8.DecodeRuneInString(m.FirstName)
	if r == utf8.RuneError {
		return "?"
	}
	return strings.ToUpper(string(r))
}

func (m Member) StatusLabel() string {
	if m.IsActive {
		return "Active"
	}
	return "Inactive"
}

package domain

import (
	"crewcast/errors"
	"strings"

	"github.com/samber/lo"
)

// Topic is a named channel grouping a roster, a chat and shared files.
type Topic struct {
	ID          int64    `json:"id"`
	TopicID     string   `json:"topicId"`
	Name        string   `json:"name"`
	OwnerNodeID string   `json:"owner"`
	Members     []string `json:"members"`
}

// Roster is the authoritative member list: the owner followed by the members, without duplicates.
func (t Topic) Roster() []string {
	all := append([]string{t.OwnerNodeID}, t.Members...)
	return lo.Uniq(lo.Compact(all))
}

// ParseTicketKey splits an invitation key of the form "name:ticket".
func ParseTicketKey(key string) (string, string, error) {
	parts := strings.Split(strings.TrimSpace(key), ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.ErrInvalidTicket
	}
	return parts[0], parts[1], nil
}

func TicketKey(name, ticket string) string {
	return name + ":" + ticket
}

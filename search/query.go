package search

import (
	"strconv"
	"strings"
)

const defaultLimit = 10

// Query is a parsed /find command.
type Query struct {
	RawInput string
	Terms    string // free text matched against message content
	Language string // ISO 639-1 code, from --lang
	From     string // sender first name, from --from
	Limit    int
}

// ParseQuery reads a command line such as: /find release notes --lang en --from sarah --limit 5
// Unknown flags are ignored along with their value.
func ParseQuery(input string) Query {
	query := Query{RawInput: input, Limit: defaultLimit}

	parts := strings.Fields(input)
	var terms []string
	for i := 0; i < len(parts); i++ {
		part := parts[i]

		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			value := parts[i+1]
			switch strings.TrimPrefix(part, "--") {
			case "lang":
				query.Language = strings.ToLower(value)
			case "from":
				query.From = strings.ToLower(value)
			case "limit":
				if n, err := strconv.Atoi(value); err == nil && n > 0 {
					query.Limit = n
				}
			}
			i++
			continue
		}

		if !strings.HasPrefix(part, "/") {
			terms = append(terms, part)
		}
	}
	query.Terms = strings.Join(terms, " ")
	return query
}

// IsEmpty reports whether the query has neither terms nor filters.
func (q Query) IsEmpty() bool {
	return q.Terms == "" && q.Language == "" && q.From == ""
}

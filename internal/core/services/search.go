package services

import (
	"strings"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
)

// SearchFields returns the searchable text of a record.
type SearchFields[T any] func(T) []string

// MatchesSearch reports whether any field contains query, ignoring case. An empty query matches everything.
func MatchesSearch(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// FilterBySearch keeps the records matching query, in order.
func FilterBySearch[T any](records []T, query string, fields SearchFields[T]) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if fields == nil || MatchesSearch(query, fields(r)...) {
			out = append(out, r)
		}
	}
	return out
}

func clientSearchFields(c domain.Client) []string {
	return []string{c.Name, c.RegistrationID}
}

func clientGroupSearchFields(g domain.ClientGroup) []string {
	return []string{g.Name}
}

func contactSearchFields(c domain.Contact) []string {
	fields := []string{c.FirstName, c.LastName}
	for _, e := range c.Emails {
		fields = append(fields, e.Address)
	}
	return fields
}

func industrySearchFields(i domain.Industry) []string {
	return []string{i.Name}
}

func serviceTypeSearchFields(s domain.ServiceType) []string {
	return []string{s.Name}
}

func serviceSubscribedSearchFields(s domain.ServiceSubscribed) []string {
	return []string{s.ServiceType.Name}
}

func invitationSearchFields(i domain.Invitation) []string {
	return []string{i.Email}
}

func linkTypeSearchFields(l domain.LinkType) []string {
	return []string{l.Name, l.Entity}
}

func linkSearchFields(l domain.Link) []string {
	return []string{l.URL, l.LinkType, l.Entity}
}

func toolSearchFields(t domain.Tool) []string {
	return []string{t.Name}
}

func practiceSearchFields(p domain.Practice) []string {
	return []string{p.Name}
}

package services

import (
	"fmt"
	"strings"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
)

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationFailedError(name + " is required")
	}
	return nil
}

func prepareClient(c *domain.Client) error {
	c.Name = strings.TrimSpace(c.Name)
	if err := requireField("name", c.Name); err != nil {
		return err
	}
	switch c.Status {
	case "", domain.ClientStatusProspect, domain.ClientStatusCurrent, domain.ClientStatusDormant, domain.ClientStatusCeased:
		return nil
	default:
		return apperrors.NewValidationFailedError(fmt.Sprintf("unknown client status %q", c.Status))
	}
}

func prepareClientGroup(g *domain.ClientGroup) error {
	g.Name = strings.TrimSpace(g.Name)
	return requireField("name", g.Name)
}

func prepareContact(c *domain.Contact) error {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	if c.FirstName == "" && c.LastName == "" {
		return apperrors.NewValidationFailedError("first or last name is required")
	}
	c.NormalizeDefaults()
	return nil
}

func prepareIndustry(i *domain.Industry) error {
	i.Name = strings.TrimSpace(i.Name)
	return requireField("name", i.Name)
}

func prepareServiceType(s *domain.ServiceType) error {
	s.Name = strings.TrimSpace(s.Name)
	return requireField("name", s.Name)
}

func prepareServiceSubscribed(s *domain.ServiceSubscribed) error {
	if s.ServiceType.ID.IsZero() {
		return apperrors.NewValidationFailedError("serviceType is required")
	}
	if s.Frequency != "" && !s.Frequency.IsValid() {
		return apperrors.NewValidationFailedError(fmt.Sprintf("unknown frequency %q", s.Frequency))
	}
	if s.MonthlyRecurringRevenue != nil && s.MonthlyRecurringRevenue.IsNegative() {
		return apperrors.NewValidationFailedError("mrr must not be negative")
	}
	return nil
}

func prepareLink(l *domain.Link) error {
	l.URL = strings.TrimSpace(l.URL)
	if err := requireField("url", l.URL); err != nil {
		return err
	}
	return requireField("entity", l.Entity)
}

func prepareLinkType(l *domain.LinkType) error {
	l.Name = strings.TrimSpace(l.Name)
	if err := requireField("name", l.Name); err != nil {
		return err
	}
	return requireField("entity", l.Entity)
}

func prepareTool(t *domain.Tool) error {
	t.Name = strings.TrimSpace(t.Name)
	return requireField("name", t.Name)
}

func preparePractice(p *domain.Practice) error {
	p.Name = strings.TrimSpace(p.Name)
	return requireField("name", p.Name)
}

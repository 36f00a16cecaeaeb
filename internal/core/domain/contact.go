package domain

import (
	"fmt"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
)

// ContactEmail is one email address of a contact.
type ContactEmail struct {
	Address   string `json:"email"`
	Label     string `json:"label,omitempty"`
	IsDefault bool   `json:"isDefault"`
}

// ContactPhone is one phone number of a contact. Default call and default SMS are independent flags.
type ContactPhone struct {
	Number       string `json:"number"`
	Label        string `json:"label,omitempty"`
	IsDefault    bool   `json:"isDefault"`
	IsDefaultSMS bool   `json:"isDefaultSms"`
}

// Contact is a person associated with client groups and/or client entities.
type Contact struct {
	ID             ID             `json:"id"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Title          string         `json:"title,omitempty"`
	Emails         []ContactEmail `json:"emails,omitempty"`
	Phones         []ContactPhone `json:"phones,omitempty"`
	DateOfBirth    string         `json:"dateOfBirth,omitempty"`
	Permissions    []string       `json:"permissions,omitempty"`
	Comments       string         `json:"comments,omitempty"`
	ClientGroupIDs []ID           `json:"clientGroupIds,omitempty"`
	ClientIDs      []ID           `json:"clientIds,omitempty"`
	Timestamps
}

// FullName joins first and last name.
func (c Contact) FullName() string {
	return joinName(c.FirstName, c.LastName)
}

// DefaultEmail returns the address flagged as default, or "".
func (c Contact) DefaultEmail() string {
	for _, e := range c.Emails {
		if e.IsDefault {
			return e.Address
		}
	}
	return ""
}

// SetDefaultEmail flags email i as the default and clears every other email.
func (c *Contact) SetDefaultEmail(i int) error {
	if i < 0 || i >= len(c.Emails) {
		return fmt.Errorf("%w: email index %d out of range", apperrors.ErrValidation, i)
	}
	for j := range c.Emails {
		c.Emails[j].IsDefault = j == i
	}
	return nil
}

// SetDefaultPhone flags phone i as the default call number and clears every other phone.
func (c *Contact) SetDefaultPhone(i int) error {
	if i < 0 || i >= len(c.Phones) {
		return fmt.Errorf("%w: phone index %d out of range", apperrors.ErrValidation, i)
	}
	for j := range c.Phones {
		c.Phones[j].IsDefault = j == i
	}
	return nil
}

// SetDefaultSMS flags phone i as the default SMS number. The call default is left untouched.
func (c *Contact) SetDefaultSMS(i int) error {
	if i < 0 || i >= len(c.Phones) {
		return fmt.Errorf("%w: phone index %d out of range", apperrors.ErrValidation, i)
	}
	for j := range c.Phones {
		c.Phones[j].IsDefaultSMS = j == i
	}
	return nil
}

// NormalizeDefaults makes sure exactly one email and one phone carry the default flag when any exist.
// The first flagged entry wins; if none is flagged the first entry becomes the default.
func (c *Contact) NormalizeDefaults() {
	if len(c.Emails) > 0 {
		_ = c.SetDefaultEmail(firstFlagged(len(c.Emails), func(i int) bool { return c.Emails[i].IsDefault }))
	}
	if len(c.Phones) > 0 {
		_ = c.SetDefaultPhone(firstFlagged(len(c.Phones), func(i int) bool { return c.Phones[i].IsDefault }))
	}
}

func firstFlagged(n int, flagged func(int) bool) int {
	for i := 0; i < n; i++ {
		if flagged(i) {
			return i
		}
	}
	return 0
}

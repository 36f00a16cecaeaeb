package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Timestamps holds the creation/update times the practice backend reports for every record.
type Timestamps struct {
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ID is a record identifier. Different backend endpoints emit identifiers either as JSON strings or
// as JSON numbers, so ID accepts both and always compares as a string.
type ID string

// UnmarshalJSON accepts "abc", 42 and null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// String returns the identifier text.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty.
func (id ID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// SameID compares two identifiers by their string form.
func SameID(a, b ID) bool {
	return !a.IsZero() && strings.TrimSpace(string(a)) == strings.TrimSpace(string(b))
}

// IDs converts plain strings into identifiers.
func IDs(values ...string) []ID {
	out := make([]ID, 0, len(values))
	for _, v := range values {
		out = append(out, ID(v))
	}
	return out
}

// Unassigned is shown in place of a relationship that could not be resolved.
const Unassigned = "N/A"

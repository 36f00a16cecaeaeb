package domain

import "strings"

// UserLevel is the access level of a user or of an invitation.
type UserLevel string

const (
	LevelAdmin  UserLevel = "admin"
	LevelStaff  UserLevel = "staff"
	LevelClient UserLevel = "client"
)

// User represents a staff user account on the practice backend.
type User struct {
	ID        ID        `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Status    string    `json:"status,omitempty"`
	Level     UserLevel `json:"level,omitempty"`
	Timestamps
}

// FullName joins first and last name.
func (u User) FullName() string {
	return joinName(u.FirstName, u.LastName)
}

// InvitationStatus is the lifecycle status of an invitation.
type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "pending"
	InvitationAccepted  InvitationStatus = "accepted"
	InvitationCancelled InvitationStatus = "cancelled"
)

// Invitation is an offer for a person to join the practice before they own an account.
type Invitation struct {
	ID     ID               `json:"id"`
	Email  string           `json:"email"`
	Status InvitationStatus `json:"status,omitempty"`
	Level  UserLevel        `json:"level,omitempty"` // optional
	Timestamps
}

// IsPending reports whether the invitation can still be withdrawn. A missing status is pending.
func (i Invitation) IsPending() bool {
	return i.Status == "" || i.Status == InvitationPending
}

// StaffMemberStatus values used by the merged staff view.
const (
	StaffStatusActive  = "active"
	StaffStatusPending = "pending"
)

// StaffMember is the merged view of a user or a pending invitation filling a staff slot.
type StaffMember struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// StaffMemberFromUser builds the merged view of a user.
func StaffMemberFromUser(u User) StaffMember {
	status := u.Status
	if status == "" {
		status = StaffStatusActive
	}
	return StaffMember{ID: u.ID, Name: u.FullName(), Email: u.Email, Status: status}
}

// StaffMemberFromInvitation builds the merged view of an invitation; the email doubles as the name.
func StaffMemberFromInvitation(inv Invitation) StaffMember {
	return StaffMember{ID: inv.ID, Name: inv.Email, Email: inv.Email, Status: StaffStatusPending}
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

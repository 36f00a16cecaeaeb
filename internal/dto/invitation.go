package dto

import (
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
)

// CreateInvitationRequest is the body of POST /invitations.
type CreateInvitationRequest struct {
	Email string `json:"email" binding:"required,email"`
	Level string `json:"level,omitempty" binding:"omitempty,oneof=admin staff client"`
}

// ToInput converts the request for the invitation service.
func (r CreateInvitationRequest) ToInput() portssvc.CreateInvitationInput {
	return portssvc.CreateInvitationInput{Email: r.Email, Level: domain.UserLevel(r.Level)}
}

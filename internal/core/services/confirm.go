package services

import (
	"context"
	"fmt"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
)

// Severity says how many explicit confirmations a destructive action needs.
type Severity int

const (
	SeverityStandard Severity = iota + 1
	SeverityHigh
)

// Required returns the number of confirmations for the severity.
func (s Severity) Required() int {
	if s == SeverityHigh {
		return 2
	}
	return 1
}

func (s Severity) String() string {
	if s == SeverityHigh {
		return "high"
	}
	return "standard"
}

// Resource names used for confirmation and guard keys.
const (
	ResourceClients            = "clients"
	ResourceClientGroups       = "client-groups"
	ResourceContacts           = "contacts"
	ResourceIndustries         = "industries"
	ResourceServiceTypes       = "service-types"
	ResourceServicesSubscribed = "services-subscribed"
	ResourceInvitations        = "invitations"
	ResourceLinks              = "links"
	ResourceLinkTypes          = "link-types"
	ResourceTools              = "tools"
	ResourcePractices          = "practices"
	ResourceChatPreferences    = "chat-preferences"
)

var highSeverityResources = map[string]bool{
	ResourceContacts:           true,
	ResourceLinks:              true,
	ResourceServicesSubscribed: true,
}

// SeverityFor returns the delete severity of a resource.
func SeverityFor(resource string) Severity {
	if highSeverityResources[resource] {
		return SeverityHigh
	}
	return SeverityStandard
}

// DestructiveAction describes what is about to be removed.
type DestructiveAction struct {
	Resource string
	ID       domain.ID
}

// ConfirmationError reports how many confirmations the action needs.
type ConfirmationError struct {
	Action   DestructiveAction
	Required int
	Given    int
}

func (e *ConfirmationError) Error() string {
	return fmt.Sprintf("deleting %s %s needs %d confirmation(s), got %d", e.Action.Resource, e.Action.ID, e.Required, e.Given)
}

func (e *ConfirmationError) Unwrap() error {
	return apperrors.ErrConfirmationRequired
}

// Confirmer decides whether a destructive action may proceed.
type Confirmer interface {
	ConfirmDestructive(ctx context.Context, action DestructiveAction, severity Severity) error
}

// ContextConfirmer checks the confirmation count the HTTP layer stored on the context.
type ContextConfirmer struct{}

// NewContextConfirmer creates a ContextConfirmer.
func NewContextConfirmer() *ContextConfirmer {
	return &ContextConfirmer{}
}

// ConfirmDestructive returns a *ConfirmationError when fewer confirmations than required were given.
func (ContextConfirmer) ConfirmDestructive(ctx context.Context, action DestructiveAction, severity Severity) error {
	given := domain.ConfirmationsFromContext(ctx)
	if given < severity.Required() {
		return &ConfirmationError{Action: action, Required: severity.Required(), Given: given}
	}
	return nil
}

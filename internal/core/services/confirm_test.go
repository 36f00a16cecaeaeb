package services_test

import (
	"testing"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		resource string
		want     services.Severity
		required int
	}{
		{services.ResourceContacts, services.SeverityHigh, 2},
		{services.ResourceLinks, services.SeverityHigh, 2},
		{services.ResourceServicesSubscribed, services.SeverityHigh, 2},
		{services.ResourceClients, services.SeverityStandard, 1},
		{services.ResourceInvitations, services.SeverityStandard, 1},
		{services.ResourceTools, services.SeverityStandard, 1},
		{"unknown", services.SeverityStandard, 1},
	}
	for _, tt := range tests {
		t.Run(tt.resource, func(t *testing.T) {
			got := services.SeverityFor(tt.resource)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.required, got.Required())
		})
	}
}

func TestContextConfirmer(t *testing.T) {
	confirmer := services.NewContextConfirmer()
	action := services.DestructiveAction{Resource: services.ResourceContacts, ID: "3"}

	err := confirmer.ConfirmDestructive(confirmed(1), action, services.SeverityHigh)
	assert.ErrorIs(t, err, apperrors.ErrConfirmationRequired)
	assert.Contains(t, err.Error(), "needs 2 confirmation(s), got 1")

	assert.NoError(t, confirmer.ConfirmDestructive(confirmed(2), action, services.SeverityHigh))
	assert.NoError(t, confirmer.ConfirmDestructive(confirmed(5), action, services.SeverityStandard))
}

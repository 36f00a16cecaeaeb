package backend_test

import (
	"net/url"
	"testing"

	"github.com/Theakashprasad/practice-tool-client/internal/adapters/backend"
	"github.com/stretchr/testify/assert"
)

func TestEndpoints(t *testing.T) {
	e := backend.NewEndpoints("https://api.example.com/v1/")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"collection", e.Collection(backend.ResourceClients), "https://api.example.com/v1/clients"},
		{"by id", e.ByID(backend.ResourceServicesSubscribed, "42"), "https://api.example.com/v1/services-subscribed/42"},
		{"escaped id", e.ByID(backend.ResourceContacts, "a/b"), "https://api.example.com/v1/contacts/a%2Fb"},
		{"action", e.Action(backend.ResourceInvitations, "7", "withdraw"), "https://api.example.com/v1/invitations/7/withdraw"},
		{"staff users", e.StaffUsers(), "https://api.example.com/v1/users?level=staff"},
		{"query without params", e.Query(backend.ResourceTools, url.Values{}), "https://api.example.com/v1/tools"},
		{"login", e.Login(), "https://api.example.com/v1/auth/login"},
		{"register", e.Register(), "https://api.example.com/v1/auth/register"},
		{"logout", e.Logout(), "https://api.example.com/v1/auth/logout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

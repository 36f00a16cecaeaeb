package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Theakashprasad/practice-tool-client/internal/adapters/backend"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures the method and path of every request and answers from a route table.
type recorder struct {
	calls  []string
	routes map[string]string
}

func (rec *recorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.RequestURI()
	rec.calls = append(rec.calls, key)
	body, ok := rec.routes[key]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if body == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	_, _ = w.Write([]byte(body))
}

func TestRepositoryProvider_Routes(t *testing.T) {
	rec := &recorder{routes: map[string]string{
		"GET /clients":                 `null`,
		"GET /clients/C1":              `{"id": "C1", "name": "Acme"}`,
		"PUT /contacts/K1":             `{"id": "K1", "firstName": "Kim"}`,
		"DELETE /links/L1":             ``,
		"GET /users?level=staff":       `[{"id": 1, "first_name": "Ann"}]`,
		"POST /invitations/7/withdraw": ``,
		"GET /chat-preferences":        `{"emailEnabled": true}`,
		"POST /services-subscribed":    `{"id": 3, "serviceType": {"id": "S1", "name": "Tax"}}`,
	}}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	repos := backend.NewRepositoryProvider(newTestClient(0), backend.NewEndpoints(srv.URL))
	ctx := context.Background()

	clients, err := repos.Clients.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)

	client, err := repos.Clients.FindByID(ctx, "C1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", client.Name)

	contact, err := repos.Contacts.Update(ctx, "K1", domain.Contact{FirstName: "Kim"})
	require.NoError(t, err)
	assert.Equal(t, domain.ID("K1"), contact.ID)

	require.NoError(t, repos.Links.Delete(ctx, "L1"))

	staff, err := repos.Users.ListStaffUsers(ctx)
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, domain.ID("1"), staff[0].ID)

	require.NoError(t, repos.Invitations.Withdraw(ctx, "7"))

	pref, err := repos.ChatPreferences.GetChatPreference(ctx)
	require.NoError(t, err)
	assert.True(t, pref.EmailEnabled)

	sub, err := repos.ServicesSubscribed.Create(ctx, domain.ServiceSubscribed{ServiceType: domain.ServiceTypeRef{ID: "S1"}})
	require.NoError(t, err)
	assert.Equal(t, "Tax", sub.ServiceType.Name)

	assert.Equal(t, []string{
		"GET /clients",
		"GET /clients/C1",
		"PUT /contacts/K1",
		"DELETE /links/L1",
		"GET /users?level=staff",
		"POST /invitations/7/withdraw",
		"GET /chat-preferences",
		"POST /services-subscribed",
	}, rec.calls)
}

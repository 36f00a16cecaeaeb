package backend

import (
	"context"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portsrepo "github.com/Theakashprasad/practice-tool-client/internal/core/ports/repositories"
)

// ResourceGateway is the REST repository for one backend collection.
type ResourceGateway[T any] struct {
	client    *Client
	endpoints Endpoints
	resource  Resource
}

// NewResourceGateway creates the gateway for resource.
func NewResourceGateway[T any](client *Client, endpoints Endpoints, resource Resource) *ResourceGateway[T] {
	return &ResourceGateway[T]{client: client, endpoints: endpoints, resource: resource}
}

func (g *ResourceGateway[T]) List(ctx context.Context) ([]T, error) {
	var records []T
	if err := g.client.Get(ctx, g.endpoints.Collection(g.resource), &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (g *ResourceGateway[T]) FindByID(ctx context.Context, id domain.ID) (*T, error) {
	var record T
	if err := g.client.Get(ctx, g.endpoints.ByID(g.resource, id), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (g *ResourceGateway[T]) Create(ctx context.Context, record T) (*T, error) {
	var created T
	if err := g.client.Post(ctx, g.endpoints.Collection(g.resource), record, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *ResourceGateway[T]) Update(ctx context.Context, id domain.ID, record T) (*T, error) {
	var updated T
	if err := g.client.Put(ctx, g.endpoints.ByID(g.resource, id), record, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *ResourceGateway[T]) Delete(ctx context.Context, id domain.ID) error {
	return g.client.Delete(ctx, g.endpoints.ByID(g.resource, id))
}

// UserGateway reads backend user accounts.
type UserGateway struct {
	*ResourceGateway[domain.User]
}

// NewUserGateway creates the users gateway.
func NewUserGateway(client *Client, endpoints Endpoints) *UserGateway {
	return &UserGateway{ResourceGateway: NewResourceGateway[domain.User](client, endpoints, ResourceUsers)}
}

// ListStaffUsers lists users with level=staff.
func (g *UserGateway) ListStaffUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := g.client.Get(ctx, g.endpoints.StaffUsers(), &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// InvitationGateway adds the withdraw action to the invitations collection.
type InvitationGateway struct {
	*ResourceGateway[domain.Invitation]
}

// NewInvitationGateway creates the invitations gateway.
func NewInvitationGateway(client *Client, endpoints Endpoints) *InvitationGateway {
	return &InvitationGateway{ResourceGateway: NewResourceGateway[domain.Invitation](client, endpoints, ResourceInvitations)}
}

// Withdraw posts the withdraw action.
func (g *InvitationGateway) Withdraw(ctx context.Context, id domain.ID) error {
	return g.client.Post(ctx, g.endpoints.Action(ResourceInvitations, id, "withdraw"), struct{}{}, nil)
}

// ChatPreferenceGateway reads and writes the signed-in user's chat preferences.
type ChatPreferenceGateway struct {
	client    *Client
	endpoints Endpoints
}

// NewChatPreferenceGateway creates the chat preference gateway.
func NewChatPreferenceGateway(client *Client, endpoints Endpoints) *ChatPreferenceGateway {
	return &ChatPreferenceGateway{client: client, endpoints: endpoints}
}

func (g *ChatPreferenceGateway) GetChatPreference(ctx context.Context) (*domain.ChatPreference, error) {
	var pref domain.ChatPreference
	if err := g.client.Get(ctx, g.endpoints.Collection(ResourceChatPreferences), &pref); err != nil {
		return nil, err
	}
	return &pref, nil
}

func (g *ChatPreferenceGateway) UpdateChatPreference(ctx context.Context, pref domain.ChatPreference) (*domain.ChatPreference, error) {
	var updated domain.ChatPreference
	if err := g.client.Put(ctx, g.endpoints.Collection(ResourceChatPreferences), pref, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

var (
	_ portsrepo.ResourceRepositoryFacade[domain.Client] = (*ResourceGateway[domain.Client])(nil)
	_ portsrepo.UserReader                              = (*UserGateway)(nil)
	_ portsrepo.InvitationRepositoryFacade              = (*InvitationGateway)(nil)
	_ portsrepo.ChatPreferenceRepository                = (*ChatPreferenceGateway)(nil)
)

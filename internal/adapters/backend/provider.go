package backend

import (
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portsrepo "github.com/Theakashprasad/practice-tool-client/internal/core/ports/repositories"
)

// NewRepositoryProvider wires one gateway per backend collection. Session and guard stores are
// left for the caller.
func NewRepositoryProvider(client *Client, endpoints Endpoints) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Auth:               NewAuthGateway(client, endpoints),
		Users:              NewUserGateway(client, endpoints),
		Invitations:        NewInvitationGateway(client, endpoints),
		Practices:          NewResourceGateway[domain.Practice](client, endpoints, ResourcePractices),
		ClientGroups:       NewResourceGateway[domain.ClientGroup](client, endpoints, ResourceClientGroups),
		Clients:            NewResourceGateway[domain.Client](client, endpoints, ResourceClients),
		ServiceTypes:       NewResourceGateway[domain.ServiceType](client, endpoints, ResourceServiceTypes),
		ServicesSubscribed: NewResourceGateway[domain.ServiceSubscribed](client, endpoints, ResourceServicesSubscribed),
		Industries:         NewResourceGateway[domain.Industry](client, endpoints, ResourceIndustries),
		Contacts:           NewResourceGateway[domain.Contact](client, endpoints, ResourceContacts),
		Links:              NewResourceGateway[domain.Link](client, endpoints, ResourceLinks),
		LinkTypes:          NewResourceGateway[domain.LinkType](client, endpoints, ResourceLinkTypes),
		Tools:              NewResourceGateway[domain.Tool](client, endpoints, ResourceTools),
		ChatPreferences:    NewChatPreferenceGateway(client, endpoints),
	}
}

package repositories

import "github.com/Theakashprasad/practice-tool-client/internal/core/domain"

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	Auth               AuthGateway
	Users              UserReader
	Invitations        InvitationRepositoryFacade
	Practices          ResourceRepositoryFacade[domain.Practice]
	ClientGroups       ResourceRepositoryFacade[domain.ClientGroup]
	Clients            ResourceRepositoryFacade[domain.Client]
	ServiceTypes       ResourceRepositoryFacade[domain.ServiceType]
	ServicesSubscribed ResourceRepositoryFacade[domain.ServiceSubscribed]
	Industries         ResourceRepositoryFacade[domain.Industry]
	Contacts           ResourceRepositoryFacade[domain.Contact]
	Links              ResourceRepositoryFacade[domain.Link]
	LinkTypes          ResourceRepositoryFacade[domain.LinkType]
	Tools              ResourceRepositoryFacade[domain.Tool]
	ChatPreferences    ChatPreferenceRepository

	Sessions       SessionStore
	MutationGuards MutationGuardStore
}

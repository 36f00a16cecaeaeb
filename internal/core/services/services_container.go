package services

import (
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portsrepo "github.com/Theakashprasad/practice-tool-client/internal/core/ports/repositories"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
	"github.com/Theakashprasad/practice-tool-client/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Shared mutation policies
	guard := NewMutationGuard(repos.MutationGuards, cfg.MutationGuardTTL)
	confirmer := NewContextConfirmer()

	container.Auth = NewAuthService(repos.Auth, repos.Sessions,
		WithSessionTTL(cfg.JWTExpiryDuration, cfg.RememberExpiryDuration),
	)
	container.Token = NewTokenService(cfg)

	container.ClientView = NewClientViewService(repos)
	container.StaffDirectory = NewStaffDirectoryService(repos.Users, repos.Invitations)
	container.Invitation = NewInvitationService(repos.Invitations,
		WithInvitationGuard(guard),
		WithInvitationConfirmer(confirmer),
	)
	container.Contact = NewContactService(repos.Contacts, guard, confirmer)
	container.ChatPreference = NewChatPreferenceService(repos.ChatPreferences, guard)

	container.Clients = NewCatalogService[domain.Client](repos.Clients, ResourceClients,
		WithSearchFields[domain.Client](clientSearchFields),
		WithPrepare[domain.Client](prepareClient),
		WithCatalogGuard[domain.Client](guard),
		WithConfirmer[domain.Client](confirmer),
	)
	container.ClientGroups = NewCatalogService[domain.ClientGroup](repos.ClientGroups, ResourceClientGroups,
		WithSearchFields[domain.ClientGroup](clientGroupSearchFields),
		WithPrepare[domain.ClientGroup](prepareClientGroup),
		WithCatalogGuard[domain.ClientGroup](guard),
		WithConfirmer[domain.ClientGroup](confirmer),
	)
	container.Industries = NewCatalogService[domain.Industry](repos.Industries, ResourceIndustries,
		WithSearchFields[domain.Industry](industrySearchFields),
		WithPrepare[domain.Industry](prepareIndustry),
		WithCatalogGuard[domain.Industry](guard),
		WithConfirmer[domain.Industry](confirmer),
	)
	container.ServiceTypes = NewCatalogService[domain.ServiceType](repos.ServiceTypes, ResourceServiceTypes,
		WithSearchFields[domain.ServiceType](serviceTypeSearchFields),
		WithPrepare[domain.ServiceType](prepareServiceType),
		WithCatalogGuard[domain.ServiceType](guard),
		WithConfirmer[domain.ServiceType](confirmer),
	)
	container.ServicesSubscribed = NewCatalogService[domain.ServiceSubscribed](repos.ServicesSubscribed, ResourceServicesSubscribed,
		WithSearchFields[domain.ServiceSubscribed](serviceSubscribedSearchFields),
		WithPrepare[domain.ServiceSubscribed](prepareServiceSubscribed),
		WithCatalogGuard[domain.ServiceSubscribed](guard),
		WithConfirmer[domain.ServiceSubscribed](confirmer),
	)
	container.Links = NewCatalogService[domain.Link](repos.Links, ResourceLinks,
		WithSearchFields[domain.Link](linkSearchFields),
		WithPrepare[domain.Link](prepareLink),
		WithCatalogGuard[domain.Link](guard),
		WithConfirmer[domain.Link](confirmer),
	)
	container.LinkTypes = NewCatalogService[domain.LinkType](repos.LinkTypes, ResourceLinkTypes,
		WithSearchFields[domain.LinkType](linkTypeSearchFields),
		WithPrepare[domain.LinkType](prepareLinkType),
		WithCatalogGuard[domain.LinkType](guard),
		WithConfirmer[domain.LinkType](confirmer),
	)
	container.Tools = NewCatalogService[domain.Tool](repos.Tools, ResourceTools,
		WithSearchFields[domain.Tool](toolSearchFields),
		WithPrepare[domain.Tool](prepareTool),
		WithCatalogGuard[domain.Tool](guard),
		WithConfirmer[domain.Tool](confirmer),
	)
	container.Practices = NewCatalogService[domain.Practice](repos.Practices, ResourcePractices,
		WithSearchFields[domain.Practice](practiceSearchFields),
		WithPrepare[domain.Practice](preparePractice),
		WithCatalogGuard[domain.Practice](guard),
		WithConfirmer[domain.Practice](confirmer),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuthSvcFacade                   = (*authService)(nil)
	_ portssvc.TokenSvcFacade                  = (*tokenService)(nil)
	_ portssvc.ClientViewSvc                   = (*clientViewService)(nil)
	_ portssvc.StaffDirectorySvc               = (*staffDirectoryService)(nil)
	_ portssvc.InvitationSvcFacade             = (*invitationService)(nil)
	_ portssvc.ContactSvcFacade                = (*contactService)(nil)
	_ portssvc.ChatPreferenceSvc               = (*chatPreferenceService)(nil)
	_ portssvc.CatalogSvcFacade[domain.Client] = (*catalogService[domain.Client])(nil)
)

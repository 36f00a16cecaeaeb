package services

import "github.com/Theakashprasad/practice-tool-client/internal/core/domain"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Auth           AuthSvcFacade
	Token          TokenSvcFacade
	ClientView     ClientViewSvc
	StaffDirectory StaffDirectorySvc
	Invitation     InvitationSvcFacade
	Contact        ContactSvcFacade
	ChatPreference ChatPreferenceSvc

	Clients            CatalogSvcFacade[domain.Client]
	ClientGroups       CatalogSvcFacade[domain.ClientGroup]
	Industries         CatalogSvcFacade[domain.Industry]
	ServiceTypes       CatalogSvcFacade[domain.ServiceType]
	ServicesSubscribed CatalogSvcFacade[domain.ServiceSubscribed]
	Links              CatalogSvcFacade[domain.Link]
	LinkTypes          CatalogSvcFacade[domain.LinkType]
	Tools              CatalogSvcFacade[domain.Tool]
	Practices          CatalogSvcFacade[domain.Practice]
}

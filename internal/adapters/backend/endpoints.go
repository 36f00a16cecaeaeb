package backend

import (
	"net/url"
	"strings"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
)

// Resource is a collection exposed by the practice backend.
type Resource string

const (
	ResourceAuth               Resource = "auth"
	ResourceUsers              Resource = "users"
	ResourceInvitations        Resource = "invitations"
	ResourcePractices          Resource = "practices"
	ResourceClientGroups       Resource = "client-groups"
	ResourceClients            Resource = "clients"
	ResourceServiceTypes       Resource = "service-types"
	ResourceServicesSubscribed Resource = "services-subscribed"
	ResourceIndustries         Resource = "industries"
	ResourceContacts           Resource = "contacts"
	ResourceLinks              Resource = "links"
	ResourceLinkTypes          Resource = "link-types"
	ResourceTools              Resource = "tools"
	ResourceChatPreferences    Resource = "chat-preferences"
)

// Endpoints maps resources to absolute URLs under the backend base URL. It has no side effects.
type Endpoints struct {
	base string
}

// NewEndpoints roots every URL at baseURL.
func NewEndpoints(baseURL string) Endpoints {
	return Endpoints{base: strings.TrimRight(baseURL, "/")}
}

// Collection is the URL of a whole collection, e.g. {base}/clients.
func (e Endpoints) Collection(r Resource) string {
	return e.base + "/" + string(r)
}

// ByID is the URL of one record, e.g. {base}/clients/42.
func (e Endpoints) ByID(r Resource, id domain.ID) string {
	return e.Collection(r) + "/" + url.PathEscape(id.String())
}

// Action is a verb nested under a record, e.g. {base}/invitations/7/withdraw.
func (e Endpoints) Action(r Resource, id domain.ID, action string) string {
	return e.ByID(r, id) + "/" + url.PathEscape(action)
}

// Query is a collection URL with query parameters.
func (e Endpoints) Query(r Resource, params url.Values) string {
	if len(params) == 0 {
		return e.Collection(r)
	}
	return e.Collection(r) + "?" + params.Encode()
}

// StaffUsers lists users filtered by level=staff.
func (e Endpoints) StaffUsers() string {
	return e.Query(ResourceUsers, url.Values{"level": []string{string(domain.LevelStaff)}})
}

// Login, Register and Logout are the auth endpoints.
func (e Endpoints) Login() string    { return e.Collection(ResourceAuth) + "/login" }
func (e Endpoints) Register() string { return e.Collection(ResourceAuth) + "/register" }
func (e Endpoints) Logout() string   { return e.Collection(ResourceAuth) + "/logout" }

package domain

// SlotResolution classifies how a staff slot identifier resolved.
type SlotResolution string

const (
	ResolvedUser       SlotResolution = "user"
	ResolvedInvitation SlotResolution = "invitation"
	Unresolved         SlotResolution = "unresolved"
)

// StaffAssignment is one staff slot of a client after resolution.
type StaffAssignment struct {
	Role       StaffRole      `json:"role"`
	Label      string         `json:"label"`
	ID         ID             `json:"id"`
	Resolution SlotResolution `json:"resolution"`
	Member     *StaffMember   `json:"member,omitempty"`
}

// GroupSummary is the client group as shown on the client view. Unassigned groups carry the N/A sentinel.
type GroupSummary struct {
	ID   ID     `json:"id,omitempty"`
	Name string `json:"name"`
}

// IndustrySummary is the industry as shown on the client view.
type IndustrySummary struct {
	ID   ID     `json:"id,omitempty"`
	Name string `json:"name"`
}

// ClientView is the fully joined view model of a client.
type ClientView struct {
	Client   Client             `json:"client"`
	Group    GroupSummary       `json:"group"`
	Staff    map[ID]StaffMember `json:"staff"`
	Slots    []StaffAssignment  `json:"slots"`
	Services []ServiceType      `json:"services"`
	Industry IndustrySummary    `json:"industry"`
	Contacts []Contact          `json:"contacts"`
	Links    []Link             `json:"links"`
}

package domain

// ClientStatus is the lifecycle status of a client entity.
type ClientStatus string

const (
	ClientStatusProspect ClientStatus = "prospect"
	ClientStatusCurrent  ClientStatus = "current"
	ClientStatusDormant  ClientStatus = "dormant"
	ClientStatusCeased   ClientStatus = "ceased"
)

// TaxID is one tax registration of a client.
type TaxID struct {
	Type        string `json:"type"`
	Number      string `json:"number"`
	Description string `json:"description,omitempty"`
}

// StaffRole names one of the fixed staff slots on a client.
type StaffRole string

const (
	RolePartner       StaffRole = "partner"
	RoleManager1      StaffRole = "manager1"
	RoleManager2      StaffRole = "manager2"
	RoleBookkeeper1   StaffRole = "bookkeeper1"
	RoleBookkeeper2   StaffRole = "bookkeeper2"
	RoleTaxSpecialist StaffRole = "taxSpecialist"
	RoleOther1        StaffRole = "other1"
	RoleOther2        StaffRole = "other2"
	RoleOther3        StaffRole = "other3"
	RoleOther4        StaffRole = "other4"
	RoleOther5        StaffRole = "other5"
	RoleAdmin1        StaffRole = "admin1"
	RoleAdmin2        StaffRole = "admin2"
)

// StaffRoles lists the slots in display order.
var StaffRoles = []StaffRole{
	RolePartner, RoleManager1, RoleManager2, RoleBookkeeper1, RoleBookkeeper2, RoleTaxSpecialist,
	RoleOther1, RoleOther2, RoleOther3, RoleOther4, RoleOther5, RoleAdmin1, RoleAdmin2,
}

var staffRoleLabels = map[StaffRole]string{
	RolePartner:       "Partner",
	RoleManager1:      "Manager",
	RoleManager2:      "Manager 2",
	RoleBookkeeper1:   "Bookkeeper",
	RoleBookkeeper2:   "Bookkeeper 2",
	RoleTaxSpecialist: "Tax Specialist",
	RoleOther1:        "Other 1",
	RoleOther2:        "Other 2",
	RoleOther3:        "Other 3",
	RoleOther4:        "Other 4",
	RoleOther5:        "Other 5",
	RoleAdmin1:        "Admin",
	RoleAdmin2:        "Admin 2",
}

// Label returns the human readable slot name.
func (r StaffRole) Label() string {
	if l, ok := staffRoleLabels[r]; ok {
		return l
	}
	return string(r)
}

// Client is a client entity serviced by the practice.
type Client struct {
	ID               ID           `json:"id"`
	Name             string       `json:"name"`
	Structure        string       `json:"structure,omitempty"` // legal structure tag
	ClientGroupID    ID           `json:"clientGroupId,omitempty"`
	Jurisdiction     string       `json:"jurisdiction,omitempty"`
	RegistrationID   string       `json:"registrationId,omitempty"`
	YearEnd          string       `json:"yearEnd,omitempty"`
	TaxIDs           []TaxID      `json:"taxIds,omitempty"`
	Status           ClientStatus `json:"status,omitempty"`
	ServiceStartDate string       `json:"serviceStartDate,omitempty"`
	ServiceEndDate   string       `json:"serviceEndDate,omitempty"`

	StaffPartnerID       ID `json:"staffPartnerId,omitempty"`
	StaffManager1ID      ID `json:"staffManager1Id,omitempty"`
	StaffManager2ID      ID `json:"staffManager2Id,omitempty"`
	StaffBookkeeper1ID   ID `json:"staffBookkeeper1Id,omitempty"`
	StaffBookkeeper2ID   ID `json:"staffBookkeeper2Id,omitempty"`
	StaffTaxSpecialistID ID `json:"staffTaxSpecialistId,omitempty"`
	StaffOther1ID        ID `json:"staffOther1Id,omitempty"`
	StaffOther2ID        ID `json:"staffOther2Id,omitempty"`
	StaffOther3ID        ID `json:"staffOther3Id,omitempty"`
	StaffOther4ID        ID `json:"staffOther4Id,omitempty"`
	StaffOther5ID        ID `json:"staffOther5Id,omitempty"`
	StaffAdmin1ID        ID `json:"staffAdmin1Id,omitempty"`
	StaffAdmin2ID        ID `json:"staffAdmin2Id,omitempty"`

	IndustryID       ID     `json:"industryId,omitempty"`
	AccountingSystem string `json:"accountingSystem,omitempty"`
	ServiceLevel     string `json:"serviceLevel,omitempty"`
	Comments         string `json:"comments,omitempty"`
	LinkType         string `json:"linkType,omitempty"` // joined against Link.Entity
	ContactIDs       []ID   `json:"contactIds,omitempty"`
	ServiceTypes     []ID   `json:"serviceTypes,omitempty"`
	Timestamps
}

// StaffSlot pairs a role with the identifier stored in it.
type StaffSlot struct {
	Role StaffRole
	ID   ID
}

// StaffSlots returns the non-empty staff slots in display order.
func (c Client) StaffSlots() []StaffSlot {
	all := []StaffSlot{
		{RolePartner, c.StaffPartnerID},
		{RoleManager1, c.StaffManager1ID},
		{RoleManager2, c.StaffManager2ID},
		{RoleBookkeeper1, c.StaffBookkeeper1ID},
		{RoleBookkeeper2, c.StaffBookkeeper2ID},
		{RoleTaxSpecialist, c.StaffTaxSpecialistID},
		{RoleOther1, c.StaffOther1ID},
		{RoleOther2, c.StaffOther2ID},
		{RoleOther3, c.StaffOther3ID},
		{RoleOther4, c.StaffOther4ID},
		{RoleOther5, c.StaffOther5ID},
		{RoleAdmin1, c.StaffAdmin1ID},
		{RoleAdmin2, c.StaffAdmin2ID},
	}
	slots := make([]StaffSlot, 0, len(all))
	for _, s := range all {
		if !s.ID.IsZero() {
			slots = append(slots, s)
		}
	}
	return slots
}

// ClientGroup groups client entities under a shared practice relationship.
type ClientGroup struct {
	ID         ID     `json:"id"`
	Name       string `json:"name"`
	PracticeID ID     `json:"practiceId,omitempty"`
	Timestamps
}

// Industry is an industry catalog entry.
type Industry struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
	Timestamps
}

// Practice is the accounting practice that owns client groups.
type Practice struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Timestamps
}

// Tool is a miscellaneous tool record (an internal utility or shortcut shown on the dashboard).
type Tool struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
	Timestamps
}

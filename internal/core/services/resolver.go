package services

import (
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
)

// Collaborators are the collections a client is joined against. Any of them may be empty.
type Collaborators struct {
	Users        []domain.User
	Invitations  []domain.Invitation
	ClientGroups []domain.ClientGroup
	ServiceTypes []domain.ServiceType
	Industries   []domain.Industry
	Contacts     []domain.Contact
	Links        []domain.Link
}

// ResolveClientView joins a client with its collaborators. It never mutates its inputs and returns
// freshly allocated slices, so equal inputs always produce deep-equal views.
func ResolveClientView(client domain.Client, c Collaborators) domain.ClientView {
	slots, staff := ResolveStaff(client, c.Users, c.Invitations)

	view := domain.ClientView{
		Client:   copyClient(client),
		Group:    resolveGroup(client.ClientGroupID, c.ClientGroups),
		Staff:    staff,
		Slots:    slots,
		Services: ResolveServiceTypes(client.ServiceTypes, c.ServiceTypes),
		Industry: resolveIndustry(client.IndustryID, c.Industries),
		Contacts: append([]domain.Contact{}, c.Contacts...),
		Links:    ResolveLinksForClient(client, c.Links),
	}
	return view
}

// ResolveStaff classifies every non-empty staff slot. Users are matched first; invitations are only
// consulted when no user carries the identifier. Unmatched slots are kept as Unresolved with no member.
// The returned map holds only resolved members, keyed by their identifier.
func ResolveStaff(client domain.Client, users []domain.User, invitations []domain.Invitation) ([]domain.StaffAssignment, map[domain.ID]domain.StaffMember) {
	slots := client.StaffSlots()
	assignments := make([]domain.StaffAssignment, 0, len(slots))
	members := make(map[domain.ID]domain.StaffMember, len(slots))

	for _, slot := range slots {
		a := domain.StaffAssignment{
			Role:       slot.Role,
			Label:      slot.Role.Label(),
			ID:         slot.ID,
			Resolution: domain.Unresolved,
		}
		if m, kind, ok := lookupStaffMember(slot.ID, users, invitations); ok {
			member := m
			a.Resolution = kind
			a.Member = &member
			members[slot.ID] = m
		}
		assignments = append(assignments, a)
	}
	return assignments, members
}

func lookupStaffMember(id domain.ID, users []domain.User, invitations []domain.Invitation) (domain.StaffMember, domain.SlotResolution, bool) {
	for _, u := range users {
		if domain.SameID(u.ID, id) {
			m := domain.StaffMemberFromUser(u)
			m.ID = id
			return m, domain.ResolvedUser, true
		}
	}
	for _, inv := range invitations {
		if domain.SameID(inv.ID, id) {
			m := domain.StaffMemberFromInvitation(inv)
			m.ID = id
			return m, domain.ResolvedInvitation, true
		}
	}
	return domain.StaffMember{}, domain.Unresolved, false
}

// ResolveServiceTypes maps subscribed service-type ids onto the catalog in the client's order.
// Ids missing from the catalog are dropped.
func ResolveServiceTypes(ids []domain.ID, catalog []domain.ServiceType) []domain.ServiceType {
	out := make([]domain.ServiceType, 0, len(ids))
	for _, id := range ids {
		for _, st := range catalog {
			if domain.SameID(st.ID, id) {
				out = append(out, st)
				break
			}
		}
	}
	return out
}

// ResolveLinksForClient returns the links whose Entity equals the client's LinkType, in source order.
// This is a string join on a denormalised category key, not an identifier reference: a client with no
// LinkType resolves no links, and every link-type sharing the same entity string contributes.
func ResolveLinksForClient(client domain.Client, links []domain.Link) []domain.Link {
	out := make([]domain.Link, 0)
	if client.LinkType == "" {
		return out
	}
	for _, l := range links {
		if l.Entity == client.LinkType {
			out = append(out, l)
		}
	}
	return out
}

func resolveGroup(id domain.ID, groups []domain.ClientGroup) domain.GroupSummary {
	for _, g := range groups {
		if domain.SameID(g.ID, id) {
			return domain.GroupSummary{ID: g.ID, Name: g.Name}
		}
	}
	return domain.GroupSummary{Name: domain.Unassigned}
}

func resolveIndustry(id domain.ID, industries []domain.Industry) domain.IndustrySummary {
	for _, ind := range industries {
		if domain.SameID(ind.ID, id) {
			return domain.IndustrySummary{ID: ind.ID, Name: ind.Name}
		}
	}
	return domain.IndustrySummary{Name: domain.Unassigned}
}

func copyClient(c domain.Client) domain.Client {
	out := c
	out.TaxIDs = append([]domain.TaxID(nil), c.TaxIDs...)
	out.ContactIDs = append([]domain.ID(nil), c.ContactIDs...)
	out.ServiceTypes = append([]domain.ID(nil), c.ServiceTypes...)
	return out
}

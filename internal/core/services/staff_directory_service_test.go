package services_test

import (
	"context"
	"testing"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	"github.com/Theakashprasad/practice-tool-client/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListStaffDirectory_UsersThenPendingInvitations(t *testing.T) {
	users := new(MockUserReader)
	invitations := new(MockInvitationRepository)
	users.On("ListStaffUsers", mock.Anything).Return([]domain.User{
		{ID: "U1", FirstName: "Ann", LastName: "Lee", Email: "ann@x.com"},
		{ID: "U2", FirstName: "Bo", Email: "bo@x.com", Status: "inactive"},
	}, nil).Once()
	invitations.On("List", mock.Anything).Return([]domain.Invitation{
		{ID: "INV1", Email: "new@x.com", Status: domain.InvitationPending},
		{ID: "INV2", Email: "old@x.com", Status: domain.InvitationAccepted},
		{ID: "INV3", Email: "nostatus@x.com"},
	}, nil).Once()

	svc := services.NewStaffDirectoryService(users, invitations)
	members, err := svc.ListStaffDirectory(context.Background())

	require.NoError(t, err)
	require.Len(t, members, 4)
	assert.Equal(t, domain.StaffMember{ID: "U1", Name: "Ann Lee", Email: "ann@x.com", Status: domain.StaffStatusActive}, members[0])
	assert.Equal(t, "inactive", members[1].Status)
	assert.Equal(t, domain.StaffMember{ID: "INV1", Name: "new@x.com", Email: "new@x.com", Status: domain.StaffStatusPending}, members[2])
	assert.Equal(t, domain.ID("INV3"), members[3].ID)
}

func TestListStaffDirectory_InvitationFailureDegrades(t *testing.T) {
	users := new(MockUserReader)
	invitations := new(MockInvitationRepository)
	users.On("ListStaffUsers", mock.Anything).Return([]domain.User{{ID: "U1", FirstName: "Ann"}}, nil).Once()
	invitations.On("List", mock.Anything).Return(nil, assert.AnError).Once()

	members, err := services.NewStaffDirectoryService(users, invitations).ListStaffDirectory(context.Background())

	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, domain.ID("U1"), members[0].ID)
}

func TestListStaffDirectory_UserFailureIsAnError(t *testing.T) {
	users := new(MockUserReader)
	invitations := new(MockInvitationRepository)
	users.On("ListStaffUsers", mock.Anything).Return(nil, assert.AnError).Once()
	invitations.On("List", mock.Anything).Return([]domain.Invitation{}, nil).Maybe()

	members, err := services.NewStaffDirectoryService(users, invitations).ListStaffDirectory(context.Background())

	assert.Nil(t, members)
	assert.ErrorIs(t, err, assert.AnError)
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portssvc "github.com/Theakashprasad/practice-tool-client/internal/core/ports/services"
	"github.com/Theakashprasad/practice-tool-client/internal/core/services"
	"github.com/Theakashprasad/practice-tool-client/internal/repositories/cache"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvitationServiceTestSuite struct {
	suite.Suite
	repo    *MockInvitationRepository
	guards  *cache.InMemoryMutationGuardStore
	service portssvc.InvitationSvcFacade
}

func (suite *InvitationServiceTestSuite) SetupTest() {
	suite.repo = new(MockInvitationRepository)
	suite.guards = cache.NewInMemoryMutationGuardStore()
	suite.service = services.NewInvitationService(suite.repo,
		services.WithInvitationGuard(services.NewMutationGuard(suite.guards, time.Minute)),
		services.WithInvitationConfirmer(services.NewContextConfirmer()),
	)
}

func (suite *InvitationServiceTestSuite) TearDownTest() {
	_ = suite.guards.Close()
}

func (suite *InvitationServiceTestSuite) TestWithdraw_Pending() {
	ctx := context.Background()
	suite.repo.On("FindByID", ctx, domain.ID("1")).Return(&domain.Invitation{ID: "1", Status: domain.InvitationPending}, nil).Once()
	suite.repo.On("Withdraw", mock.Anything, domain.ID("1")).Return(nil).Once()

	suite.NoError(suite.service.WithdrawInvitation(ctx, "1"))
	suite.repo.AssertExpectations(suite.T())
}

func (suite *InvitationServiceTestSuite) TestWithdraw_MissingStatusCountsAsPending() {
	ctx := context.Background()
	suite.repo.On("FindByID", ctx, domain.ID("1")).Return(&domain.Invitation{ID: "1"}, nil).Once()
	suite.repo.On("Withdraw", mock.Anything, domain.ID("1")).Return(nil).Once()

	suite.NoError(suite.service.WithdrawInvitation(ctx, "1"))
}

func (suite *InvitationServiceTestSuite) TestWithdraw_RejectedWhenNotPending() {
	for _, status := range []domain.InvitationStatus{domain.InvitationAccepted, domain.InvitationCancelled} {
		ctx := context.Background()
		suite.repo.On("FindByID", ctx, domain.ID("2")).Return(&domain.Invitation{ID: "2", Status: status}, nil).Once()

		err := suite.service.WithdrawInvitation(ctx, "2")

		suite.ErrorIs(err, apperrors.ErrInvalidTransition, string(status))
		suite.Contains(apperrors.MessageOf(err, ""), string(status))
	}
	suite.repo.AssertNotCalled(suite.T(), "Withdraw", mock.Anything, mock.Anything)
}

func (suite *InvitationServiceTestSuite) TestWithdraw_NotFound() {
	ctx := context.Background()
	suite.repo.On("FindByID", ctx, domain.ID("3")).Return(nil, apperrors.NewNotFoundError("invitation not found")).Once()

	err := suite.service.WithdrawInvitation(ctx, "3")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.repo.AssertNotCalled(suite.T(), "Withdraw", mock.Anything, mock.Anything)
}

func (suite *InvitationServiceTestSuite) TestCreate_Validation() {
	tests := []struct {
		name string
		in   portssvc.CreateInvitationInput
		msg  string
	}{
		{"missing email", portssvc.CreateInvitationInput{Email: " "}, "email is required"},
		{"bad email", portssvc.CreateInvitationInput{Email: "not-an-email"}, "email is not a valid address"},
		{"bad level", portssvc.CreateInvitationInput{Email: "a@x.com", Level: "owner"}, "level must be one of admin, staff, client"},
	}
	for _, tt := range tests {
		_, err := suite.service.CreateInvitation(context.Background(), tt.in)
		suite.ErrorIs(err, apperrors.ErrValidation, tt.name)
		suite.Equal(tt.msg, apperrors.MessageOf(err, ""), tt.name)
	}
	suite.repo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *InvitationServiceTestSuite) TestCreate_LevelIsOptional() {
	ctx := context.Background()
	suite.repo.On("Create", mock.Anything, domain.Invitation{Email: "a@x.com"}).
		Return(&domain.Invitation{ID: "5", Email: "a@x.com", Status: domain.InvitationPending}, nil).Once()

	inv, err := suite.service.CreateInvitation(ctx, portssvc.CreateInvitationInput{Email: " a@x.com "})

	suite.Require().NoError(err)
	suite.Equal(domain.ID("5"), inv.ID)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *InvitationServiceTestSuite) TestDelete_AnyStatusWithConfirmation() {
	err := suite.service.DeleteInvitation(confirmed(0), "9")
	suite.ErrorIs(err, apperrors.ErrConfirmationRequired)

	suite.repo.On("Delete", mock.Anything, domain.ID("9")).Return(nil).Once()
	suite.NoError(suite.service.DeleteInvitation(confirmed(1), "9"))
	suite.repo.AssertExpectations(suite.T())
}

func (suite *InvitationServiceTestSuite) TestList_SearchesEmailOnly() {
	ctx := context.Background()
	suite.repo.On("List", ctx).Return([]domain.Invitation{
		{ID: "1", Email: "Alice@x.com", Level: domain.LevelStaff},
		{ID: "2", Email: "bob@y.com", Level: domain.LevelStaff},
	}, nil).Twice()

	got, err := suite.service.ListInvitations(ctx, "ALICE")
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal(domain.ID("1"), got[0].ID)

	got, err = suite.service.ListInvitations(ctx, "staff")
	suite.Require().NoError(err)
	suite.Empty(got)
}

func TestInvitationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationServiceTestSuite))
}

package mocks

import (
	context "context"
	testing "testing"

	models "clockinout/internal/models"
	mock "github.com/stretchr/testify/mock"
)

type TeamProvider struct {
	mock.Mock
}

func NewTeamProvider(t *testing.T) *TeamProvider {
	m := &TeamProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TeamProvider) Create(ctx context.Context, teamName string) (int, error) {
	args := m.Called(ctx, teamName)
	return args.Int(0), args.Error(1)
}

func (m *TeamProvider) GetByID(ctx context.Context, teamID int) (*models.Team, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *TeamProvider) GetAll(ctx context.Context) ([]*models.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Team), args.Error(1)
}

func (m *TeamProvider) GetMembers(ctx context.Context, teamID int) ([]*models.TeamMember, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TeamMember), args.Error(1)
}

func (m *TeamProvider) Update(ctx context.Context, team *models.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *TeamProvider) Delete(ctx context.Context, teamID int) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

func (m *TeamProvider) AddMember(ctx context.Context, teamID, userID int) (int, error) {
	args := m.Called(ctx, teamID, userID)
	return args.Int(0), args.Error(1)
}

func (m *TeamProvider) RemoveMember(ctx context.Context, teamID, userID int) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

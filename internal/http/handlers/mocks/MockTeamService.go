package mocks

import (
	context "context"
	testing "testing"

	api "clockinout/internal/http/api"
	mock "github.com/stretchr/testify/mock"
)

type MockTeamService struct {
	mock.Mock
}

func NewMockTeamService(t *testing.T) *MockTeamService {
	m := &MockTeamService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTeamService) Create(ctx context.Context, name string) (*api.TeamSchema, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.TeamSchema), args.Error(1)
}

func (m *MockTeamService) GetAll(ctx context.Context) ([]api.TeamSchema, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.TeamSchema), args.Error(1)
}

func (m *MockTeamService) GetByID(ctx context.Context, id int) (*api.TeamDetailsSchema, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.TeamDetailsSchema), args.Error(1)
}

func (m *MockTeamService) Update(ctx context.Context, id int, name string) (*api.TeamSchema, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.TeamSchema), args.Error(1)
}

func (m *MockTeamService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTeamService) AddMember(ctx context.Context, teamID, userID int) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

func (m *MockTeamService) RemoveMember(ctx context.Context, teamID, userID int) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

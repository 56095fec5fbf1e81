package mocks

import (
	context "context"
	testing "testing"

	api "clockinout/internal/http/api"
	mock "github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func NewMockUserService(t *testing.T) *MockUserService {
	m := &MockUserService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserService) Register(ctx context.Context, input api.UserRegister) (*api.UserSchema, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.UserSchema), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, input api.UserLogin) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) GetAll(ctx context.Context) ([]api.UserSchema, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.UserSchema), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id int) (*api.UserSchema, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.UserSchema), args.Error(1)
}

func (m *MockUserService) GetByUsername(ctx context.Context, username string) (*api.UserSchema, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.UserSchema), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id int, input api.UserUpdate) (*api.UserSchema, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.UserSchema), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

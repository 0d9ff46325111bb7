package authz

import (
	"github.com/stretchr/testify/mock"
)

// MockEnforcer is a testify mock implementation of the Authorizer interface
// for testing services without a casbin backend.
type MockEnforcer struct {
	mock.Mock
}

// Can mocks the Can method.
func (m *MockEnforcer) Can(userID, teamID string, action Action) (bool, error) {
	args := m.Called(userID, teamID, action)
	return args.Bool(0), args.Error(1)
}

// AddTeamRole mocks the AddTeamRole method.
func (m *MockEnforcer) AddTeamRole(userID, teamID, role string) error {
	args := m.Called(userID, teamID, role)
	return args.Error(0)
}

// RemoveUserFromTeam mocks the RemoveUserFromTeam method.
func (m *MockEnforcer) RemoveUserFromTeam(userID, teamID string) error {
	args := m.Called(userID, teamID)
	return args.Error(0)
}

// DeleteTeam mocks the DeleteTeam method.
func (m *MockEnforcer) DeleteTeam(teamID string) error {
	args := m.Called(teamID)
	return args.Error(0)
}

var _ Authorizer = (*MockEnforcer)(nil)

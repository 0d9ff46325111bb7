package authz

// Action represents the type of operation being performed on a team.
type Action string

// Authorization actions for team resources.
const (
	ActionView          Action = "view"
	ActionManageMembers Action = "manage_members"
	ActionManageTeam    Action = "manage_team"
)

// String returns the string representation of the action.
func (a Action) String() string {
	return string(a)
}

// Authorizer is the permission surface consumed by the team and invite services.
// The casbin-backed Enforcer implements it; tests substitute MockEnforcer.
type Authorizer interface {
	Can(userID, teamID string, action Action) (bool, error)
	AddTeamRole(userID, teamID, role string) error
	RemoveUserFromTeam(userID, teamID string) error
	DeleteTeam(teamID string) error
}

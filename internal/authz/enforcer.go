package authz

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/persist"
	"github.com/sirupsen/logrus"
)

// teamModel is the casbin RBAC-with-domains model used for team permissions.
// Subjects are "user:<id>", domains are "team:<id>", and grouping policies bind
// a user to a role within one team. Role→action policies use the "*" domain.
const teamModel = `
[request_definition]
r = sub, dom, act

[policy_definition]
p = sub, dom, act

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub, r.dom) && (p.dom == "*" || r.dom == p.dom) && r.act == p.act
`

// Enforcer manages the casbin authorization enforcer for team roles.
type Enforcer struct {
	enforcer *casbin.Enforcer
	logger   *logrus.Logger
	mu       sync.RWMutex
}

// NewEnforcer creates a new authorization enforcer backed by the given adapter.
func NewEnforcer(adapter persist.Adapter, logger *logrus.Logger) (*Enforcer, error) {
	m, err := model.NewModelFromString(teamModel)
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	// Persist policy mutations to the adapter as they happen
	enforcer.EnableAutoSave(true)

	logger.Info("Authorization enforcer initialized successfully")

	return &Enforcer{
		enforcer: enforcer,
		logger:   logger,
	}, nil
}

func userSubject(userID string) string { return fmt.Sprintf("user:%s", userID) }
func teamDomain(teamID string) string  { return fmt.Sprintf("team:%s", teamID) }

// Can checks whether the user may perform the action within the team.
func (e *Enforcer) Can(userID, teamID string, action Action) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(userSubject(userID), teamDomain(teamID), action.String())
	if err != nil {
		e.logger.WithFields(logrus.Fields{
			"userID": userID,
			"teamID": teamID,
			"action": action,
			"error":  err.Error(),
		}).Error("Authorization enforcement failed")
		return false, fmt.Errorf("authorization enforcement failed: %w", err)
	}

	e.logger.WithFields(logrus.Fields{
		"userID":  userID,
		"teamID":  teamID,
		"action":  action,
		"allowed": allowed,
	}).Debug("Authorization decision made")

	return allowed, nil
}

// AddTeamRole grants the user the given role within the team.
func (e *Enforcer) AddTeamRole(userID, teamID, role string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.enforcer.AddNamedGroupingPolicy("g", userSubject(userID), role, teamDomain(teamID))
	if err != nil {
		return fmt.Errorf("failed to add team role: %w", err)
	}
	return nil
}

// RemoveUserFromTeam removes every role the user holds within the team.
func (e *Enforcer) RemoveUserFromTeam(userID, teamID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.enforcer.RemoveFilteredNamedGroupingPolicy("g", 0, userSubject(userID), "", teamDomain(teamID))
	if err != nil {
		return fmt.Errorf("failed to remove user from team: %w", err)
	}
	return nil
}

// DeleteTeam removes every role grouping scoped to the team.
func (e *Enforcer) DeleteTeam(teamID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.enforcer.RemoveFilteredNamedGroupingPolicy("g", 2, teamDomain(teamID))
	if err != nil {
		return fmt.Errorf("failed to delete team policies: %w", err)
	}
	return nil
}

var _ Authorizer = (*Enforcer)(nil)

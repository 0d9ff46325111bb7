package authz

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"
)

// LoadDefaultPolicies installs the role → action policies every team shares.
// Grouping policies added per membership then resolve through these.
func LoadDefaultPolicies(logger *logrus.Logger, e *Enforcer) error {
	roleActions := map[string][]Action{
		"owner":  {ActionView, ActionManageMembers, ActionManageTeam},
		"admin":  {ActionView, ActionManageMembers},
		"member": {ActionView},
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for role, actions := range roleActions {
		for _, action := range actions {
			added, err := e.enforcer.AddPolicy(role, "*", action.String())
			if err != nil {
				logger.WithFields(logrus.Fields{
					"role":   role,
					"action": action,
					"error":  err.Error(),
				}).Error("Failed to add role-action policy")
				return err
			}
			if added {
				logger.WithFields(logrus.Fields{
					"role":   role,
					"action": action,
				}).Debug("Added role-action policy")
			}
		}
	}

	logger.Info("Role-action policies configured")
	return nil
}

// SyncTeamRoles rebuilds grouping policies from the group_members table.
// Memberships are the source of truth; the enforcer is derived state and can
// always be resynced after the fact.
func SyncTeamRoles(ctx context.Context, db *sql.DB, logger *logrus.Logger, e *Enforcer) error {
	rows, err := db.QueryContext(ctx, `SELECT group_id, user_id, role FROM group_members`)
	if err != nil {
		return err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var groupID, userID, role string
		if err := rows.Scan(&groupID, &userID, &role); err != nil {
			return err
		}
		if err := e.AddTeamRole(userID, groupID, role); err != nil {
			logger.WithFields(logrus.Fields{
				"groupID": groupID,
				"userID":  userID,
				"role":    role,
				"error":   err.Error(),
			}).Error("Failed to sync team role")
			return err
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"memberships": count,
	}).Info("Team roles synced into enforcer")
	return nil
}

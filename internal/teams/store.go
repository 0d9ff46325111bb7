package teams

import (
	"context"
	"database/sql"
	"fmt"

	apiErrors "github.com/byterank/byterank-backend/internal/errors"
	teamsdb "github.com/byterank/byterank-backend/internal/teams/gen"
	"github.com/google/uuid"
)

// Store wraps the generated queries with the transactional workflows team
// management needs. A team must never exist without its owner membership row.
type Store struct {
	db *sql.DB
	*teamsdb.Queries
}

// NewStore creates a Store over the given database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:      db,
		Queries: teamsdb.New(db),
	}
}

// execTx runs fn inside a database transaction, rolling back on error.
func (s *Store) execTx(ctx context.Context, fn func(*teamsdb.Queries) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	q := s.Queries.WithTx(tx)
	if err := fn(q); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rollback err: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

// CreateGroupWithOwnerTxParams carries the new group's attributes. The owner
// is both the groups.owner_id value and the first member row.
type CreateGroupWithOwnerTxParams struct {
	Name         string
	Description  sql.NullString
	AvatarUrl    sql.NullString
	OwnerID      uuid.UUID
	AccessPolicy teamsdb.AccessPolicy
}

// CreateGroupWithOwnerTx inserts the group and its owner membership in one
// transaction.
func (s *Store) CreateGroupWithOwnerTx(ctx context.Context, arg CreateGroupWithOwnerTxParams) (teamsdb.Group, error) {
	var group teamsdb.Group
	err := s.execTx(ctx, func(q *teamsdb.Queries) error {
		var err error
		group, err = q.CreateGroup(ctx, teamsdb.CreateGroupParams{
			Name:         arg.Name,
			Description:  arg.Description,
			AvatarUrl:    arg.AvatarUrl,
			OwnerID:      arg.OwnerID,
			AccessPolicy: arg.AccessPolicy,
		})
		if err != nil {
			return err
		}
		return q.AddGroupMember(ctx, teamsdb.AddGroupMemberParams{
			GroupID: group.ID,
			UserID:  arg.OwnerID,
			Role:    teamsdb.MemberRoleOwner,
		})
	})
	return group, err
}

// LeaveGroupTxParams identifies the membership being removed.
type LeaveGroupTxParams struct {
	GroupID uuid.UUID
	UserID  uuid.UUID
}

// LeaveGroupTx removes a membership, refusing to leave the group ownerless.
// The group row is locked for the duration of the transaction so concurrent
// owner departures serialize against the same owner count.
func (s *Store) LeaveGroupTx(ctx context.Context, arg LeaveGroupTxParams) error {
	return s.execTx(ctx, func(q *teamsdb.Queries) error {
		if _, err := q.GetGroupForUpdate(ctx, arg.GroupID); err != nil {
			return err
		}
		member, err := q.GetGroupMember(ctx, teamsdb.GetGroupMemberParams{
			GroupID: arg.GroupID,
			UserID:  arg.UserID,
		})
		if err != nil {
			return err
		}
		if _, err := q.RemoveGroupMember(ctx, teamsdb.RemoveGroupMemberParams{
			GroupID: arg.GroupID,
			UserID:  arg.UserID,
		}); err != nil {
			return err
		}
		if member.Role == teamsdb.MemberRoleOwner {
			owners, err := q.CountGroupOwners(ctx, arg.GroupID)
			if err != nil {
				return err
			}
			if owners == 0 {
				return apiErrors.ErrLastOwner
			}
		}
		return nil
	})
}

package invites

import (
	"context"
	"database/sql"
	"fmt"

	invitesdb "github.com/byterank/byterank-backend/internal/invites/gen"
	"github.com/google/uuid"
)

// Store wraps the generated queries with the transactional workflows that
// turn a pending invitation or join request into a membership. The status
// flip and the membership insert must land together.
type Store struct {
	db *sql.DB
	*invitesdb.Queries
}

// NewStore creates a Store over the given database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:      db,
		Queries: invitesdb.New(db),
	}
}

// execTx runs fn inside a database transaction, rolling back on error.
func (s *Store) execTx(ctx context.Context, fn func(*invitesdb.Queries) error) error {
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

// AcceptInvitationTxParams identifies the invitation being accepted and the
// membership it produces.
type AcceptInvitationTxParams struct {
	InvitationID uuid.UUID
	GroupID      uuid.UUID
	UserID       uuid.UUID
}

// AcceptInvitationTx marks the invitation accepted and adds the invited user
// as a member in one transaction. The membership insert tolerates an existing
// row so accepting after an open-team join stays harmless.
func (s *Store) AcceptInvitationTx(ctx context.Context, arg AcceptInvitationTxParams) error {
	return s.execTx(ctx, func(q *invitesdb.Queries) error {
		if err := q.AddGroupMember(ctx, invitesdb.AddGroupMemberParams{
			GroupID: arg.GroupID,
			UserID:  arg.UserID,
			Role:    invitesdb.MemberRoleMember,
		}); err != nil {
			return err
		}
		_, err := q.UpdateInvitationStatus(ctx, invitesdb.UpdateInvitationStatusParams{
			ID:     arg.InvitationID,
			Status: invitesdb.InvitationStatusAccepted,
		})
		return err
	})
}

// ApproveJoinRequestTxParams identifies the join request being approved, the
// membership it produces and the deciding admin.
type ApproveJoinRequestTxParams struct {
	RequestID   uuid.UUID
	GroupID     uuid.UUID
	RequesterID uuid.UUID
	DecidedBy   uuid.UUID
}

// ApproveJoinRequestTx marks the join request approved and adds the requester
// as a member in one transaction.
func (s *Store) ApproveJoinRequestTx(ctx context.Context, arg ApproveJoinRequestTxParams) error {
	return s.execTx(ctx, func(q *invitesdb.Queries) error {
		if err := q.AddGroupMember(ctx, invitesdb.AddGroupMemberParams{
			GroupID: arg.GroupID,
			UserID:  arg.RequesterID,
			Role:    invitesdb.MemberRoleMember,
		}); err != nil {
			return err
		}
		_, err := q.UpdateJoinRequestStatus(ctx, invitesdb.UpdateJoinRequestStatusParams{
			ID:        arg.RequestID,
			Status:    invitesdb.JoinRequestStatusApproved,
			DecidedBy: uuid.NullUUID{UUID: arg.DecidedBy, Valid: true},
		})
		return err
	})
}

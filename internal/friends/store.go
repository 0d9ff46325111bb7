package friends

import (
	"context"
	"database/sql"
	"fmt"

	friendsdb "github.com/byterank/byterank-backend/internal/friends/gen"
	"github.com/google/uuid"
)

// Store wraps the generated queries with the multi-statement transactional
// workflows the social graph needs. Partial application (friendship created
// but request left behind, or vice versa) must not be observable.
type Store struct {
	db *sql.DB
	*friendsdb.Queries
}

// NewStore creates a Store over the given database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:      db,
		Queries: friendsdb.New(db),
	}
}

// execTx runs fn inside a database transaction, rolling back on error.
func (s *Store) execTx(ctx context.Context, fn func(*friendsdb.Queries) error) error {
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

// AcceptFriendRequestTxParams identifies the request being accepted and the
// canonical-ordered pair for the resulting friendship.
type AcceptFriendRequestTxParams struct {
	RequestID uuid.UUID
	UserIDA   uuid.UUID
	UserIDB   uuid.UUID
}

// AcceptFriendRequestTx creates the friendship and deletes the originating
// request in one transaction.
func (s *Store) AcceptFriendRequestTx(ctx context.Context, arg AcceptFriendRequestTxParams) error {
	return s.execTx(ctx, func(q *friendsdb.Queries) error {
		if err := q.CreateFriendship(ctx, friendsdb.CreateFriendshipParams{
			UserIDA: arg.UserIDA,
			UserIDB: arg.UserIDB,
		}); err != nil {
			return err
		}
		return q.DeleteFriendRequest(ctx, arg.RequestID)
	})
}

// AutoAcceptTxParams holds the canonical-ordered pair for a mutual-request
// auto-accept.
type AutoAcceptTxParams struct {
	UserIDA uuid.UUID
	UserIDB uuid.UUID
}

// AutoAcceptTx creates the friendship and clears every pending request between
// the pair in one transaction. Used when both sides have requested each other.
func (s *Store) AutoAcceptTx(ctx context.Context, arg AutoAcceptTxParams) error {
	return s.execTx(ctx, func(q *friendsdb.Queries) error {
		if err := q.CreateFriendship(ctx, friendsdb.CreateFriendshipParams{
			UserIDA: arg.UserIDA,
			UserIDB: arg.UserIDB,
		}); err != nil {
			return err
		}
		return q.DeletePendingRequestsBetween(ctx, friendsdb.DeletePendingRequestsBetweenParams{
			UserIDA: arg.UserIDA,
			UserIDB: arg.UserIDB,
		})
	})
}

package friends

import (
	"context"
	"database/sql"

	apiErrors "github.com/byterank/byterank-backend/internal/errors"
	friendsdb "github.com/byterank/byterank-backend/internal/friends/gen"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FriendService provides business logic for the social graph: symmetric
// friendships and directed friend requests.
type FriendService struct {
	logger     *logrus.Logger
	friendRepo Repository
}

// NewFriendService creates a new FriendService instance with the provided dependencies.
func NewFriendService(logger *logrus.Logger, friendRepo Repository) *FriendService {
	return &FriendService{
		logger:     logger,
		friendRepo: friendRepo,
	}
}

// canonicalPair orders an unordered user pair as (min, max) so the
// relationship has exactly one representation in the friendships table.
func canonicalPair(x, y uuid.UUID) (uuid.UUID, uuid.UUID) {
	if x.String() < y.String() {
		return x, y
	}
	return y, x
}

// SendFriendRequest creates a pending friend request from requester to
// recipient. If the recipient already has a pending request towards the
// requester, the pair becomes friends directly and both pending requests are
// cleared (the accepted return value is true in that case).
func (s *FriendService) SendFriendRequest(ctx context.Context, requesterID, recipientID string) (*friendsdb.FriendRequest, bool, error) {
	requester, err := uuid.Parse(requesterID)
	if err != nil {
		return nil, false, apiErrors.ErrProfileNotFound
	}
	recipient, err := uuid.Parse(recipientID)
	if err != nil {
		return nil, false, apiErrors.ErrProfileNotFound
	}
	if requester == recipient {
		return nil, false, apiErrors.ErrSelfFriendRequest
	}

	userA, userB := canonicalPair(requester, recipient)

	// Already friends?
	_, err = s.friendRepo.GetFriendship(ctx, friendsdb.GetFriendshipParams{
		UserIDA: userA,
		UserIDB: userB,
	})
	if err == nil {
		s.logger.WithFields(logrus.Fields{
			"requesterID": requesterID,
			"recipientID": recipientID,
		}).Warn("Friend request rejected: friendship already exists")
		return nil, false, apiErrors.ErrAlreadyFriends
	}
	if err != sql.ErrNoRows {
		return nil, false, err
	}

	// Pending request already sent in this direction?
	_, err = s.friendRepo.GetPendingRequestBetween(ctx, friendsdb.GetPendingRequestBetweenParams{
		RequesterID: requester,
		RecipientID: recipient,
	})
	if err == nil {
		return nil, false, apiErrors.ErrFriendRequestPending
	}
	if err != sql.ErrNoRows {
		return nil, false, err
	}

	// Reciprocal pending request: accept directly instead of creating a
	// second request in the opposite direction.
	_, err = s.friendRepo.GetPendingRequestBetween(ctx, friendsdb.GetPendingRequestBetweenParams{
		RequesterID: recipient,
		RecipientID: requester,
	})
	if err == nil {
		if err := s.friendRepo.AutoAcceptTx(ctx, AutoAcceptTxParams{
			UserIDA: userA,
			UserIDB: userB,
		}); err != nil {
			s.logger.WithFields(logrus.Fields{
				"requesterID": requesterID,
				"recipientID": recipientID,
				"error":       err.Error(),
			}).Error("Failed to auto-accept mutual friend request")
			return nil, false, err
		}
		s.logger.WithFields(logrus.Fields{
			"requesterID": requesterID,
			"recipientID": recipientID,
		}).Info("Mutual friend request auto-accepted")
		return nil, true, nil
	}
	if err != sql.ErrNoRows {
		return nil, false, err
	}

	request, err := s.friendRepo.CreateFriendRequest(ctx, friendsdb.CreateFriendRequestParams{
		RequesterID: requester,
		RecipientID: recipient,
	})
	if err != nil {
		if apiErrors.IsUniqueViolation(err) {
			return nil, false, apiErrors.ErrFriendRequestPending
		}
		if apiErrors.IsForeignKeyViolation(err) {
			return nil, false, apiErrors.ErrProfileNotFound
		}
		s.logger.WithFields(logrus.Fields{
			"requesterID": requesterID,
			"recipientID": recipientID,
			"error":       err.Error(),
		}).Error("Failed to create friend request")
		return nil, false, err
	}

	s.logger.WithFields(logrus.Fields{
		"requestID":   request.ID.String(),
		"requesterID": requesterID,
		"recipientID": recipientID,
	}).Info("Friend request created")
	return &request, false, nil
}

// AcceptFriendRequest turns a pending request into a friendship. Only the
// recipient may accept. The friendship insert and request delete happen in one
// transaction.
func (s *FriendService) AcceptFriendRequest(ctx context.Context, requestID, actingUserID string) error {
	reqID, err := uuid.Parse(requestID)
	if err != nil {
		return apiErrors.ErrFriendRequestNotFound
	}

	request, err := s.friendRepo.GetFriendRequest(ctx, reqID)
	if err != nil {
		if err == sql.ErrNoRows {
			return apiErrors.ErrFriendRequestNotFound
		}
		return err
	}
	if request.RecipientID.String() != actingUserID {
		s.logger.WithFields(logrus.Fields{
			"requestID":    requestID,
			"actingUserID": actingUserID,
		}).Warn("Accept friend request rejected: acting user is not the recipient")
		return apiErrors.ErrForbidden
	}
	if request.Status != friendsdb.FriendRequestStatusPending {
		return apiErrors.ErrFriendRequestNotFound
	}

	userA, userB := canonicalPair(request.RequesterID, request.RecipientID)
	if err := s.friendRepo.AcceptFriendRequestTx(ctx, AcceptFriendRequestTxParams{
		RequestID: reqID,
		UserIDA:   userA,
		UserIDB:   userB,
	}); err != nil {
		s.logger.WithFields(logrus.Fields{
			"requestID": requestID,
			"error":     err.Error(),
		}).Error("Failed to accept friend request")
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"requestID": requestID,
		"userIDA":   userA.String(),
		"userIDB":   userB.String(),
	}).Info("Friend request accepted")
	return nil
}

// DeclineFriendRequest removes a pending request. Only the recipient may
// decline. The row is deleted rather than marked declined, matching the
// original table contract.
func (s *FriendService) DeclineFriendRequest(ctx context.Context, requestID, actingUserID string) error {
	reqID, err := uuid.Parse(requestID)
	if err != nil {
		return apiErrors.ErrFriendRequestNotFound
	}

	request, err := s.friendRepo.GetFriendRequest(ctx, reqID)
	if err != nil {
		if err == sql.ErrNoRows {
			return apiErrors.ErrFriendRequestNotFound
		}
		return err
	}
	if request.RecipientID.String() != actingUserID {
		return apiErrors.ErrForbidden
	}
	if request.Status != friendsdb.FriendRequestStatusPending {
		return apiErrors.ErrFriendRequestNotFound
	}

	if err := s.friendRepo.DeleteFriendRequest(ctx, reqID); err != nil {
		s.logger.WithFields(logrus.Fields{
			"requestID": requestID,
			"error":     err.Error(),
		}).Error("Failed to decline friend request")
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"requestID": requestID,
	}).Info("Friend request declined")
	return nil
}

// RemoveFriend deletes the friendship between the two users. The operation is
// commutative in its arguments and a no-op when no friendship exists.
func (s *FriendService) RemoveFriend(ctx context.Context, userID, otherUserID string) error {
	self, err := uuid.Parse(userID)
	if err != nil {
		return apiErrors.ErrProfileNotFound
	}
	other, err := uuid.Parse(otherUserID)
	if err != nil {
		return apiErrors.ErrProfileNotFound
	}

	userA, userB := canonicalPair(self, other)
	res, err := s.friendRepo.DeleteFriendship(ctx, friendsdb.DeleteFriendshipParams{
		UserIDA: userA,
		UserIDB: userB,
	})
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"userID":      userID,
			"otherUserID": otherUserID,
			"error":       err.Error(),
		}).Error("Failed to remove friendship")
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	// Absent friendship is a benign no-op, not an error.
	s.logger.WithFields(logrus.Fields{
		"userIDA":      userA.String(),
		"userIDB":      userB.String(),
		"rowsAffected": rowsAffected,
	}).Info("Friendship removal processed")
	return nil
}

// ListFriends returns every friend of the user with profile display data.
func (s *FriendService) ListFriends(ctx context.Context, userID string) ([]friendsdb.ListFriendsRow, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apiErrors.ErrProfileNotFound
	}
	friendsList, err := s.friendRepo.ListFriends(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"userID": userID,
			"error":  err.Error(),
		}).Error("Failed to list friends")
		return nil, err
	}
	return friendsList, nil
}

// ListFriendRequests returns every request where the user is requester or
// recipient, newest first.
func (s *FriendService) ListFriendRequests(ctx context.Context, userID string) ([]friendsdb.ListFriendRequestsForUserRow, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apiErrors.ErrProfileNotFound
	}
	requests, err := s.friendRepo.ListFriendRequestsForUser(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"userID": userID,
			"error":  err.Error(),
		}).Error("Failed to list friend requests")
		return nil, err
	}
	return requests, nil
}

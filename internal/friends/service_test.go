package friends

import (
	"context"
	"database/sql"
	"io"
	"testing"

	apiErrors "github.com/byterank/byterank-backend/internal/errors"
	friendsdb "github.com/byterank/byterank-backend/internal/friends/gen"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestFriendService(repo *MockFriendRepository) *FriendService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewFriendService(logger, repo)
}

// orderedPair returns two UUIDs with a.String() < b.String().
func orderedPair(t *testing.T) (uuid.UUID, uuid.UUID) {
	t.Helper()
	a, b := uuid.New(), uuid.New()
	if a.String() > b.String() {
		a, b = b, a
	}
	return a, b
}

func TestCanonicalPairIsCommutative(t *testing.T) {
	a, b := orderedPair(t)

	x1, y1 := canonicalPair(a, b)
	x2, y2 := canonicalPair(b, a)

	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
	assert.True(t, x1.String() < y1.String())
}

func TestSendFriendRequest(t *testing.T) {
	userA, userB := orderedPair(t)

	tests := []struct {
		name          string
		requesterID   string
		recipientID   string
		setupMocks    func(repo *MockFriendRepository)
		wantAccepted  bool
		wantRequest   bool
		expectedError error
	}{
		{
			name:        "Success - request created",
			requesterID: userA.String(),
			recipientID: userB.String(),
			setupMocks: func(repo *MockFriendRepository) {
				repo.On("GetFriendship", mock.Anything, friendsdb.GetFriendshipParams{UserIDA: userA, UserIDB: userB}).
					Return(friendsdb.Friendship{}, sql.ErrNoRows)
				repo.On("GetPendingRequestBetween", mock.Anything, friendsdb.GetPendingRequestBetweenParams{RequesterID: userA, RecipientID: userB}).
					Return(friendsdb.FriendRequest{}, sql.ErrNoRows)
				repo.On("GetPendingRequestBetween", mock.Anything, friendsdb.GetPendingRequestBetweenParams{RequesterID: userB, RecipientID: userA}).
					Return(friendsdb.FriendRequest{}, sql.ErrNoRows)
				repo.On("CreateFriendRequest", mock.Anything, friendsdb.CreateFriendRequestParams{RequesterID: userA, RecipientID: userB}).
					Return(friendsdb.FriendRequest{
						ID:          uuid.New(),
						RequesterID: userA,
						RecipientID: userB,
						Status:      friendsdb.FriendRequestStatusPending,
					}, nil)
			},
			wantRequest: true,
		},
		{
			name:          "Error - self request",
			requesterID:   userA.String(),
			recipientID:   userA.String(),
			setupMocks:    func(repo *MockFriendRepository) {},
			expectedError: apiErrors.ErrSelfFriendRequest,
		},
		{
			name:        "Error - already friends",
			requesterID: userA.String(),
			recipientID: userB.String(),
			setupMocks: func(repo *MockFriendRepository) {
				repo.On("GetFriendship", mock.Anything, mock.Anything).
					Return(friendsdb.Friendship{UserIDA: userA, UserIDB: userB}, nil)
			},
			expectedError: apiErrors.ErrAlreadyFriends,
		},
		{
			name:        "Error - duplicate pending request",
			requesterID: userA.String(),
			recipientID: userB.String(),
			setupMocks: func(repo *MockFriendRepository) {
				repo.On("GetFriendship", mock.Anything, mock.Anything).
					Return(friendsdb.Friendship{}, sql.ErrNoRows)
				repo.On("GetPendingRequestBetween", mock.Anything, friendsdb.GetPendingRequestBetweenParams{RequesterID: userA, RecipientID: userB}).
					Return(friendsdb.FriendRequest{ID: uuid.New()}, nil)
			},
			expectedError: apiErrors.ErrFriendRequestPending,
		},
		{
			name:        "Success - reciprocal request auto-accepted",
			requesterID: userA.String(),
			recipientID: userB.String(),
			setupMocks: func(repo *MockFriendRepository) {
				repo.On("GetFriendship", mock.Anything, mock.Anything).
					Return(friendsdb.Friendship{}, sql.ErrNoRows)
				repo.On("GetPendingRequestBetween", mock.Anything, friendsdb.GetPendingRequestBetweenParams{RequesterID: userA, RecipientID: userB}).
					Return(friendsdb.FriendRequest{}, sql.ErrNoRows)
				repo.On("GetPendingRequestBetween", mock.Anything, friendsdb.GetPendingRequestBetweenParams{RequesterID: userB, RecipientID: userA}).
					Return(friendsdb.FriendRequest{ID: uuid.New(), RequesterID: userB, RecipientID: userA}, nil)
				repo.On("AutoAcceptTx", mock.Anything, AutoAcceptTxParams{UserIDA: userA, UserIDB: userB}).
					Return(nil)
			},
			wantAccepted: true,
		},
		{
			name:        "Error - recipient does not exist",
			requesterID: userA.String(),
			recipientID: userB.String(),
			setupMocks: func(repo *MockFriendRepository) {
				repo.On("GetFriendship", mock.Anything, mock.Anything).
					Return(friendsdb.Friendship{}, sql.ErrNoRows)
				repo.On("GetPendingRequestBetween", mock.Anything, mock.Anything).
					Return(friendsdb.FriendRequest{}, sql.ErrNoRows).Twice()
				repo.On("CreateFriendRequest", mock.Anything, mock.Anything).
					Return(friendsdb.FriendRequest{}, &pq.Error{Code: "23503"})
			},
			expectedError: apiErrors.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockFriendRepository{}
			tt.setupMocks(repo)
			service := newTestFriendService(repo)

			request, accepted, err := service.SendFriendRequest(context.Background(), tt.requesterID, tt.recipientID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, request)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantAccepted, accepted)
				if tt.wantRequest {
					assert.NotNil(t, request)
					assert.Equal(t, friendsdb.FriendRequestStatusPending, request.Status)
				}
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAcceptFriendRequest(t *testing.T) {
	userA, userB := orderedPair(t)
	requestID := uuid.New()

	tests := []struct {
		name          string
		actingUserID  string
		setupMocks    func(repo *MockFriendRepository)
		expectedError error
	}{
		{
			name:         "Success - recipient accepts, pair stored in canonical order",
			actingUserID: userA.String(),
			setupMocks: func(repo *MockFriendRepository) {
				// Requester is the larger id, so the stored pair must still be (userA, userB).
				repo.On("GetFriendRequest", mock.Anything, requestID).
					Return(friendsdb.FriendRequest{
						ID:          requestID,
						RequesterID: userB,
						RecipientID: userA,
						Status:      friendsdb.FriendRequestStatusPending,
					}, nil)
				repo.On("AcceptFriendRequestTx", mock.Anything, AcceptFriendRequestTxParams{
					RequestID: requestID,
					UserIDA:   userA,
					UserIDB:   userB,
				}).Return(nil)
			},
		},
		{
			name:         "Error - only the recipient may accept",
			actingUserID: userB.String(),
			setupMocks: func(repo *MockFriendRepository) {
				repo.On("GetFriendRequest", mock.Anything, requestID).
					Return(friendsdb.FriendRequest{
						ID:          requestID,
						RequesterID: userB,
						RecipientID: userA,
						Status:      friendsdb.FriendRequestStatusPending,
					}, nil)
			},
			expectedError: apiErrors.ErrForbidden,
		},
		{
			name:         "Error - request does not exist",
			actingUserID: userA.String(),
			setupMocks: func(repo *MockFriendRepository) {
				repo.On("GetFriendRequest", mock.Anything, requestID).
					Return(friendsdb.FriendRequest{}, sql.ErrNoRows)
			},
			expectedError: apiErrors.ErrFriendRequestNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockFriendRepository{}
			tt.setupMocks(repo)
			service := newTestFriendService(repo)

			err := service.AcceptFriendRequest(context.Background(), requestID.String(), tt.actingUserID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestDeclineFriendRequestDeletesRow(t *testing.T) {
	userA, userB := orderedPair(t)
	requestID := uuid.New()

	repo := &MockFriendRepository{}
	repo.On("GetFriendRequest", mock.Anything, requestID).
		Return(friendsdb.FriendRequest{
			ID:          requestID,
			RequesterID: userA,
			RecipientID: userB,
			Status:      friendsdb.FriendRequestStatusPending,
		}, nil)
	repo.On("DeleteFriendRequest", mock.Anything, requestID).Return(nil)
	service := newTestFriendService(repo)

	err := service.DeclineFriendRequest(context.Background(), requestID.String(), userB.String())

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

type fakeResult struct {
	rows int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, nil }

func TestRemoveFriendIsCommutative(t *testing.T) {
	userA, userB := orderedPair(t)

	// Both argument orders must delete the same canonical row.
	for _, pair := range [][2]string{
		{userA.String(), userB.String()},
		{userB.String(), userA.String()},
	} {
		repo := &MockFriendRepository{}
		repo.On("DeleteFriendship", mock.Anything, friendsdb.DeleteFriendshipParams{
			UserIDA: userA,
			UserIDB: userB,
		}).Return(fakeResult{rows: 1}, nil)
		service := newTestFriendService(repo)

		err := service.RemoveFriend(context.Background(), pair[0], pair[1])

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	}
}

func TestRemoveFriendMissingFriendshipIsNoOp(t *testing.T) {
	userA, userB := orderedPair(t)

	repo := &MockFriendRepository{}
	repo.On("DeleteFriendship", mock.Anything, mock.Anything).Return(fakeResult{rows: 0}, nil)
	service := newTestFriendService(repo)

	err := service.RemoveFriend(context.Background(), userA.String(), userB.String())

	assert.NoError(t, err)
}

func TestListFriends(t *testing.T) {
	userID := uuid.New()
	friendID := uuid.New()

	repo := &MockFriendRepository{}
	repo.On("ListFriends", mock.Anything, userID).
		Return([]friendsdb.ListFriendsRow{
			{ID: friendID, Username: "octocat", NumContributions: 42},
		}, nil)
	service := newTestFriendService(repo)

	rows, err := service.ListFriends(context.Background(), userID.String())

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "octocat", rows[0].Username)
}

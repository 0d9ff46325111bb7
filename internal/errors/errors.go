package errors

import (
	"net/http"
	"strings"

	"github.com/lib/pq"
)

// APIError represents a structured error for API responses.
// Includes a code, message, and HTTP status for consistent error handling.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError with the given code, message, and status.
func NewAPIError(code, message string, status int) *APIError {
	return &APIError{Code: code, Message: message, Status: status}
}

// Predefined API errors for common scenarios.
var (
	ErrInvalidBody  = NewAPIError("invalid_body_format", "unable to parse the request body", http.StatusUnprocessableEntity)
	ErrInvalidToken = NewAPIError("invalid_token", "Invalid token", http.StatusUnauthorized)
	ErrExpiredToken = NewAPIError("expired_token", "Expired token", http.StatusUnauthorized)
	ErrForbidden    = NewAPIError("forbidden", "you do not have permission to perform this action", http.StatusForbidden)

	ErrProfileNotFound       = NewAPIError("profile_not_exist", "the profile you are trying to operate on does not exist", http.StatusNotFound)
	ErrTeamNotFound          = NewAPIError("team_not_exist", "the team you are trying to operate on does not exist", http.StatusNotFound)
	ErrMembershipNotFound    = NewAPIError("membership_not_exist", "the user is not a member of this team", http.StatusNotFound)
	ErrFriendRequestNotFound = NewAPIError("friend_request_not_exist", "the friend request does not exist", http.StatusNotFound)
	ErrInvitationNotFound    = NewAPIError("invitation_not_exist", "the invitation does not exist", http.StatusNotFound)
	ErrJoinRequestNotFound   = NewAPIError("join_request_not_exist", "the join request does not exist", http.StatusNotFound)

	ErrDuplicateUsername    = NewAPIError("duplicate_username", "the username is already taken", http.StatusConflict)
	ErrAlreadyFriends       = NewAPIError("already_friends", "you are already friends with this user", http.StatusConflict)
	ErrFriendRequestPending = NewAPIError("friend_request_pending", "a pending friend request already exists for this user", http.StatusConflict)
	ErrSelfFriendRequest    = NewAPIError("self_friend_request", "you cannot send a friend request to yourself", http.StatusBadRequest)
	ErrAlreadyMember        = NewAPIError("already_member", "the user is already a member of this team", http.StatusConflict)
	ErrDuplicateInvitation  = NewAPIError("duplicate_invitation", "a pending invitation already exists for this user", http.StatusConflict)
	ErrDuplicateJoinRequest = NewAPIError("duplicate_join_request", "a pending join request already exists for this team", http.StatusConflict)
	ErrInvitationDecided    = NewAPIError("invitation_already_decided", "the invitation has already been responded to", http.StatusConflict)
	ErrJoinRequestDecided   = NewAPIError("join_request_already_decided", "the join request has already been decided", http.StatusConflict)

	ErrTeamClosed = NewAPIError("team_closed", "the team requires approval to join, send a join request instead", http.StatusConflict)
	ErrTeamOpen   = NewAPIError("team_open", "the team is open, join it directly instead of requesting", http.StatusConflict)
	ErrLastOwner  = NewAPIError("last_owner", "the sole owner cannot leave the team", http.StatusConflict)

	ErrNotFound       = NewAPIError("not_found", "Resource not found", http.StatusNotFound)
	ErrInternalServer = NewAPIError("internal_error", "Internal server error", http.StatusInternalServerError)
)

// IsUniqueViolation checks for unique constraint violation (Postgres).
// Used to detect duplicate resource errors from the database.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	// Try to cast to pq.Error and check the code
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505" // unique_violation
	}

	// Fallback to message-based detection (optional)
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "unique constraint")
}

// IsForeignKeyViolation checks for foreign key constraint violation (Postgres).
// Used to detect writes referencing rows that no longer exist.
func IsForeignKeyViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return false
	}
	return pqErr.Code == "23503" // foreign_key_violation
}

// IsCheckConstraintViolation checks for check constraint violation (Postgres).
// Used to detect invalid data errors from the database.
func IsCheckConstraintViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return false
	}
	return pqErr.Code == "23514" // check_violation
}

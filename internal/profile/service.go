package profile

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"path"

	apiErrors "github.com/byterank/byterank-backend/internal/errors"
	profiledb "github.com/byterank/byterank-backend/internal/profile/gen"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AvatarUploader stores a profile avatar and returns its public URL.
type AvatarUploader interface {
	Upload(ctx context.Context, bucket, object, contentType string, body io.Reader) (string, error)
}

// defaultLeaderboardSize caps the global leaderboard when no explicit limit is
// requested.
const defaultLeaderboardSize = 50

// ProfileService provides business logic for developer profiles and the
// global contribution leaderboard.
type ProfileService struct {
	logger       *logrus.Logger
	profileRepo  Repository
	counter      ContributionCounter
	uploader     AvatarUploader
	avatarBucket string
}

// NewProfileService creates a new ProfileService instance with the provided dependencies.
func NewProfileService(logger *logrus.Logger, profileRepo Repository, counter ContributionCounter, uploader AvatarUploader, avatarBucket string) *ProfileService {
	return &ProfileService{
		logger:       logger,
		profileRepo:  profileRepo,
		counter:      counter,
		uploader:     uploader,
		avatarBucket: avatarBucket,
	}
}

// GetProfile returns a single profile by id.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*profiledb.Profile, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apiErrors.ErrProfileNotFound
	}
	prof, err := s.profileRepo.GetProfile(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apiErrors.ErrProfileNotFound
		}
		return nil, err
	}
	return &prof, nil
}

// GetProfileByUsername returns a single profile by username.
func (s *ProfileService) GetProfileByUsername(ctx context.Context, username string) (*profiledb.Profile, error) {
	prof, err := s.profileRepo.GetProfileByUsername(ctx, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apiErrors.ErrProfileNotFound
		}
		return nil, err
	}
	return &prof, nil
}

// UpdateProfile edits the caller's username, description and links.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*profiledb.Profile, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apiErrors.ErrProfileNotFound
	}

	prof, err := s.profileRepo.UpdateProfile(ctx, profiledb.UpdateProfileParams{
		ID:          id,
		Username:    req.Username,
		Description: toNullString(req.Description),
		GithubUrl:   toNullString(req.GithubURL),
		LinkedinUrl: toNullString(req.LinkedinURL),
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apiErrors.ErrProfileNotFound
		}
		if apiErrors.IsUniqueViolation(err) {
			s.logger.WithFields(logrus.Fields{
				"userID":   userID,
				"username": req.Username,
			}).Warn("Profile update rejected: username already taken")
			return nil, apiErrors.ErrDuplicateUsername
		}
		s.logger.WithFields(logrus.Fields{
			"userID": userID,
			"error":  err.Error(),
		}).Error("Failed to update profile")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"userID":   userID,
		"username": prof.Username,
	}).Info("Profile updated")
	return &prof, nil
}

// UploadAvatar stores a new avatar and points the profile at its public URL.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID, filename, contentType string, body io.Reader) (string, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return "", apiErrors.ErrProfileNotFound
	}

	object := fmt.Sprintf("%s/%s%s", userID, uuid.New().String(), path.Ext(filename))
	url, err := s.uploader.Upload(ctx, s.avatarBucket, object, contentType, body)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"userID": userID,
			"error":  err.Error(),
		}).Error("Failed to upload avatar")
		return "", err
	}

	if err := s.profileRepo.UpdateAvatarUrl(ctx, profiledb.UpdateAvatarUrlParams{
		ID:        id,
		AvatarUrl: sql.NullString{String: url, Valid: true},
	}); err != nil {
		s.logger.WithFields(logrus.Fields{
			"userID": userID,
			"error":  err.Error(),
		}).Error("Failed to store avatar URL")
		return "", err
	}

	s.logger.WithField("userID", userID).Info("Avatar updated")
	return url, nil
}

// RefreshContributions re-counts the user's commits on GitHub and stores the
// new total.
func (s *ProfileService) RefreshContributions(ctx context.Context, userID string) (*profiledb.Profile, error) {
	prof, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, err := s.counter.CountCommits(ctx, prof.Username)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"userID":   userID,
			"username": prof.Username,
			"error":    err.Error(),
		}).Error("Failed to count contributions")
		return nil, err
	}

	updated, err := s.profileRepo.UpdateContributions(ctx, profiledb.UpdateContributionsParams{
		ID:               prof.ID,
		NumContributions: int32(total),
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apiErrors.ErrProfileNotFound
		}
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"userID":        userID,
		"contributions": total,
	}).Info("Contribution count refreshed")
	return &updated, nil
}

// Leaderboard returns the top profiles by contribution count, ranked from 1.
func (s *ProfileService) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultLeaderboardSize
	}
	profiles, err := s.profileRepo.ListTopProfiles(ctx, int32(limit))
	if err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to load leaderboard")
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(profiles))
	for i, prof := range profiles {
		entries = append(entries, LeaderboardEntry{
			Rank:             i + 1,
			ID:               prof.ID.String(),
			Username:         prof.Username,
			AvatarURL:        prof.AvatarUrl.String,
			NumContributions: prof.NumContributions,
		})
	}
	return entries, nil
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

package main

import (
	"context"
	"time"

	"github.com/byterank/byterank-backend/internal/auth"
	authdb "github.com/byterank/byterank-backend/internal/auth/gen"
	"github.com/byterank/byterank-backend/internal/auth/jwt"
	"github.com/byterank/byterank-backend/internal/auth/provider"
	"github.com/byterank/byterank-backend/internal/authz"
	"github.com/byterank/byterank-backend/internal/config"
	"github.com/byterank/byterank-backend/internal/db"
	"github.com/byterank/byterank-backend/internal/feedback"
	"github.com/byterank/byterank-backend/internal/friends"
	"github.com/byterank/byterank-backend/internal/invites"
	"github.com/byterank/byterank-backend/internal/profile"
	"github.com/byterank/byterank-backend/internal/server"
	"github.com/byterank/byterank-backend/internal/storage"
	"github.com/byterank/byterank-backend/internal/teams"
	"github.com/byterank/byterank-backend/internal/utils"
	"github.com/jmoiron/sqlx"
	sqlxadapter "github.com/memwey/casbin-sqlx-adapter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger := utils.New(cfg)

	sqlDB := db.InitDB(logger, cfg)

	// Casbin enforcer backed by the same database. Grouping policies are
	// derived from group_members and resynced at startup.
	adapter := sqlxadapter.NewAdapterFromOptions(&sqlxadapter.AdapterOptions{
		DB:        sqlx.NewDb(sqlDB, "postgres"),
		TableName: "casbin_rule",
	})
	enforcer, err := authz.NewEnforcer(adapter, logger)
	if err != nil {
		logger.Fatal("failed to initialize enforcer: ", err)
	}
	if err := authz.LoadDefaultPolicies(logger, enforcer); err != nil {
		logger.Fatal("failed to load default policies: ", err)
	}
	if err := authz.SyncTeamRoles(context.Background(), sqlDB, logger, enforcer); err != nil {
		logger.Fatal("failed to sync team roles: ", err)
	}

	// JWT manager setup
	jwter := jwt.NewManager(cfg.JWTSecret,
		time.Duration(cfg.AccessTokenDuration)*time.Minute,
		time.Duration(cfg.RefreshTokenDuration)*time.Minute,
	)

	githubProvider := provider.NewGitHubProvider(
		cfg.GitHubClientID,
		cfg.GitHubClientSecret,
		cfg.GitHubRedirectURL,
	)
	authService := auth.NewAuthService(githubProvider, authdb.New(sqlDB), jwter, logger)
	authHandler := auth.NewAuthHandler(authService, logger)

	storageClient := storage.NewClient(cfg.StorageURL, cfg.StorageServiceKey, logger)
	counter := profile.NewGitHubContributionCounter(cfg.GitHubAPIToken)

	profileService := profile.NewProfileService(logger, profile.NewStore(sqlDB), counter, storageClient, cfg.AvatarBucket)
	profileHandler := profile.NewProfileHandler(logger, profileService)

	friendService := friends.NewFriendService(logger, friends.NewStore(sqlDB))
	friendHandler := friends.NewFriendHandler(logger, friendService)

	teamService := teams.NewTeamService(logger, teams.NewStore(sqlDB), enforcer, storageClient, cfg.TeamLogoBucket)
	teamHandler := teams.NewTeamHandler(logger, teamService)

	inviteService := invites.NewInviteService(logger, invites.NewStore(sqlDB), enforcer, teamService, authService)
	inviteHandler := invites.NewInviteHandler(logger, inviteService)

	var sender feedback.Sender
	if cfg.ResendAPIKey != "" {
		sender = feedback.NewResendClient(cfg.ResendAPIKey)
	}
	feedbackService := feedback.NewFeedbackService(logger, sender, cfg.FeedbackFromAddress, cfg.FeedbackToAddress)
	feedbackHandler := feedback.NewFeedbackHandler(logger, feedbackService)

	s := server.New(cfg, logger, sqlDB)
	s.SetupRoutes(authHandler, profileHandler, friendHandler, teamHandler, inviteHandler, feedbackHandler, jwter)

	if err := s.Start(); err != nil {
		logger.Fatal("server failed to start: ", err)
	}
}

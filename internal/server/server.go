package server

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/byterank/byterank-backend/internal/auth"
	"github.com/byterank/byterank-backend/internal/auth/jwt"
	"github.com/byterank/byterank-backend/internal/config"
	"github.com/byterank/byterank-backend/internal/db"
	"github.com/byterank/byterank-backend/internal/feedback"
	"github.com/byterank/byterank-backend/internal/friends"
	"github.com/byterank/byterank-backend/internal/invites"
	"github.com/byterank/byterank-backend/internal/middleware"
	"github.com/byterank/byterank-backend/internal/profile"
	"github.com/byterank/byterank-backend/internal/teams"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Server represents the HTTP server for the ByteRank backend API.
type Server struct {
	cfg    *config.Config
	log    *logrus.Logger
	engine *gin.Engine
	db     *sql.DB // Database connection for health checks
}

// SetupRoutes registers all API routes and middleware for the server.
// This function centralizes route registration for maintainability.
func (s *Server) SetupRoutes(authHandler *auth.AuthHandler,
	profileHandler *profile.ProfileHandler,
	friendHandler *friends.FriendHandler,
	teamHandler *teams.TeamHandler,
	inviteHandler *invites.InviteHandler,
	feedbackHandler *feedback.FeedbackHandler,
	jwter *jwt.Manager) {
	// Create API v1 router group
	v1 := s.engine.Group("/api/v1")

	// Public routes: OAuth flow and the feedback inbox.
	auth.RegisterAuthRoutes(authHandler, v1)
	feedback.RegisterFeedbackRoutes(feedbackHandler, v1)

	// Everything else requires a valid access token.
	protected := v1.Group("")
	protected.Use(middleware.JWTAuthMiddleware(jwter))
	profile.RegisterProfileRoutes(profileHandler, protected)
	friends.RegisterFriendRoutes(friendHandler, protected)
	teams.RegisterTeamRoutes(teamHandler, protected)
	invites.RegisterInviteRoutes(inviteHandler, protected)
}

// routes registers health check and other non-API routes.
func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "ByteRank backend is healthy",
		})
	})

	// Detailed health check with database connection pool stats
	s.engine.GET("/healthz/detailed", func(c *gin.Context) {
		if err := s.db.Ping(); err != nil {
			c.JSON(503, gin.H{
				"status":  "error",
				"message": "Database connection failed",
				"error":   err.Error(),
			})
			return
		}

		poolStats := db.GetConnectionStats(s.db)

		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "ByteRank backend is healthy",
			"database": gin.H{
				"status": "connected",
				"pool":   poolStats,
			},
			"timestamp": gin.H{
				"server_time": time.Now().UTC().Format(time.RFC3339),
			},
		})
	})
}

// New creates a new Server instance with the given config and logger.
func New(cfg *config.Config, log *logrus.Logger, db *sql.DB) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		cfg:    cfg,
		log:    log,
		engine: engine,
		db:     db,
	}
}

// Start runs the HTTP server on the configured port.
func (s *Server) Start() error {
	s.routes()
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	s.log.Infof("starting server on %s", addr)
	return s.engine.Run(addr)
}

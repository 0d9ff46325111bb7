package config

import (
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

// Config holds all configuration values for the application, loaded from environment variables or config files.
// This struct centralizes configuration for maintainability and testability.
type Config struct {
	Port                 string // HTTP server port
	Env                  string // Application environment (e.g., development, production)
	GitHubClientID       string // GitHub OAuth client ID
	GitHubClientSecret   string // GitHub OAuth client secret
	GitHubRedirectURL    string // GitHub OAuth redirect URL
	GitHubAPIToken       string // Token for GitHub API calls (contribution counts)
	DBUser               string // Database user
	DBPort               string // Database port
	DBHost               string // Database host
	DBName               string // Database name
	DBPassword           string // Database password
	DBMaxOpenConns       int    // Maximum open database connections
	DBMaxIdleConns       int    // Maximum idle database connections
	DBConnMaxLifetime    int    // Connection max lifetime in minutes
	DBConnMaxIdleTime    int    // Idle connection max lifetime in minutes
	JWTSecret            string // Secret key for signing JWTs
	AccessTokenDuration  int    // Access token duration in minutes
	RefreshTokenDuration int    // Refresh token duration in minutes
	ResendAPIKey         string // Resend transactional email API key (optional)
	FeedbackFromAddress  string // From address for feedback emails
	FeedbackToAddress    string // Destination address for feedback emails
	StorageURL           string // Object storage base URL
	StorageServiceKey    string // Object storage service key (bearer token)
	AvatarBucket         string // Bucket for profile avatars
	TeamLogoBucket       string // Bucket for team logos
}

// Load reads configuration from the .env file and environment variables, returning a Config struct.
// This function enables flexible configuration for different environments (dev, prod, test).
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_USER", "byterank_user")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PASSWORD", "byterank")
	viper.SetDefault("DB_NAME", "byterank")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", 30)
	viper.SetDefault("DB_CONN_MAX_IDLE_TIME", 5)
	viper.SetDefault("ACCESS_TOKEN_DURATION", 60)     // 1 hour in minutes
	viper.SetDefault("REFRESH_TOKEN_DURATION", 10080) // 7 days in minutes
	viper.SetDefault("FEEDBACK_FROM_ADDRESS", "ByteRank Feedback <onboarding@resend.dev>")
	viper.SetDefault("AVATAR_BUCKET", "avatars")
	viper.SetDefault("TEAM_LOGO_BUCKET", "team-logos")
	if err := viper.ReadInConfig(); err != nil {
		// A missing .env file is fine; environment variables still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		Port:                 viper.GetString("PORT"),
		Env:                  viper.GetString("ENV"),
		GitHubClientID:       viper.GetString("GITHUB_CLIENT_ID"),
		GitHubClientSecret:   viper.GetString("GITHUB_CLIENT_SECRET"),
		GitHubRedirectURL:    viper.GetString("GITHUB_REDIRECT_URL"),
		GitHubAPIToken:       viper.GetString("GITHUB_API_TOKEN"),
		DBUser:               viper.GetString("DB_USER"),
		DBPort:               viper.GetString("DB_PORT"),
		DBHost:               viper.GetString("DB_HOST"),
		DBName:               viper.GetString("DB_NAME"),
		DBPassword:           viper.GetString("DB_PASSWORD"),
		DBMaxOpenConns:       viper.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:       viper.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime:    viper.GetInt("DB_CONN_MAX_LIFETIME"),
		DBConnMaxIdleTime:    viper.GetInt("DB_CONN_MAX_IDLE_TIME"),
		JWTSecret:            viper.GetString("JWT_SECRET"),
		AccessTokenDuration:  viper.GetInt("ACCESS_TOKEN_DURATION"),
		RefreshTokenDuration: viper.GetInt("REFRESH_TOKEN_DURATION"),
		ResendAPIKey:         viper.GetString("RESEND_API_KEY"),
		FeedbackFromAddress:  viper.GetString("FEEDBACK_FROM_ADDRESS"),
		FeedbackToAddress:    viper.GetString("FEEDBACK_TO_ADDRESS"),
		StorageURL:           viper.GetString("STORAGE_URL"),
		StorageServiceKey:    viper.GetString("STORAGE_SERVICE_KEY"),
		AvatarBucket:         viper.GetString("AVATAR_BUCKET"),
		TeamLogoBucket:       viper.GetString("TEAM_LOGO_BUCKET"),
	}, nil
}

// DatabaseURL builds the PostgreSQL connection string from the loaded values.
// The password is URL-encoded to handle special characters.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, url.QueryEscape(c.DBPassword), c.DBHost, c.DBPort, c.DBName)
}

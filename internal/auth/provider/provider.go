package provider

import "context"

// OAuthProvider abstracts the browser-based OAuth flow against an identity provider.
// Implemented by GitHubProvider; mocked in tests.
type OAuthProvider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*OAuthToken, error)
	GetUserInfo(ctx context.Context, token *OAuthToken) (*UserInfo, error)
}

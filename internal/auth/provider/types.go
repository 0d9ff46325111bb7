package provider

// OAuthToken represents an access token returned by an OAuth provider.
type OAuthToken struct {
	AccessToken string
	TokenType   string
	Expiry      int64
}

// UserInfo represents the provider-side identity of an authenticated user.
type UserInfo struct {
	Provider   string `json:"provider"`
	ProviderID int64  `json:"provider_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	AvatarURL  string `json:"avatar_url"`
}

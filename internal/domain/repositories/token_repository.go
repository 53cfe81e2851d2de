package repositories

// TokenRepository resolves the API auth token. An empty result is valid;
// the API is then used unauthenticated.
type TokenRepository interface {
	Token() string
}

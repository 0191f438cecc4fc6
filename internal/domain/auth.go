package domain

// TokenVerifier verifies a bearer token and returns the authenticated user
// ID. Issuing tokens is the auth collaborator's concern, not the scheduler's.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

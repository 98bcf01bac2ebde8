package ports

// Claim is the identity carried inside a verified session token.
type Claim struct {
	Handle string
}

// TokenService issues and verifies signed bearer tokens. Verification
// failures collapse into a single generic outcome regardless of cause
// (missing, malformed, forged, or expired).
type TokenService interface {
	Issue(handle string) (string, error)
	Verify(token string) (Claim, error)
}

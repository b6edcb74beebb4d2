package ports

// TokenPayload is the identity carried inside a bearer token. These claims
// are the only authority for identity after issuance; there is no server-side
// session and no revocation before expiry.
type TokenPayload struct {
	UserID string
	Role   string
}

// TokenService issues and verifies signed, stateless bearer tokens.
type TokenService interface {
	// Issue produces a compact signed token embedding the payload plus
	// issued-at and expiry claims. The token is integrity-protected, not
	// encrypted.
	Issue(payload TokenPayload) (string, error)
	// Verify validates signature and expiry. Any failure, whatever the
	// underlying cause, is reported as domain.ErrInvalidToken.
	Verify(token string) (TokenPayload, error)
}

package scope

// Payload is the verified content of an access token.
type Payload struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Subject   string `json:"sub"`
	Issuer    string `json:"iss"`
	ID        string `json:"jti"`
	ExpiresAt int64  `json:"exp"`
	IssuedAt  int64  `json:"iat"`
}

// Manager verifies raw tokens into a Payload.
type Manager interface {
	Verify(token string) (Payload, error)
}

type payloadCtxKey struct{}
type scopeCtxKey struct{}

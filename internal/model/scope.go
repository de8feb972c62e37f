package model

const (
	RoleAnonymous = "ANONYMOUS"
	RoleUser      = "USER"
	RoleAdmin     = "ADMIN"
	RoleService   = "SERVICE"
)

// Scope identifies the caller of a request.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAuthenticated reports whether the scope came from a credential.
func (s Scope) IsAuthenticated() bool {
	return s.Role != "" && s.Role != RoleAnonymous
}

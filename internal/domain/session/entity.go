// internal/domain/session/entity.go
package session

import (
	"strings"
	"time"
)

// Roles assignable to a user.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents the session identity. At most one user is active per
// session; absence means anonymous.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`

	// PasswordHash is only set on seeded known users and never persisted
	// or returned in responses.
	PasswordHash string `json:"-"`
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// nameFromEmail derives a display name from the email local part:
// "jane.doe@example.com" becomes "Jane Doe".
func nameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}

	words := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	if len(words) == 0 {
		return local
	}

	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// avatarURL builds a generated avatar for a display name.
func avatarURL(seed string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + seed
}

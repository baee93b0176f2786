package entity

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
)

// NormalizeRole maps the role spellings the backend is known to return
// onto the canonical pair. The backend answers "kasir" for cashier
// accounts created through its own seed data.
func NormalizeRole(raw string) Role {
	switch raw {
	case "kasir", "cashier":
		return RoleCashier
	case "admin":
		return RoleAdmin
	default:
		return Role(raw)
	}
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCashier
}

// Session is the identity of the logged-in operator on this terminal.
// It is persisted as a single JSON record so a restart does not log
// the operator out.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Valid reports whether the record is usable as an identity. A record
// that fails this check is treated as "logged out", never as an error.
func (s *Session) Valid() bool {
	return s != nil && s.Username != "" && s.Role.Valid()
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

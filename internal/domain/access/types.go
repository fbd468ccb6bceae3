package access

import "strings"

type Role string

const (
	RoleArtist    Role = "artist"
	RoleCollector Role = "collector"
)

// ParseRole accepts the roles a user may register with.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleArtist:
		return RoleArtist, true
	case RoleCollector:
		return RoleCollector, true
	}
	return "", false
}

// Principal is an authenticated caller. The zero value is anonymous.
type Principal struct {
	id   uint
	role Role
}

// Grant builds a principal. Only the authentication layer should call it,
// after verifying credentials or a token.
func Grant(id uint, role Role) Principal {
	return Principal{id: id, role: role}
}

func (p Principal) ID() uint   { return p.id }
func (p Principal) Role() Role { return p.role }

func (p Principal) Authenticated() bool { return p.id != 0 && p.role != "" }

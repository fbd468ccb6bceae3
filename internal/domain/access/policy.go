package access

import (
	"fmt"

	"artmarket/internal/apperr"
)

var (
	ErrUnauthenticated = apperr.New(apperr.KindUnauthenticated, "authentication required")
	ErrNotOwner        = apperr.New(apperr.KindForbidden, "forbidden")
)

// RequireRole is the single role gate used by every role-restricted
// operation.
func RequireRole(p Principal, role Role) error {
	if !p.Authenticated() {
		return ErrUnauthenticated
	}
	if p.role != role {
		return apperr.Forbidden(fmt.Sprintf("only %ss can perform this action", role))
	}
	return nil
}

// RequireSelf restricts an operation to the user it is scoped to.
func RequireSelf(p Principal, userID uint) error {
	if !p.Authenticated() {
		return ErrUnauthenticated
	}
	if p.id != userID {
		return ErrNotOwner
	}
	return nil
}

package access

import (
	"errors"
	"testing"

	"artmarket/internal/apperr"
)

func TestRequireRole(t *testing.T) {
	artist := Grant(7, RoleArtist)

	if err := RequireRole(artist, RoleArtist); err != nil {
		t.Fatalf("artist rejected: %v", err)
	}
	if err := RequireRole(artist, RoleCollector); !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("want forbidden, got %v", err)
	}
	if err := RequireRole(Principal{}, RoleArtist); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("want unauthenticated, got %v", err)
	}
}

func TestRequireSelf(t *testing.T) {
	p := Grant(3, RoleArtist)

	if err := RequireSelf(p, 3); err != nil {
		t.Fatalf("self rejected: %v", err)
	}
	if err := RequireSelf(p, 4); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("want not owner, got %v", err)
	}
	if err := RequireSelf(Principal{}, 0); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("anonymous caller must not match user 0: %v", err)
	}
}

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole(" Artist "); !ok || r != RoleArtist {
		t.Fatalf("got %q %v", r, ok)
	}
	if _, ok := ParseRole("admin"); ok {
		t.Fatal("admin is not a marketplace role")
	}
}

package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStoreKeepsClassifiedErrors(t *testing.T) {
	notFound := New(KindNotFound, "artwork not found")

	if got := Store(notFound); got != error(notFound) {
		t.Fatalf("Store should return classified error unchanged, got %v", got)
	}
	wrapped := fmt.Errorf("tx: %w", notFound)
	if !errors.Is(Store(wrapped), notFound) {
		t.Fatal("wrapped sentinel lost")
	}
	if Store(nil) != nil {
		t.Fatal("Store(nil) must be nil")
	}
}

func TestStoreWrapsDriverErrors(t *testing.T) {
	err := Store(context.DeadlineExceeded)
	if KindOf(err) != KindStore {
		t.Fatalf("kind = %v, want store", KindOf(err))
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("cause should stay reachable")
	}
	if PublicMessage(err) != "internal server error" {
		t.Fatalf("store error leaked: %q", PublicMessage(err))
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("title is required"), http.StatusBadRequest},
		{New(KindUnauthenticated, "login"), http.StatusUnauthorized},
		{Forbidden("nope"), http.StatusForbidden},
		{New(KindNotFound, "missing"), http.StatusNotFound},
		{New(KindUnavailable, "sold"), http.StatusConflict},
		{New(KindConflict, "taken"), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestPublicMessage(t *testing.T) {
	if got := PublicMessage(Validation("price is required")); got != "price is required" {
		t.Fatalf("got %q", got)
	}
}

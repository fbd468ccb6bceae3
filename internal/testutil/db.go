// Package testutil provides a migrated sqlite store and fixtures for
// package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"artmarket/database"
	"artmarket/internal/domain/access"
	"artmarket/internal/domain/users"
	"artmarket/internal/domain/works"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NewDB returns a fresh file-backed sqlite database. A single connection
// serializes transactions the way row locks would on postgres.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	return openDB(t, 1)
}

// NewPooledDB is NewDB with conns connections, so concurrent transactions
// run on separate connections and contend through sqlite's own locking.
func NewPooledDB(t testing.TB, conns int) *gorm.DB {
	t.Helper()
	return openDB(t, conns)
}

func openDB(t testing.TB, conns int) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "market.db") + "?_busy_timeout=5000"
	db, err := database.Open(database.Options{
		Driver:       "sqlite",
		DSN:          dsn,
		Silent:       true,
		MaxOpenConns: conns,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func CreateUser(t testing.TB, db *gorm.DB, name string, role access.Role) users.User {
	t.Helper()

	u := users.User{
		FullName: name,
		Email:    name + "@example.com",
		Role:     string(role),
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return u
}

func CreateArtwork(t testing.TB, db *gorm.DB, artistID uint, title string, price int64) works.Artwork {
	t.Helper()

	a := works.Artwork{
		ArtistID: artistID,
		Title:    title,
		Price:    decimal.NewFromInt(price),
		ImageURL: "/uploads/" + title + ".png",
		Status:   works.StatusAvailable,
	}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("create artwork %s: %v", title, err)
	}
	return a
}

// Principal grants a principal for a fixture user.
func Principal(u users.User) access.Principal {
	return access.Grant(u.ID, access.Role(u.Role))
}

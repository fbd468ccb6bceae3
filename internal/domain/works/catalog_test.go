package works_test

import (
	"context"
	"errors"
	"testing"

	"artmarket/internal/apperr"
	"artmarket/internal/domain/access"
	"artmarket/internal/domain/works"
	"artmarket/internal/testutil"

	"github.com/shopspring/decimal"
)

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	db := testutil.NewDB(t)
	artist := testutil.CreateUser(t, db, "artist", access.RoleArtist)
	catalog := works.NewCatalog(db)

	_, err := catalog.Create(context.Background(), artist.ID, works.NewArtwork{Title: "  ", Price: price(100)})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("want validation error, got %v", err)
	}

	var count int64
	db.Model(&works.Artwork{}).Count(&count)
	if count != 0 {
		t.Fatalf("no artwork should be persisted, found %d", count)
	}
}

func TestCreateRequiresPositivePrice(t *testing.T) {
	db := testutil.NewDB(t)
	artist := testutil.CreateUser(t, db, "artist", access.RoleArtist)
	catalog := works.NewCatalog(db)
	ctx := context.Background()

	if _, err := catalog.Create(ctx, artist.ID, works.NewArtwork{Title: "Dawn"}); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("missing price: got %v", err)
	}
	if _, err := catalog.Create(ctx, artist.ID, works.NewArtwork{Title: "Dawn", Price: price(0)}); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("zero price: got %v", err)
	}
}

func TestCreateAndGet(t *testing.T) {
	db := testutil.NewDB(t)
	artist := testutil.CreateUser(t, db, "Hokusai", access.RoleArtist)
	catalog := works.NewCatalog(db)
	ctx := context.Background()

	a, err := catalog.Create(ctx, artist.ID, works.NewArtwork{
		Title:       " The Great Wave ",
		Description: "woodblock",
		Price:       price(1200),
		ImageURL:    "/uploads/wave.png",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Status != works.StatusAvailable || a.Title != "The Great Wave" {
		t.Fatalf("unexpected artwork %+v", a)
	}

	got, err := catalog.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Price.Equal(decimal.NewFromInt(1200)) || got.ArtistID != artist.ID {
		t.Fatalf("unexpected artwork %+v", got)
	}

	detail, err := catalog.GetWithArtist(ctx, a.ID)
	if err != nil {
		t.Fatalf("get with artist: %v", err)
	}
	if detail.ArtistName != "Hokusai" || detail.ID != a.ID {
		t.Fatalf("unexpected detail %+v", detail)
	}

	if _, err := catalog.GetByID(ctx, 999); !errors.Is(err, works.ErrArtworkNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
	if _, err := catalog.GetWithArtist(ctx, 999); !errors.Is(err, works.ErrArtworkNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestCreateRejectsUnknownArtist(t *testing.T) {
	db := testutil.NewDB(t)
	catalog := works.NewCatalog(db)

	_, err := catalog.Create(context.Background(), 9999, works.NewArtwork{Title: "Orphan", Price: price(10)})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("want validation error, got %v", err)
	}

	// The constraint holds for writes that bypass the catalog too.
	raw := works.Artwork{ArtistID: 9999, Title: "Orphan", Price: decimal.NewFromInt(10), Status: works.StatusAvailable}
	if err := db.Create(&raw).Error; err == nil {
		t.Fatalf("insert with unknown artist should violate the foreign key")
	}

	var count int64
	db.Model(&works.Artwork{}).Count(&count)
	if count != 0 {
		t.Fatalf("no artwork should be persisted, found %d", count)
	}
}

func TestListAvailableSkipsSold(t *testing.T) {
	db := testutil.NewDB(t)
	artist := testutil.CreateUser(t, db, "artist", access.RoleArtist)
	kept := testutil.CreateArtwork(t, db, artist.ID, "kept", 100)
	sold := testutil.CreateArtwork(t, db, artist.ID, "sold", 100)
	catalog := works.NewCatalog(db)
	ctx := context.Background()

	if err := catalog.MarkSold(ctx, sold.ID); err != nil {
		t.Fatalf("mark sold: %v", err)
	}

	list, err := catalog.ListAvailable(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != kept.ID {
		t.Fatalf("want only %d, got %+v", kept.ID, list)
	}
}

func TestMarkSoldIsOneWay(t *testing.T) {
	db := testutil.NewDB(t)
	artist := testutil.CreateUser(t, db, "artist", access.RoleArtist)
	a := testutil.CreateArtwork(t, db, artist.ID, "piece", 100)
	catalog := works.NewCatalog(db)
	ctx := context.Background()

	if err := catalog.MarkSold(ctx, a.ID); err != nil {
		t.Fatalf("first mark: %v", err)
	}
	if err := catalog.MarkSold(ctx, a.ID); !errors.Is(err, works.ErrArtworkUnavailable) {
		t.Fatalf("second mark: want unavailable, got %v", err)
	}
	if err := catalog.MarkSold(ctx, 404); !errors.Is(err, works.ErrArtworkNotFound) {
		t.Fatalf("missing artwork: want not found, got %v", err)
	}

	got, _ := catalog.GetByID(ctx, a.ID)
	if got.Status != works.StatusSold {
		t.Fatalf("status = %s", got.Status)
	}
}

func TestLockAvailable(t *testing.T) {
	db := testutil.NewDB(t)
	artist := testutil.CreateUser(t, db, "artist", access.RoleArtist)
	a := testutil.CreateArtwork(t, db, artist.ID, "piece", 100)

	if _, err := works.LockAvailable(db, a.ID); err != nil {
		t.Fatalf("lock available: %v", err)
	}
	if err := works.ForceSold(db, a.ID); err != nil {
		t.Fatalf("force sold: %v", err)
	}
	if _, err := works.LockAvailable(db, a.ID); !errors.Is(err, works.ErrArtworkUnavailable) {
		t.Fatalf("want unavailable, got %v", err)
	}
	if err := works.ForceSold(db, 404); !errors.Is(err, works.ErrArtworkNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

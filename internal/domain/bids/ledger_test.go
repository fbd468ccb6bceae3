package bids_test

import (
	"context"
	"errors"
	"testing"

	"artmarket/internal/apperr"
	"artmarket/internal/domain/access"
	"artmarket/internal/domain/bids"
	"artmarket/internal/domain/works"
	"artmarket/internal/testutil"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	ledger    *bids.Ledger
	artistID  uint
	collector uint
}

func newFixture(t *testing.T) fixture {
	db := testutil.NewDB(t)
	artist := testutil.CreateUser(t, db, "artist", access.RoleArtist)
	collector := testutil.CreateUser(t, db, "collector", access.RoleCollector)
	return fixture{db: db, ledger: bids.NewLedger(db), artistID: artist.ID, collector: collector.ID}
}

func TestHighestBidIsNullWithoutBids(t *testing.T) {
	f := newFixture(t)
	a := testutil.CreateArtwork(t, f.db, f.artistID, "quiet", 100)

	got, err := f.ledger.HighestBid(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("highest: %v", err)
	}
	if got.Valid {
		t.Fatalf("want null, got %s", got.Decimal)
	}
}

func TestHighestBidIsMaxRegardlessOfOrder(t *testing.T) {
	sequences := [][]int64{
		{100, 250, 175},
		{250, 175, 100},
		{175, 100, 250},
	}
	for _, seq := range sequences {
		f := newFixture(t)
		a := testutil.CreateArtwork(t, f.db, f.artistID, "contested", 50)
		for _, amt := range seq {
			if _, err := f.ledger.Place(context.Background(), a.ID, f.collector, decimal.NewFromInt(amt)); err != nil {
				t.Fatalf("place %d: %v", amt, err)
			}
		}
		got, err := f.ledger.HighestBid(context.Background(), a.ID)
		if err != nil {
			t.Fatalf("highest: %v", err)
		}
		if !got.Valid || !got.Decimal.Equal(decimal.NewFromInt(250)) {
			t.Fatalf("sequence %v: highest = %v, want 250", seq, got)
		}
	}
}

func TestHighestBidFractionalAmounts(t *testing.T) {
	f := newFixture(t)
	a := testutil.CreateArtwork(t, f.db, f.artistID, "cents", 10)
	for _, s := range []string{"10.25", "10.75", "10.50"} {
		if _, err := f.ledger.Place(context.Background(), a.ID, f.collector, decimal.RequireFromString(s)); err != nil {
			t.Fatalf("place %s: %v", s, err)
		}
	}
	got, _ := f.ledger.HighestBid(context.Background(), a.ID)
	if !got.Valid || !got.Decimal.Equal(decimal.RequireFromString("10.75")) {
		t.Fatalf("highest = %v, want 10.75", got)
	}
}

func TestPlaceOnSoldArtworkFails(t *testing.T) {
	f := newFixture(t)
	a := testutil.CreateArtwork(t, f.db, f.artistID, "gone", 100)
	if err := works.MarkSold(f.db, a.ID); err != nil {
		t.Fatalf("mark sold: %v", err)
	}

	_, err := f.ledger.Place(context.Background(), a.ID, f.collector, decimal.NewFromInt(500))
	if !errors.Is(err, works.ErrArtworkUnavailable) {
		t.Fatalf("want unavailable, got %v", err)
	}

	var count int64
	f.db.Model(&bids.Bid{}).Count(&count)
	if count != 0 {
		t.Fatalf("bid persisted on sold artwork")
	}
}

func TestPlaceOnMissingArtworkIsUnavailable(t *testing.T) {
	f := newFixture(t)
	_, err := f.ledger.Place(context.Background(), 12345, f.collector, decimal.NewFromInt(5))
	if !errors.Is(err, works.ErrArtworkUnavailable) {
		t.Fatalf("want unavailable, got %v", err)
	}
}

func TestPlaceRejectsNonPositiveAmount(t *testing.T) {
	f := newFixture(t)
	a := testutil.CreateArtwork(t, f.db, f.artistID, "free", 100)
	for _, amt := range []int64{0, -5} {
		if _, err := f.ledger.Place(context.Background(), a.ID, f.collector, decimal.NewFromInt(amt)); !apperr.Is(err, apperr.KindValidation) {
			t.Fatalf("amount %d: want validation error, got %v", amt, err)
		}
	}
}

func TestPlaceRejectsAmountsOutsideColumn(t *testing.T) {
	f := newFixture(t)
	a := testutil.CreateArtwork(t, f.db, f.artistID, "precise", 100)
	for _, amt := range []string{"10.255", "10000000000"} {
		if _, err := f.ledger.Place(context.Background(), a.ID, f.collector, decimal.RequireFromString(amt)); !apperr.Is(err, apperr.KindValidation) {
			t.Fatalf("amount %s: want validation error, got %v", amt, err)
		}
	}

	var count int64
	f.db.Model(&bids.Bid{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected bids were stored: %d", count)
	}
}

func TestPlaceAllowsRepeatBidsAndKeepsStatus(t *testing.T) {
	f := newFixture(t)
	a := testutil.CreateArtwork(t, f.db, f.artistID, "popular", 100)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		if _, err := f.ledger.Place(ctx, a.ID, f.collector, decimal.NewFromInt(int64(100*i))); err != nil {
			t.Fatalf("bid %d: %v", i, err)
		}
	}
	list, err := f.ledger.List(ctx, a.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("want 3 bids, got %d", len(list))
	}

	art, _ := works.Find(f.db, a.ID)
	if art.Status != works.StatusAvailable {
		t.Fatalf("bids must not change status, got %s", art.Status)
	}
}

package bids

import (
	"context"
	"errors"

	"artmarket/internal/apperr"
	"artmarket/internal/domain/money"
	"artmarket/internal/domain/works"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Place records a bid. The availability check and the insert share a
// transaction holding the artwork row, so a bid can never land after a sale
// that committed first. Unknown and sold artworks both fail with
// works.ErrArtworkUnavailable.
func (l *Ledger) Place(ctx context.Context, artworkID, collectorID uint, amount decimal.Decimal) (Bid, error) {
	if err := money.Check("amount", amount); err != nil {
		return Bid{}, err
	}

	var bid Bid
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := works.LockAvailable(tx, artworkID); err != nil {
			if errors.Is(err, works.ErrArtworkNotFound) {
				return works.ErrArtworkUnavailable
			}
			return err
		}

		bid = Bid{
			ArtworkID:   artworkID,
			CollectorID: collectorID,
			Amount:      amount,
		}
		return tx.Create(&bid).Error
	})
	if err != nil {
		return Bid{}, apperr.Store(err)
	}
	return bid, nil
}

// HighestBid returns the largest amount bid on the artwork, or an invalid
// NullDecimal when there are none.
func (l *Ledger) HighestBid(ctx context.Context, artworkID uint) (decimal.NullDecimal, error) {
	var highest decimal.NullDecimal
	err := l.db.WithContext(ctx).
		Model(&Bid{}).
		Select("MAX(amount)").
		Where("artwork_id = ?", artworkID).
		Row().
		Scan(&highest)
	if err != nil {
		return decimal.NullDecimal{}, apperr.Store(err)
	}
	return highest, nil
}

// List returns the bids on an artwork, newest first.
func (l *Ledger) List(ctx context.Context, artworkID uint) ([]Bid, error) {
	out := []Bid{}
	if err := l.db.WithContext(ctx).
		Where("artwork_id = ?", artworkID).
		Order("created_at DESC, id DESC").
		Find(&out).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return out, nil
}

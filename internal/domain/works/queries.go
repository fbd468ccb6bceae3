package works

import (
	"errors"

	"artmarket/internal/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrArtworkNotFound    = apperr.New(apperr.KindNotFound, "artwork not found")
	ErrArtworkUnavailable = apperr.New(apperr.KindUnavailable, "artwork not available")
)

// The helpers below take a handle that may be a transaction, so other
// services can compose them into a single unit of work.

func availableArtworksQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&Artwork{}).Where("status = ?", StatusAvailable)
}

// Find loads an artwork regardless of status.
func Find(db *gorm.DB, id uint) (Artwork, error) {
	var a Artwork
	if err := db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Artwork{}, ErrArtworkNotFound
		}
		return Artwork{}, apperr.Store(err)
	}
	return a, nil
}

// LockAvailable loads an artwork and takes a row lock on it for the rest of
// the transaction (no-op on sqlite, where the write lock serializes anyway).
// A missing row is ErrArtworkNotFound, a sold one ErrArtworkUnavailable.
func LockAvailable(tx *gorm.DB, id uint) (Artwork, error) {
	a, err := Find(tx.Clauses(clause.Locking{Strength: "UPDATE"}), id)
	if err != nil {
		return Artwork{}, err
	}
	if !a.Available() {
		return Artwork{}, ErrArtworkUnavailable
	}
	return a, nil
}

// MarkSold is the compare-and-set transition available -> sold. Exactly one
// caller can win it for a given artwork.
func MarkSold(tx *gorm.DB, id uint) error {
	res := tx.Model(&Artwork{}).
		Where("id = ? AND status = ?", id, StatusAvailable).
		Update("status", StatusSold)
	if res.Error != nil {
		return apperr.Store(res.Error)
	}
	if res.RowsAffected == 1 {
		return nil
	}

	if _, err := Find(tx, id); err != nil {
		return err
	}
	return ErrArtworkUnavailable
}

// ForceSold sets status to sold whatever its current value. Used only when
// direct orders are allowed on already-sold artworks.
func ForceSold(tx *gorm.DB, id uint) error {
	res := tx.Model(&Artwork{}).Where("id = ?", id).Update("status", StatusSold)
	if res.Error != nil {
		return apperr.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrArtworkNotFound
	}
	return nil
}

package bids

import (
	"time"

	"artmarket/internal/domain/users"
	"artmarket/internal/domain/works"

	"github.com/shopspring/decimal"
)

// Bid is a non-binding offer on an artwork. Bids are append-only; an artwork
// may collect any number of them, from the same collector too.
type Bid struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	ArtworkID   uint            `gorm:"not null;index" json:"artwork_id"`
	CollectorID uint            `gorm:"not null;index" json:"collector_id"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`

	Artwork   *works.Artwork `gorm:"foreignKey:ArtworkID;constraint:OnDelete:RESTRICT" json:"-"`
	Collector *users.User    `gorm:"foreignKey:CollectorID;constraint:OnDelete:RESTRICT" json:"-"`
}

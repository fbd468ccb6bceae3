package works

import (
	"strings"
	"time"

	"artmarket/internal/apperr"
	"artmarket/internal/domain/money"
	"artmarket/internal/domain/users"

	"github.com/shopspring/decimal"
)

type Status string

// Availability only moves forward: available -> sold.
const (
	StatusAvailable Status = "available"
	StatusSold      Status = "sold"
)

type Artwork struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	ArtistID    uint            `gorm:"not null;index" json:"artist_id"`
	Artist      *users.User     `gorm:"foreignKey:ArtistID;constraint:OnDelete:RESTRICT" json:"-"`
	Title       string          `gorm:"not null" json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	ImageURL    string          `json:"image_url"`
	Status      Status          `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a Artwork) Available() bool { return a.Status == StatusAvailable }

// ArtworkWithArtist is an artwork joined with its artist's display name.
type ArtworkWithArtist struct {
	Artwork
	ArtistName string `json:"artist_name"`
}

type NewArtwork struct {
	Title       string
	Description string
	Price       *decimal.Decimal
	ImageURL    string
}

// Validate checks the fields an artwork cannot be listed without.
func (n NewArtwork) Validate() error {
	if strings.TrimSpace(n.Title) == "" || n.Price == nil {
		return apperr.Validation("title and price are required")
	}
	return money.Check("price", *n.Price)
}

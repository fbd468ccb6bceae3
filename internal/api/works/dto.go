package works

import (
	"artmarket/internal/domain/works"

	"github.com/shopspring/decimal"
)

// ArtworkDetailDTO is an artwork with its artist's name and the current
// highest bid (null when nobody has bid).
type ArtworkDetailDTO struct {
	works.ArtworkWithArtist
	HighestBid decimal.NullDecimal `json:"highest_bid"`
}

type CreateArtworkResponse struct {
	Message   string `json:"message"`
	ArtworkID uint   `json:"artworkId"`
	ImageURL  string `json:"imageUrl"`
}

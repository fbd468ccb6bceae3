package works

import (
	"context"
	"errors"
	"strings"

	"artmarket/internal/apperr"
	"artmarket/internal/domain/users"

	"gorm.io/gorm"
)

// Catalog owns artwork records and their availability.
type Catalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

func (c *Catalog) GetByID(ctx context.Context, id uint) (Artwork, error) {
	return Find(c.db.WithContext(ctx), id)
}

// GetWithArtist returns the artwork with its artist's full name.
func (c *Catalog) GetWithArtist(ctx context.Context, id uint) (ArtworkWithArtist, error) {
	var rows []ArtworkWithArtist
	err := c.db.WithContext(ctx).
		Table("artworks AS a").
		Select("a.*, u.full_name AS artist_name").
		Joins("JOIN users u ON a.artist_id = u.id").
		Where("a.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return ArtworkWithArtist{}, apperr.Store(err)
	}
	if len(rows) == 0 {
		return ArtworkWithArtist{}, ErrArtworkNotFound
	}
	return rows[0], nil
}

func (c *Catalog) ListAvailable(ctx context.Context) ([]Artwork, error) {
	out := []Artwork{}
	if err := availableArtworksQuery(c.db.WithContext(ctx)).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return out, nil
}

func (c *Catalog) MarkSold(ctx context.Context, id uint) error {
	return MarkSold(c.db.WithContext(ctx), id)
}

// Create lists a new artwork as available. It does not check who is calling:
// entry points must gate it with access.RequireRole(p, access.RoleArtist)
// and pass the principal's id as artistID.
func (c *Catalog) Create(ctx context.Context, artistID uint, in NewArtwork) (Artwork, error) {
	if err := in.Validate(); err != nil {
		return Artwork{}, err
	}
	if artistID == 0 {
		return Artwork{}, apperr.Validation("artist is required")
	}

	a := Artwork{
		ArtistID:    artistID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Price:       *in.Price,
		ImageURL:    in.ImageURL,
		Status:      StatusAvailable,
	}
	db := c.db.WithContext(ctx)
	var artists int64
	if err := db.Model(&users.User{}).Where("id = ?", artistID).Count(&artists).Error; err != nil {
		return Artwork{}, apperr.Store(err)
	}
	if artists == 0 {
		return Artwork{}, apperr.Validation("unknown artist")
	}
	if err := db.Create(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return Artwork{}, apperr.Validation("unknown artist")
		}
		return Artwork{}, apperr.Store(err)
	}
	return a, nil
}

package works

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"artmarket/internal/api/httpx"
	"artmarket/internal/apperr"
	"artmarket/internal/domain/access"
	"artmarket/internal/domain/works"
	"artmarket/internal/infra/blobstore"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BlobStore persists uploaded images and returns their public URL.
type BlobStore interface {
	Save(r io.Reader, originalName string) (string, error)
	Delete(url string) error
}

// BidReader reports the highest bid on an artwork.
type BidReader interface {
	HighestBid(ctx context.Context, artworkID uint) (decimal.NullDecimal, error)
}

type Handler struct {
	Catalog *works.Catalog
	Bids    BidReader
	Blobs   BlobStore
}

// GET /api/artworks
func (h *Handler) ListArtworks(c *gin.Context) {
	list, err := h.Catalog.ListAvailable(c.Request.Context())
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/artworks/:id
func (h *Handler) GetArtwork(c *gin.Context) {
	id, err := httpx.UintParam(c, "id")
	if err != nil {
		httpx.WriteError(c, err)
		return
	}

	ctx := c.Request.Context()
	a, err := h.Catalog.GetWithArtist(ctx, id)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	highest, err := h.Bids.HighestBid(ctx, id)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, ArtworkDetailDTO{ArtworkWithArtist: a, HighestBid: highest})
}

// POST /api/artworks (multipart: image, title, description, price)
func (h *Handler) CreateArtwork(c *gin.Context) {
	p := httpx.PrincipalFrom(c)
	if err := access.RequireRole(p, access.RoleArtist); err != nil {
		httpx.WriteError(c, err)
		return
	}

	in := works.NewArtwork{
		Title:       httpx.CleanText(c.PostForm("title")),
		Description: httpx.CleanText(c.PostForm("description")),
	}
	if raw := strings.TrimSpace(c.PostForm("price")); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			httpx.WriteError(c, apperr.Validation("price must be a number"))
			return
		}
		in.Price = &price
	}
	if err := in.Validate(); err != nil {
		httpx.WriteError(c, err)
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		httpx.WriteError(c, apperr.Validation("image file is required"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		httpx.WriteError(c, apperr.Validation("unreadable image file"))
		return
	}
	defer f.Close()

	url, err := h.Blobs.Save(f, fh.Filename)
	if err != nil {
		switch {
		case errors.Is(err, blobstore.ErrUnsupportedType):
			httpx.WriteError(c, apperr.Validation("image must be jpg, png, gif or webp"))
			return
		case errors.Is(err, blobstore.ErrTooLarge):
			httpx.WriteError(c, apperr.Validation("image is too large"))
			return
		}
		log.Error().Err(err).Str("file", fh.Filename).Msg("save image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading artwork"})
		return
	}
	in.ImageURL = url

	a, err := h.Catalog.Create(c.Request.Context(), p.ID(), in)
	if err != nil {
		if derr := h.Blobs.Delete(url); derr != nil {
			log.Warn().Err(derr).Str("url", url).Msg("remove orphaned image")
		}
		httpx.WriteError(c, err)
		return
	}

	log.Info().Uint("artwork_id", a.ID).Uint("artist_id", p.ID()).Msg("artwork uploaded")
	c.JSON(http.StatusCreated, CreateArtworkResponse{
		Message:   "Artwork uploaded successfully",
		ArtworkID: a.ID,
		ImageURL:  url,
	})
}

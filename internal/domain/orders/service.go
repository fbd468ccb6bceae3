package orders

import (
	"context"
	"errors"
	"strings"

	"artmarket/internal/apperr"
	"artmarket/internal/domain/access"
	"artmarket/internal/domain/bids"
	"artmarket/internal/domain/money"
	"artmarket/internal/domain/works"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound   = apperr.New(apperr.KindNotFound, "order not found")
	ErrOrderNotPending = apperr.New(apperr.KindConflict, "order is no longer pending")
)

type Options struct {
	// RequireAvailableForDirectOrder refuses direct orders on sold artworks
	// and makes the sold transition a compare-and-set, so concurrent buyers
	// of one artwork cannot both succeed. When false, any existing artwork
	// can receive a direct order.
	RequireAvailableForDirectOrder bool
}

type DirectOrderInput struct {
	ArtworkID  uint
	Price      *decimal.Decimal // defaults to the artwork's listed price
	CustomNote *string
}

type CustomOrderInput struct {
	ArtworkID uint
	Price     decimal.Decimal
	Note      string
}

// Service orchestrates purchases and bids against the catalog.
type Service struct {
	db     *gorm.DB
	ledger *bids.Ledger
	opts   Options
}

func NewService(db *gorm.DB, ledger *bids.Ledger, opts Options) *Service {
	return &Service{db: db, ledger: ledger, opts: opts}
}

// PlaceDirectOrder buys an artwork outright. The order insert and the
// artwork's transition to sold commit together or not at all.
func (s *Service) PlaceDirectOrder(ctx context.Context, p access.Principal, in DirectOrderInput) (Order, error) {
	if err := access.RequireRole(p, access.RoleCollector); err != nil {
		return Order{}, err
	}
	if in.Price != nil {
		if err := money.Check("price", *in.Price); err != nil {
			return Order{}, err
		}
	}

	var order Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var (
			art works.Artwork
			err error
		)
		if s.opts.RequireAvailableForDirectOrder {
			art, err = works.LockAvailable(tx, in.ArtworkID)
		} else {
			art, err = works.Find(tx, in.ArtworkID)
		}
		if err != nil {
			return err
		}

		price := art.Price
		if in.Price != nil {
			price = *in.Price
		}

		order = Order{
			ArtworkID:   art.ID,
			CollectorID: p.ID(),
			ArtistID:    art.ArtistID,
			Price:       price,
			Type:        TypeDirect,
			CustomNote:  normalizeNote(in.CustomNote),
			Status:      StatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if s.opts.RequireAvailableForDirectOrder {
			return works.MarkSold(tx, art.ID)
		}
		return works.ForceSold(tx, art.ID)
	})
	if err != nil {
		return Order{}, apperr.Store(err)
	}

	log.Info().
		Uint("order_id", order.ID).
		Uint("artwork_id", order.ArtworkID).
		Uint("collector_id", order.CollectorID).
		Str("price", order.Price.String()).
		Msg("direct order placed")
	return order, nil
}

// PlaceCustomOrder records a commission request against an artwork. It does
// not affect availability.
func (s *Service) PlaceCustomOrder(ctx context.Context, p access.Principal, in CustomOrderInput) (Order, error) {
	if err := access.RequireRole(p, access.RoleCollector); err != nil {
		return Order{}, err
	}
	note := strings.TrimSpace(in.Note)
	if note == "" {
		return Order{}, apperr.Validation("custom_note is required for custom orders")
	}
	if err := money.Check("price", in.Price); err != nil {
		return Order{}, err
	}

	db := s.db.WithContext(ctx)
	art, err := works.Find(db, in.ArtworkID)
	if err != nil {
		return Order{}, err
	}

	order := Order{
		ArtworkID:   art.ID,
		CollectorID: p.ID(),
		ArtistID:    art.ArtistID,
		Price:       in.Price,
		Type:        TypeCustom,
		CustomNote:  &note,
		Status:      StatusPending,
	}
	if err := db.Create(&order).Error; err != nil {
		return Order{}, apperr.Store(err)
	}
	return order, nil
}

func (s *Service) PlaceBid(ctx context.Context, p access.Principal, artworkID uint, amount decimal.Decimal) (bids.Bid, error) {
	if err := access.RequireRole(p, access.RoleCollector); err != nil {
		return bids.Bid{}, err
	}
	return s.ledger.Place(ctx, artworkID, p.ID(), amount)
}

func (s *Service) GetHighestBid(ctx context.Context, artworkID uint) (decimal.NullDecimal, error) {
	return s.ledger.HighestBid(ctx, artworkID)
}

// ListArtistOrders returns the orders received by artistID. Callers may only
// list their own orders.
func (s *Service) ListArtistOrders(ctx context.Context, p access.Principal, artistID uint) ([]OrderWithContext, error) {
	if err := access.RequireRole(p, access.RoleArtist); err != nil {
		return nil, err
	}
	if err := access.RequireSelf(p, artistID); err != nil {
		return nil, err
	}

	out := []OrderWithContext{}
	err := s.db.WithContext(ctx).
		Table("orders AS o").
		Select("o.*, a.title AS artwork_title, u.full_name AS collector_name").
		Joins("JOIN artworks a ON o.artwork_id = a.id").
		Joins("JOIN users u ON o.collector_id = u.id").
		Where("o.artist_id = ?", artistID).
		Order("o.created_at DESC, o.id DESC").
		Scan(&out).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return out, nil
}

func (s *Service) AcceptOrder(ctx context.Context, p access.Principal, orderID uint) (Order, error) {
	return s.decide(ctx, p, orderID, StatusAccepted)
}

func (s *Service) RejectOrder(ctx context.Context, p access.Principal, orderID uint) (Order, error) {
	return s.decide(ctx, p, orderID, StatusRejected)
}

// decide moves a pending order owned by the calling artist to next.
func (s *Service) decide(ctx context.Context, p access.Principal, orderID uint, next Status) (Order, error) {
	if err := access.RequireRole(p, access.RoleArtist); err != nil {
		return Order{}, err
	}

	var order Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if err := access.RequireSelf(p, order.ArtistID); err != nil {
			return err
		}

		res := tx.Model(&Order{}).
			Where("id = ? AND status = ?", order.ID, StatusPending).
			Update("status", next)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrOrderNotPending
		}
		order.Status = next
		return nil
	})
	if err != nil {
		return Order{}, apperr.Store(err)
	}

	log.Info().Uint("order_id", order.ID).Str("status", string(next)).Msg("order decided")
	return order, nil
}

func normalizeNote(note *string) *string {
	if note == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

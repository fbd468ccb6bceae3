package reports

import (
	"context"

	"artmarket/internal/apperr"
	"artmarket/internal/domain/access"
	"artmarket/internal/domain/orders"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Report summarizes the orders an artist has received. Revenue only counts
// accepted orders.
type Report struct {
	ArtistID     uint            `json:"artist_id"`
	TotalOrders  int64           `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	CustomOrders int64           `json:"custom_orders"`
}

type Options struct {
	// Public lets anyone read any artist's report.
	Public bool
}

type Service struct {
	db   *gorm.DB
	opts Options
}

func NewService(db *gorm.DB, opts Options) *Service {
	return &Service{db: db, opts: opts}
}

func (s *Service) ArtistReport(ctx context.Context, viewer access.Principal, artistID uint) (Report, error) {
	if !s.opts.Public {
		if err := access.RequireRole(viewer, access.RoleArtist); err != nil {
			return Report{}, err
		}
		if err := access.RequireSelf(viewer, artistID); err != nil {
			return Report{}, err
		}
	}

	r := Report{ArtistID: artistID}
	err := s.db.WithContext(ctx).
		Model(&orders.Order{}).
		Select(`COUNT(*),
			COALESCE(SUM(CASE WHEN status = ? THEN price ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = ? THEN 1 ELSE 0 END), 0)`,
			orders.StatusAccepted, orders.TypeCustom).
		Where("artist_id = ?", artistID).
		Row().
		Scan(&r.TotalOrders, &r.TotalRevenue, &r.CustomOrders)
	if err != nil {
		return Report{}, apperr.Store(err)
	}
	return r, nil
}

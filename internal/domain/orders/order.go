package orders

import (
	"time"

	"artmarket/internal/domain/users"
	"artmarket/internal/domain/works"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeDirect Type = "direct"
	TypeCustom Type = "custom"
)

type Status string

// Orders start pending; the artist moves them to accepted or rejected once.
const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	ArtworkID   uint            `gorm:"not null;index" json:"artwork_id"`
	CollectorID uint            `gorm:"not null;index" json:"collector_id"`
	ArtistID    uint            `gorm:"not null;index" json:"artist_id"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Type        Type            `gorm:"type:varchar(20);not null" json:"type"`
	CustomNote  *string         `json:"custom_note"`
	Status      Status          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Artwork   *works.Artwork `gorm:"foreignKey:ArtworkID;constraint:OnDelete:RESTRICT" json:"-"`
	Collector *users.User    `gorm:"foreignKey:CollectorID;constraint:OnDelete:RESTRICT" json:"-"`
	Artist    *users.User    `gorm:"foreignKey:ArtistID;constraint:OnDelete:RESTRICT" json:"-"`
}

// OrderWithContext is what an artist sees when listing incoming orders.
type OrderWithContext struct {
	Order
	ArtworkTitle  string `json:"artwork_title"`
	CollectorName string `json:"collector_name"`
}

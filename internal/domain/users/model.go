package users

import (
	"time"

	"artmarket/internal/domain/access"
)

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	FullName     string  `gorm:"not null" json:"full_name"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	PasswordHash *string `json:"-"`
	Role         string  `gorm:"type:varchar(20);not null" json:"role"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Principal is the access identity of a user whose credentials were checked.
func (u User) Principal() access.Principal {
	return access.Grant(u.ID, access.Role(u.Role))
}

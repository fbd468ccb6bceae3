package users

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"artmarket/internal/apperr"
	"artmarket/internal/domain/access"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = apperr.New(apperr.KindConflict, "email already exists")
	ErrInvalidCredentials = apperr.New(apperr.KindUnauthenticated, "invalid credentials")
	ErrPasswordlessUser   = apperr.New(apperr.KindUnauthenticated, "this account uses Google sign-in")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Role     string
}

type Service struct {
	db   *gorm.DB
	cost int
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, cost: bcrypt.DefaultCost}
}

// WithHashCost lowers the bcrypt cost, for tests.
func (s *Service) WithHashCost(cost int) *Service {
	s.cost = cost
	return s
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.FullName == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return User{}, apperr.Validation("all fields are required")
	}
	if !emailPattern.MatchString(in.Email) {
		return User{}, apperr.Validation("invalid email format")
	}
	if !isPasswordStrong(in.Password) {
		return User{}, apperr.Validation("password must be at least 8 characters long and contain both letters and numbers")
	}
	role, ok := access.ParseRole(in.Role)
	if !ok {
		return User{}, apperr.Validation("role must be artist or collector")
	}

	db := s.db.WithContext(ctx)

	var existing int64
	if err := db.Model(&User{}).Where("email = ?", in.Email).Count(&existing).Error; err != nil {
		return User{}, apperr.Store(err)
	}
	if existing > 0 {
		return User{}, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return User{}, apperr.Store(err)
	}
	hash := string(hashed)

	u := User{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: &hash,
		Role:         string(role),
	}
	if err := db.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return User{}, ErrEmailTaken
		}
		return User{}, apperr.Store(err)
	}
	return u, nil
}

// Authenticate checks an email/password pair.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return User{}, apperr.Validation("email and password are required")
	}

	var u User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, apperr.Store(err)
	}
	if u.PasswordHash == nil || *u.PasswordHash == "" {
		return User{}, ErrPasswordlessUser
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

var ErrUserNotFound = apperr.New(apperr.KindNotFound, "user not found")

func (s *Service) Get(ctx context.Context, id uint) (User, error) {
	var u User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, apperr.Store(err)
	}
	return u, nil
}

type GoogleIdentity struct {
	Sub      string
	Email    string
	FullName string
}

// FindOrCreateGoogle resolves a verified Google identity to a user, linking an
// existing email account on first use. role applies to new accounts only.
func (s *Service) FindOrCreateGoogle(ctx context.Context, id GoogleIdentity, role access.Role) (User, error) {
	if id.Sub == "" || id.Email == "" {
		return User{}, apperr.Validation("google identity missing required claims")
	}
	email := strings.ToLower(strings.TrimSpace(id.Email))

	var u User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("google_sub = ?", id.Sub).First(&u).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		err = tx.Where("email = ?", email).First(&u).Error
		if err == nil {
			if u.GoogleSub == nil {
				sub := id.Sub
				u.GoogleSub = &sub
				return tx.Model(&User{}).Where("id = ?", u.ID).Update("google_sub", sub).Error
			}
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		sub := id.Sub
		u = User{
			FullName:  firstNonEmpty(strings.TrimSpace(id.FullName), email),
			Email:     email,
			Role:      string(role),
			GoogleSub: &sub,
		}
		return tx.Create(&u).Error
	})
	if err != nil {
		return User{}, apperr.Store(err)
	}
	return u, nil
}

func isPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLetter := false
	hasDigit := false
	for _, c := range password {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			hasLetter = true
		case '0' <= c && c <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

func firstNonEmpty(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}

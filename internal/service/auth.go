package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/pageza/devconnector/backend/internal/models"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// Ensure AuthService implements IAuthService
var _ IAuthService = (*AuthService)(nil)

// AuthService registers users and exchanges credentials for tokens
type AuthService struct {
	db     *gorm.DB
	hasher IPasswordHasher
	tokens ITokenService
}

func NewAuthService(db *gorm.DB, hasher IPasswordHasher, tokens ITokenService) *AuthService {
	return &AuthService{
		db:     db,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a user and returns a token for it
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if count > 0 {
		return "", ErrDuplicateUser
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		Avatar:       GravatarURL(email),
		PasswordHash: hash,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// a concurrent registration can win the race past the count above
		if isUniqueViolation(err) {
			return "", ErrDuplicateUser
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return s.tokens.Issue(user.ID)
}

// Login verifies email and password and returns a fresh token
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}

// GetUser returns the user without its password hash
func (s *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Omit("password_hash").Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}

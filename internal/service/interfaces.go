package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pageza/devconnector/backend/internal/models"
	"github.com/pageza/devconnector/backend/internal/types"
)

// ITokenService issues and verifies identity tokens
type ITokenService interface {
	Issue(userID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}

// IPasswordHasher hashes and compares passwords
type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// IAuthService defines the interface for credential operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// IProfileService defines the interface for profile operations
type IProfileService interface {
	GetMyProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, fields ProfileFields) (*models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	GetProfileByUser(ctx context.Context, userID string) (*models.Profile, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
	AddExperience(ctx context.Context, userID uuid.UUID, req types.ExperienceRequest) (*models.Profile, error)
	RemoveExperience(ctx context.Context, userID uuid.UUID, entryID string) (*models.Profile, error)
	AddEducation(ctx context.Context, userID uuid.UUID, req types.EducationRequest) (*models.Profile, error)
	RemoveEducation(ctx context.Context, userID uuid.UUID, entryID string) (*models.Profile, error)
}

// IGitHubService lists a GitHub user's public repositories
type IGitHubService interface {
	ListRepos(ctx context.Context, username string) (json.RawMessage, error)
}

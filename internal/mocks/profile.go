package mocks

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pageza/devconnector/backend/internal/models"
	"github.com/pageza/devconnector/backend/internal/service"
	"github.com/pageza/devconnector/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockProfileService is a mock implementation of the IProfileService interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) profileResult(args mock.Arguments) (*models.Profile, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) GetMyProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return m.profileResult(m.Called(ctx, userID))
}

func (m *MockProfileService) UpsertProfile(ctx context.Context, userID uuid.UUID, fields service.ProfileFields) (*models.Profile, error) {
	return m.profileResult(m.Called(ctx, userID, fields))
}

func (m *MockProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *MockProfileService) GetProfileByUser(ctx context.Context, userID string) (*models.Profile, error) {
	return m.profileResult(m.Called(ctx, userID))
}

func (m *MockProfileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockProfileService) AddExperience(ctx context.Context, userID uuid.UUID, req types.ExperienceRequest) (*models.Profile, error) {
	return m.profileResult(m.Called(ctx, userID, req))
}

func (m *MockProfileService) RemoveExperience(ctx context.Context, userID uuid.UUID, entryID string) (*models.Profile, error) {
	return m.profileResult(m.Called(ctx, userID, entryID))
}

func (m *MockProfileService) AddEducation(ctx context.Context, userID uuid.UUID, req types.EducationRequest) (*models.Profile, error) {
	return m.profileResult(m.Called(ctx, userID, req))
}

func (m *MockProfileService) RemoveEducation(ctx context.Context, userID uuid.UUID, entryID string) (*models.Profile, error) {
	return m.profileResult(m.Called(ctx, userID, entryID))
}

// MockGitHubService is a mock implementation of the IGitHubService interface
type MockGitHubService struct {
	mock.Mock
}

func (m *MockGitHubService) ListRepos(ctx context.Context, username string) (json.RawMessage, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

var (
	_ service.IAuthService    = (*MockAuthService)(nil)
	_ service.ITokenService   = (*MockTokenService)(nil)
	_ service.IProfileService = (*MockProfileService)(nil)
	_ service.IGitHubService  = (*MockGitHubService)(nil)
)

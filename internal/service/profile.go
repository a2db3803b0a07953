package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/devconnector/backend/internal/models"
	"github.com/pageza/devconnector/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileService handles profile operations
type ProfileService struct {
	db *gorm.DB
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		db: db,
	}
}

// GetMyProfile returns the profile owned by userID
func (s *ProfileService) GetMyProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return s.load(ctx, userID)
}

// UpsertProfile merges fields into the user's profile, creating it if needed
func (s *ProfileService) UpsertProfile(ctx context.Context, userID uuid.UUID, fields ProfileFields) (*models.Profile, error) {
	db := s.db.WithContext(ctx)

	var existing int64
	if err := db.Model(&models.Profile{}).Where("user_id = ?", userID).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if existing == 0 {
		profile := models.Profile{UserID: userID, Skills: []string{}}
		fields.Apply(&profile)
		err := db.Omit(clause.Associations).Create(&profile).Error
		if err == nil {
			return s.load(ctx, userID)
		}
		if !isUniqueViolation(err) {
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
		// created concurrently; merge into the winner's row
	}

	if err := s.update(db, userID, fields); err != nil {
		return nil, err
	}
	return s.load(ctx, userID)
}

// update writes only the columns of the present fields in a single statement
func (s *ProfileService) update(db *gorm.DB, userID uuid.UUID, fields ProfileFields) error {
	cols := fields.Columns()
	if len(cols) == 0 {
		return nil
	}

	var patch models.Profile
	fields.Apply(&patch)
	err := db.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Select(cols).
		Updates(&patch).Error
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// ListProfiles returns every profile in creation order
func (s *ProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	profiles := []models.Profile{}
	if err := s.withChildren(s.db.WithContext(ctx)).Order("created_at ASC").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// GetProfileByUser looks a profile up by the owner's id as given in a URL
func (s *ProfileService) GetProfileByUser(ctx context.Context, userID string) (*models.Profile, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}
	return s.load(ctx, id)
}

// DeleteAccount removes the profile, its entries and the user. Missing rows are not an error.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	db := s.db.WithContext(ctx)

	profileID, err := profileIDFor(db, userID)
	switch {
	case err == nil:
		if err := db.Where("profile_id = ?", profileID).Delete(&models.Experience{}).Error; err != nil {
			return fmt.Errorf("failed to delete experience: %w", err)
		}
		if err := db.Where("profile_id = ?", profileID).Delete(&models.Education{}).Error; err != nil {
			return fmt.Errorf("failed to delete education: %w", err)
		}
		if err := db.Where("id = ?", profileID).Delete(&models.Profile{}).Error; err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}
	case !errors.Is(err, ErrProfileNotFound):
		return err
	}

	if err := db.Where("id = ?", userID).Delete(&models.User{}).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// AddExperience prepends an experience entry to the user's profile
func (s *ProfileService) AddExperience(ctx context.Context, userID uuid.UUID, req types.ExperienceRequest) (*models.Profile, error) {
	from, to, err := parseRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profileID, err := profileIDFor(tx, userID)
		if err != nil {
			return err
		}
		seq, err := nextSeq(tx, &models.Experience{}, profileID)
		if err != nil {
			return err
		}
		entry := models.Experience{
			ProfileID:   profileID,
			Seq:         seq,
			Title:       req.Title,
			Company:     req.Company,
			Location:    req.Location,
			From:        from,
			To:          to,
			Current:     req.Current,
			Description: req.Description,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to add experience: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.load(ctx, userID)
}

// RemoveExperience deletes the experience entry with entryID, if the user owns one
func (s *ProfileService) RemoveExperience(ctx context.Context, userID uuid.UUID, entryID string) (*models.Profile, error) {
	if err := s.removeEntry(ctx, userID, &models.Experience{}, entryID); err != nil {
		return nil, err
	}
	return s.load(ctx, userID)
}

// AddEducation prepends an education entry to the user's profile
func (s *ProfileService) AddEducation(ctx context.Context, userID uuid.UUID, req types.EducationRequest) (*models.Profile, error) {
	from, to, err := parseRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profileID, err := profileIDFor(tx, userID)
		if err != nil {
			return err
		}
		seq, err := nextSeq(tx, &models.Education{}, profileID)
		if err != nil {
			return err
		}
		entry := models.Education{
			ProfileID:    profileID,
			Seq:          seq,
			School:       req.School,
			Degree:       req.Degree,
			FieldOfStudy: req.FieldOfStudy,
			From:         from,
			To:           to,
			Current:      req.Current,
			Description:  req.Description,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to add education: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.load(ctx, userID)
}

// RemoveEducation deletes the education entry with entryID, if the user owns one
func (s *ProfileService) RemoveEducation(ctx context.Context, userID uuid.UUID, entryID string) (*models.Profile, error) {
	if err := s.removeEntry(ctx, userID, &models.Education{}, entryID); err != nil {
		return nil, err
	}
	return s.load(ctx, userID)
}

// removeEntry is a no-op for ids that are malformed or belong to nobody's entry in this profile
func (s *ProfileService) removeEntry(ctx context.Context, userID uuid.UUID, model interface{}, entryID string) error {
	db := s.db.WithContext(ctx)

	profileID, err := profileIDFor(db, userID)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(entryID)
	if err != nil {
		return nil
	}
	if err := db.Where("id = ? AND profile_id = ?", id, profileID).Delete(model).Error; err != nil {
		return fmt.Errorf("failed to remove entry: %w", err)
	}
	return nil
}

func (s *ProfileService) withChildren(db *gorm.DB) *gorm.DB {
	newestFirst := func(tx *gorm.DB) *gorm.DB {
		return tx.Order("seq DESC")
	}
	return db.
		Preload("User").
		Preload("Experience", newestFirst).
		Preload("Education", newestFirst)
}

func (s *ProfileService) load(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := s.withChildren(s.db.WithContext(ctx)).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

func profileIDFor(db *gorm.DB, userID uuid.UUID) (uuid.UUID, error) {
	var profile models.Profile
	err := db.Select("id").Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, ErrProfileNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile.ID, nil
}

// nextSeq returns one past the highest sequence number used by the profile's entries
func nextSeq(tx *gorm.DB, model interface{}, profileID uuid.UUID) (int64, error) {
	var last int64
	err := tx.Model(model).
		Where("profile_id = ?", profileID).
		Select("COALESCE(MAX(seq), 0)").
		Scan(&last).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read sequence: %w", err)
	}
	return last + 1, nil
}

func parseRange(fromValue, toValue string) (from time.Time, to *time.Time, err error) {
	from, err = types.ParseDate(fromValue)
	if err != nil {
		return from, nil, fmt.Errorf("%w: from", ErrInvalidDate)
	}
	to, err = types.ParseOptionalDate(toValue)
	if err != nil {
		return from, nil, fmt.Errorf("%w: to", ErrInvalidDate)
	}
	return from, to, nil
}

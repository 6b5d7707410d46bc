package repositories

import (
	"errors"

	"goblog/models"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	GetOrCreate(userID uint) (*models.Profile, error)
	UpdateWithUser(profile *models.Profile, user *models.User) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetOrCreate returns the profile for a user, initializing an empty one
// on first access. Idempotent.
func (r *profileRepository) GetOrCreate(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile = models.Profile{UserID: userID}
	if err := r.db.Create(&profile).Error; err != nil {
		return nil, err
	}
	err = r.db.Preload("User").First(&profile, profile.ID).Error
	return &profile, err
}

// UpdateWithUser persists profile fields and the owning user's
// name/email together. Either both rows are written or neither is.
func (r *profileRepository) UpdateWithUser(profile *models.Profile, user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		return tx.Omit("User").Save(profile).Error
	})
}

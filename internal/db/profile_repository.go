package db

import (
	"errors"

	"github.com/alderwick/voicelog/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

// GetOrCreate returns the user's profile, creating an empty one on first
// access.
func (repo *ProfileRepository) GetOrCreate(userID uint) (models.Profile, error) {
	var profile models.Profile
	err := repo.database.Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{}, err
	}

	profile = models.Profile{UserID: userID}
	if err := repo.database.Create(&profile).Error; err != nil {
		// Lost a race with a concurrent first access; reload.
		var existing models.Profile
		if lookupErr := repo.database.Where("user_id = ?", userID).First(&existing).Error; lookupErr == nil {
			return existing, nil
		}
		return models.Profile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) UpdatePhoto(profileID uint, photoPath string) error {
	return repo.database.Model(&models.Profile{}).Where("id = ?", profileID).Update("profile_photo", photoPath).Error
}

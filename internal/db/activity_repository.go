package db

import (
	"github.com/alderwick/voicelog/internal/models"
	"gorm.io/gorm"
)

type ActivityRepository struct {
	database *gorm.DB
}

func NewActivityRepository(database *gorm.DB) *ActivityRepository {
	return &ActivityRepository{database: database}
}

func (repo *ActivityRepository) List() ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	if err := repo.database.Order("date DESC, id DESC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (repo *ActivityRepository) FindByID(activityID uint) (models.Activity, error) {
	var activity models.Activity
	if err := repo.database.First(&activity, activityID).Error; err != nil {
		return models.Activity{}, err
	}
	return activity, nil
}

func (repo *ActivityRepository) Create(activity *models.Activity) error {
	return repo.database.Create(activity).Error
}

func (repo *ActivityRepository) Save(activity *models.Activity) error {
	return repo.database.Save(activity).Error
}

func (repo *ActivityRepository) DeleteByID(activityID uint) (bool, error) {
	result := repo.database.Delete(&models.Activity{}, activityID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *ActivityRepository) UpdateTranscription(activityID uint, transcript string, summary string) error {
	return repo.database.Model(&models.Activity{}).Where("id = ?", activityID).Updates(map[string]any{
		"transcript": transcript,
		"summary":    summary,
	}).Error
}

package services

import (
	"errors"
	"time"

	"github.com/alderwick/voicelog/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrActivityNotFound = errors.New("activity not found")

type ActivityInput struct {
	Date       time.Time
	Transcript string
	Summary    string
	Reminders  string
	Spending   decimal.Decimal
}

type ActivityRepository interface {
	List() ([]models.Activity, error)
	FindByID(activityID uint) (models.Activity, error)
	Create(activity *models.Activity) error
	Save(activity *models.Activity) error
	DeleteByID(activityID uint) (bool, error)
	UpdateTranscription(activityID uint, transcript string, summary string) error
}

type ActivityService struct {
	activities ActivityRepository
}

func NewActivityService(activities ActivityRepository) *ActivityService {
	return &ActivityService{activities: activities}
}

func (service *ActivityService) ListActivities() ([]models.Activity, error) {
	return service.activities.List()
}

func (service *ActivityService) GetActivity(activityID uint) (models.Activity, error) {
	activity, err := service.activities.FindByID(activityID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Activity{}, ErrActivityNotFound
	}
	return activity, err
}

func (service *ActivityService) CreateActivity(input ActivityInput) (models.Activity, error) {
	activity := models.Activity{
		Date:       input.Date,
		Transcript: input.Transcript,
		Summary:    input.Summary,
		Reminders:  input.Reminders,
		Spending:   input.Spending,
	}
	if err := service.activities.Create(&activity); err != nil {
		return models.Activity{}, err
	}
	return activity, nil
}

func (service *ActivityService) UpdateActivity(activityID uint, input ActivityInput) (models.Activity, error) {
	activity, err := service.GetActivity(activityID)
	if err != nil {
		return models.Activity{}, err
	}

	activity.Date = input.Date
	activity.Transcript = input.Transcript
	activity.Summary = input.Summary
	activity.Reminders = input.Reminders
	activity.Spending = input.Spending
	if err := service.activities.Save(&activity); err != nil {
		return models.Activity{}, err
	}
	return activity, nil
}

func (service *ActivityService) DeleteActivity(activityID uint) error {
	deleted, err := service.activities.DeleteByID(activityID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrActivityNotFound
	}
	return nil
}

// AttachRecording records a freshly ingested audio asset as an activity row
// for its logical date.
func (service *ActivityService) AttachRecording(date time.Time, audioPath string) (models.Activity, error) {
	activity := models.Activity{
		Date:      date,
		AudioPath: audioPath,
		Spending:  decimal.Zero,
	}
	if err := service.activities.Create(&activity); err != nil {
		return models.Activity{}, err
	}
	return activity, nil
}

// SaveTranscription persists transcription results onto an existing activity.
func (service *ActivityService) SaveTranscription(activityID uint, transcript string, summary string) (models.Activity, error) {
	if err := service.activities.UpdateTranscription(activityID, transcript, summary); err != nil {
		return models.Activity{}, err
	}
	return service.GetActivity(activityID)
}

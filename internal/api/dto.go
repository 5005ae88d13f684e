package api

import (
	"time"

	"github.com/alderwick/voicelog/internal/models"
)

// Response shapes are spelled out field by field; nothing here relies on
// model reflection.

type activityResponse struct {
	ID         uint   `json:"id"`
	Date       string `json:"date"`
	AudioPath  string `json:"audio_path,omitempty"`
	Transcript string `json:"transcript,omitempty"`
	Summary    string `json:"summary,omitempty"`
	Reminders  string `json:"reminders,omitempty"`
	Spending   string `json:"spending"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func newActivityResponse(activity models.Activity, location *time.Location) activityResponse {
	return activityResponse{
		ID:         activity.ID,
		Date:       formatDate(activity.Date.In(location)),
		AudioPath:  activity.AudioPath,
		Transcript: activity.Transcript,
		Summary:    activity.Summary,
		Reminders:  activity.Reminders,
		Spending:   activity.Spending.String(),
		CreatedAt:  activity.CreatedAt.In(location).Format(time.RFC3339),
		UpdatedAt:  activity.UpdatedAt.In(location).Format(time.RFC3339),
	}
}

func newActivityListResponse(activities []models.Activity, location *time.Location) []activityResponse {
	responses := make([]activityResponse, 0, len(activities))
	for _, activity := range activities {
		responses = append(responses, newActivityResponse(activity, location))
	}
	return responses
}

type userResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func newUserResponse(user *models.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

type profileResponse struct {
	User         userResponse `json:"user"`
	ProfilePhoto string       `json:"profile_photo,omitempty"`
}

type activityInput struct {
	Date       string `json:"date"`
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
	Reminders  string `json:"reminders"`
	Spending   string `json:"spending"`
}

type signupInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshInput struct {
	Refresh string `json:"refresh"`
}

type deleteAudioInput struct {
	FileName string `json:"file_name"`
	Date     string `json:"date"`
}

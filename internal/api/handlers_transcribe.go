package api

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/alderwick/voicelog/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const transcribeTimeout = 60 * time.Second

// TranscribeActivity runs speech-to-text over an activity's stored recording
// and saves both the transcript and a generated summary.
func (handler *Handler) TranscribeActivity(c *fiber.Ctx) error {
	activityID, err := parseActivityID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid activity id")
	}

	activity, err := handler.activityService.GetActivity(activityID)
	if err != nil {
		if errors.Is(err, services.ErrActivityNotFound) {
			return apiError(c, fiber.StatusNotFound, "activity not found")
		}
		handler.logger.Error("activity load failed", zap.Uint("activity_id", activityID), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to load activity")
	}
	if activity.AudioPath == "" {
		return apiError(c, fiber.StatusNotFound, "activity has no recording")
	}

	audioPath := filepath.Join(handler.mediaRoot, filepath.FromSlash(activity.AudioPath))
	if _, err := os.Stat(audioPath); err != nil {
		return apiError(c, fiber.StatusNotFound, "recording file missing")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), transcribeTimeout)
	defer cancel()

	transcript, err := handler.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		if errors.Is(err, services.ErrTranscriptionUnavailable) {
			return apiError(c, fiber.StatusServiceUnavailable, "transcription service not configured")
		}
		handler.logger.Error("transcription failed", zap.Uint("activity_id", activityID), zap.Error(err))
		return apiError(c, fiber.StatusBadGateway, "transcription failed")
	}

	summary, err := handler.transcriber.Summarize(ctx, transcript)
	if err != nil {
		handler.logger.Error("summarization failed", zap.Uint("activity_id", activityID), zap.Error(err))
		return apiError(c, fiber.StatusBadGateway, "summarization failed")
	}

	updated, err := handler.activityService.SaveTranscription(activityID, transcript, summary)
	if err != nil {
		handler.logger.Error("transcription save failed", zap.Uint("activity_id", activityID), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to save transcription")
	}

	return c.JSON(newActivityResponse(updated, handler.location))
}

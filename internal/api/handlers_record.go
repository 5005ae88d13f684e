package api

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/alderwick/voicelog/internal/audio"
	"github.com/alderwick/voicelog/internal/storage"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const normalizeTimeout = time.Minute

var errNoAudioPayload = errors.New("no audio payload provided")

// RecordActivity ingests one audio note: validate the date, normalize the
// payload to WAV, write it under the date directory, and link an activity
// row to the stored file.
func (handler *Handler) RecordActivity(c *fiber.Ctx) error {
	date := strings.TrimSpace(c.FormValue("date"))
	if date == "" {
		return apiError(c, fiber.StatusBadRequest, "No date provided")
	}
	day, err := parseDateParam(date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	if _, err := handler.store.EnsureDirectory(date); err != nil {
		if errors.Is(err, storage.ErrPathTraversal) {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		handler.logger.Error("ensure audio directory failed", zap.String("date", date), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to prepare storage")
	}

	payload, err := extractAudioPayload(c)
	if err != nil {
		if errors.Is(err, errNoAudioPayload) {
			return apiError(c, fiber.StatusBadRequest, "no audio payload provided")
		}
		if errors.Is(err, audio.ErrMediaDecode) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusBadRequest, "failed to read audio payload")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), normalizeTimeout)
	defer cancel()
	wav, err := handler.normalizer.Normalize(ctx, payload)
	if err != nil {
		if errors.Is(err, audio.ErrMediaDecode) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		handler.logger.Error("audio normalization failed", zap.String("date", date), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to process audio")
	}

	fileName, err := handler.store.Write(date, wav)
	if err != nil {
		handler.logger.Error("recording write failed", zap.String("date", date), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to store audio")
	}

	activity, err := handler.activityService.AttachRecording(day, handler.store.RelativePath(date, fileName))
	if err != nil {
		handler.logger.Error("activity link failed",
			zap.String("date", date),
			zap.String("file", fileName),
			zap.Error(err),
		)
		return apiError(c, fiber.StatusInternalServerError, "failed to record activity")
	}

	handler.logger.Info("recording stored",
		zap.String("date", date),
		zap.String("file", fileName),
		zap.Uint("activity_id", activity.ID),
	)
	return c.JSON(fiber.Map{
		"message": "Audio stored successfully",
		"file":    fileName,
	})
}

// extractAudioPayload prefers the base64 audio_data field and falls back to
// the audio_file multipart part.
func extractAudioPayload(c *fiber.Ctx) ([]byte, error) {
	if encoded := strings.TrimSpace(c.FormValue("audio_data")); encoded != "" {
		return audio.ParseDataURI(encoded)
	}

	fileHeader, err := c.FormFile("audio_file")
	if err != nil {
		return nil, errNoAudioPayload
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(io.LimitReader(file, audio.MaxPayloadBytes+1))
}

package api

import (
	"errors"
	"strings"

	"github.com/alderwick/voicelog/internal/storage"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) ListAudioByDate(c *fiber.Ctx) error {
	date := c.Params("date")
	if _, err := parseDateParam(date, handler.location); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	files, err := handler.store.List(date)
	if err != nil {
		if errors.Is(err, storage.ErrPathTraversal) {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		handler.logger.Error("recording list failed", zap.String("date", date), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to list recordings")
	}

	if len(files) == 0 {
		return c.JSON(fiber.Map{
			"files":   files,
			"message": "No recordings found for this date",
		})
	}
	return c.JSON(fiber.Map{
		"files": files,
		"count": len(files),
	})
}

func (handler *Handler) DeleteAudio(c *fiber.Ctx) error {
	var input deleteAudioInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	input.FileName = strings.TrimSpace(input.FileName)
	input.Date = strings.TrimSpace(input.Date)
	if input.FileName == "" || input.Date == "" {
		return apiError(c, fiber.StatusBadRequest, "file_name and date are required")
	}

	if err := handler.store.Delete(input.Date, input.FileName); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return apiError(c, fiber.StatusNotFound, "File not found")
		case errors.Is(err, storage.ErrPathTraversal):
			return apiError(c, fiber.StatusBadRequest, "invalid file path")
		default:
			handler.logger.Error("recording delete failed",
				zap.String("date", input.Date),
				zap.String("file", input.FileName),
				zap.Error(err),
			)
			return apiError(c, fiber.StatusInternalServerError, "failed to delete recording")
		}
	}

	return c.JSON(fiber.Map{"message": "File deleted successfully"})
}

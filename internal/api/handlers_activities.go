package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/alderwick/voicelog/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (handler *Handler) ListActivities(c *fiber.Ctx) error {
	activities, err := handler.activityService.ListActivities()
	if err != nil {
		handler.logger.Error("activity list failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to list activities")
	}
	return c.JSON(newActivityListResponse(activities, handler.location))
}

func (handler *Handler) CreateActivity(c *fiber.Ctx) error {
	input, err := handler.parseActivityInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	activity, err := handler.activityService.CreateActivity(input)
	if err != nil {
		handler.logger.Error("activity create failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to create activity")
	}
	return c.Status(fiber.StatusCreated).JSON(newActivityResponse(activity, handler.location))
}

func (handler *Handler) GetActivity(c *fiber.Ctx) error {
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
	return c.JSON(newActivityResponse(activity, handler.location))
}

func (handler *Handler) UpdateActivity(c *fiber.Ctx) error {
	activityID, err := parseActivityID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid activity id")
	}
	input, err := handler.parseActivityInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	activity, err := handler.activityService.UpdateActivity(activityID, input)
	if err != nil {
		if errors.Is(err, services.ErrActivityNotFound) {
			return apiError(c, fiber.StatusNotFound, "activity not found")
		}
		handler.logger.Error("activity update failed", zap.Uint("activity_id", activityID), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to update activity")
	}
	return c.JSON(newActivityResponse(activity, handler.location))
}

func (handler *Handler) DeleteActivity(c *fiber.Ctx) error {
	activityID, err := parseActivityID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid activity id")
	}

	if err := handler.activityService.DeleteActivity(activityID); err != nil {
		if errors.Is(err, services.ErrActivityNotFound) {
			return apiError(c, fiber.StatusNotFound, "activity not found")
		}
		handler.logger.Error("activity delete failed", zap.Uint("activity_id", activityID), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to delete activity")
	}
	return c.JSON(fiber.Map{"message": "Activity deleted successfully"})
}

func (handler *Handler) parseActivityInput(c *fiber.Ctx) (services.ActivityInput, error) {
	var raw activityInput
	if err := c.BodyParser(&raw); err != nil {
		return services.ActivityInput{}, errors.New("invalid payload")
	}

	day, err := parseDateParam(strings.TrimSpace(raw.Date), handler.location)
	if err != nil {
		return services.ActivityInput{}, errors.New("invalid date, expected YYYY-MM-DD")
	}

	spending := decimal.Zero
	if trimmed := strings.TrimSpace(raw.Spending); trimmed != "" {
		spending, err = decimal.NewFromString(trimmed)
		if err != nil {
			return services.ActivityInput{}, errors.New("invalid spending amount")
		}
		if spending.IsNegative() {
			return services.ActivityInput{}, errors.New("spending must not be negative")
		}
	}

	return services.ActivityInput{
		Date:       day,
		Transcript: raw.Transcript,
		Summary:    raw.Summary,
		Reminders:  raw.Reminders,
		Spending:   spending,
	}, nil
}

func parseActivityID(c *fiber.Ctx) (uint, error) {
	value, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || value == 0 {
		return 0, errors.New("invalid activity id")
	}
	return uint(value), nil
}

package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

var errInvalidDate = errors.New("invalid date")

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// parseDateParam accepts only strict YYYY-MM-DD dates.
func parseDateParam(value string, location *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", value, location)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return day, nil
}

func formatDate(day time.Time) string {
	return day.Format("2006-01-02")
}

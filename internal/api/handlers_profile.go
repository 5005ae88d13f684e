package api

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const profilePhotoSubdir = "profile_pics"

var allowedPhotoExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// GetProfile returns the caller's profile, creating an empty one on first
// access.
func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := handler.repositories.Profiles.GetOrCreate(user.ID)
	if err != nil {
		handler.logger.Error("profile load failed", zap.Uint("user_id", user.ID), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	return c.JSON(profileResponse{
		User:         newUserResponse(user),
		ProfilePhoto: profile.ProfilePhoto,
	})
}

// UpdateProfilePhoto replaces the caller's profile photo with an uploaded
// image.
func (handler *Handler) UpdateProfilePhoto(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	fileHeader, err := c.FormFile("profile_photo")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "profile_photo file is required")
	}
	extension := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, allowed := allowedPhotoExtensions[extension]; !allowed {
		return apiError(c, fiber.StatusBadRequest, "unsupported image format")
	}

	profile, err := handler.repositories.Profiles.GetOrCreate(user.ID)
	if err != nil {
		handler.logger.Error("profile load failed", zap.Uint("user_id", user.ID), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	photoDir := filepath.Join(handler.mediaRoot, profilePhotoSubdir)
	if err := os.MkdirAll(photoDir, 0o755); err != nil {
		handler.logger.Error("photo directory create failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to store photo")
	}

	photoName := uuid.New().String() + extension
	if err := c.SaveFile(fileHeader, filepath.Join(photoDir, photoName)); err != nil {
		handler.logger.Error("photo write failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to store photo")
	}

	previousPhoto := profile.ProfilePhoto
	photoPath := profilePhotoSubdir + "/" + photoName
	if err := handler.repositories.Profiles.UpdatePhoto(profile.ID, photoPath); err != nil {
		handler.logger.Error("photo update failed", zap.Uint("user_id", user.ID), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}

	if previousPhoto != "" {
		// Best effort; a stale file is not worth failing the request over.
		_ = os.Remove(filepath.Join(handler.mediaRoot, filepath.FromSlash(previousPhoto)))
	}

	return c.JSON(profileResponse{
		User:         newUserResponse(user),
		ProfilePhoto: photoPath,
	})
}

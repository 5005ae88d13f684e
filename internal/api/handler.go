package api

import (
	"context"
	"time"

	"github.com/alderwick/voicelog/internal/audio"
	"github.com/alderwick/voicelog/internal/db"
	"github.com/alderwick/voicelog/internal/services"
	"github.com/alderwick/voicelog/internal/storage"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Transcriber is the external speech/summary collaborator; handler tests
// swap in a fake.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
	Summarize(ctx context.Context, text string) (string, error)
}

type Handler struct {
	db        *gorm.DB
	logger    *zap.Logger
	secretKey []byte
	location  *time.Location
	mediaRoot string

	store           *storage.DateStore
	normalizer      audio.Normalizer
	transcriber     Transcriber
	repositories    *db.Repositories
	authService     *services.AuthService
	activityService *services.ActivityService
}

func NewHandler(
	database *gorm.DB,
	secretKey string,
	mediaRoot string,
	location *time.Location,
	logger *zap.Logger,
	normalizer audio.Normalizer,
	transcriber Transcriber,
) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		db:              database,
		logger:          logger,
		secretKey:       []byte(secretKey),
		location:        location,
		mediaRoot:       mediaRoot,
		store:           storage.NewDateStore(mediaRoot, location),
		normalizer:      normalizer,
		transcriber:     transcriber,
		repositories:    repositories,
		authService:     services.NewAuthService(repositories.Users),
		activityService: services.NewActivityService(repositories.Activities),
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

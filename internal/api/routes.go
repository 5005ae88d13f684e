package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Post("/signup", handler.Signup)
	api.Post("/token", handler.ObtainToken)
	api.Post("/token/refresh", handler.RefreshToken)

	api.Post("/record", handler.AuthRequired, handler.RecordActivity)

	audio := api.Group("/audio", handler.AuthRequired)
	audio.Get("/date/:date", handler.ListAudioByDate)
	audio.Post("/delete", handler.DeleteAudio)

	activities := api.Group("/activities", handler.AuthRequired)
	activities.Get("", handler.ListActivities)
	activities.Post("", handler.CreateActivity)
	activities.Get("/:id", handler.GetActivity)
	activities.Put("/:id", handler.UpdateActivity)
	activities.Delete("/:id", handler.DeleteActivity)
	activities.Post("/:id/transcribe", handler.TranscribeActivity)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Post("", handler.UpdateProfilePhoto)
}

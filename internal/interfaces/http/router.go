package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Reminders  RemindersLister
	Dashboard  DashboardSummarizer
	Settings   SettingsService
	Trigger    TriggerRunner
	Presence   func() map[string]bool
	JWTSecret  string
	JWTIssuer  string
	CronSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Disparador (cron externo, secreto compartido)
	notificationHandler := NewNotificationHandler(deps.Trigger, deps.Presence)
	api.Get("/notifications/trigger", CronSecretMiddleware(deps.CronSecret), notificationHandler.Trigger)

	// Rutas protegidas (sesión del proveedor de auth)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	reminderHandler := NewReminderHandler(deps.Reminders)
	protected.Get("/reminders", reminderHandler.List)

	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	settingsHandler := NewSettingsHandler(deps.Settings)
	settings := protected.Group("/settings/notifications")
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)
}

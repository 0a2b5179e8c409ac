package routes

import (
	"time"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Isaiahshap/pulse/internal/catalog"
	"github.com/Isaiahshap/pulse/internal/config"
	"github.com/Isaiahshap/pulse/internal/handlers"
	"github.com/Isaiahshap/pulse/internal/middleware"
	"github.com/Isaiahshap/pulse/internal/services"
	inboxws "github.com/Isaiahshap/pulse/internal/websocket"
)

// Dependencies are built in main. Hub is nil when the staff surface is off.
type Dependencies struct {
	Catalog      *catalog.Catalog
	ContactStore services.ContactStore
	Hub          *inboxws.Hub
	Logger       *zap.Logger
}

func RegisterRoutes(app *fiber.App, cfg *config.Config, deps Dependencies) error {
	site := deps.Catalog
	if site == nil {
		site = catalog.Default()
	}

	var publisher services.ContactPublisher
	if deps.Hub != nil {
		publisher = deps.Hub
	}

	pricingService := services.NewPricingService(site)
	scheduleService := services.NewScheduleService(site)
	contactService := services.NewContactService(deps.ContactStore, publisher, deps.Logger)

	catalogHandler := handlers.NewCatalogHandler(site)
	pricingHandler := handlers.NewPricingHandler(pricingService, site)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	contactHandler := handlers.NewContactHandler(contactService)
	pagesHandler := handlers.NewPagesHandler(site, pricingService, scheduleService, contactService)

	contactLimiter := middleware.ContactRateLimiter(cfg.ContactRateLimit, time.Minute)

	app.Get("/", pagesHandler.Home)
	app.Get("/classes", pagesHandler.Classes)
	app.Get("/trainers", pagesHandler.Trainers)
	app.Get("/membership", pagesHandler.Membership)
	app.Get("/schedule", pagesHandler.Schedule)
	app.Get("/contact", pagesHandler.Contact)
	app.Post("/contact", contactLimiter, pagesHandler.SubmitContact)
	app.Get("/privacy", pagesHandler.Privacy)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	v1.Get("/site", catalogHandler.Site)
	v1.Get("/faq", catalogHandler.FAQ)

	classes := v1.Group("/classes")
	classes.Get("", catalogHandler.ListClasses)
	classes.Get("/:slug", catalogHandler.GetClass)

	categories := v1.Group("/categories")
	categories.Get("", catalogHandler.ListCategories)
	categories.Get("/featured", catalogHandler.FeaturedCategories)

	trainers := v1.Group("/trainers")
	trainers.Get("", catalogHandler.ListTrainers)
	trainers.Get("/:id", catalogHandler.GetTrainer)

	plans := v1.Group("/plans")
	plans.Get("", pricingHandler.ListPlans)
	plans.Get("/:name/quote", pricingHandler.QuotePlan)
	v1.Get("/pricing/yearly-estimate", pricingHandler.YearlyEstimate)

	schedule := v1.Group("/schedule")
	schedule.Get("", scheduleHandler.Week)
	schedule.Get("/export.xlsx", scheduleHandler.Export)
	schedule.Get("/:day", scheduleHandler.Day)
	schedule.Get("/:day/:slot", scheduleHandler.Slot)

	v1.Post("/contact", contactLimiter, contactHandler.Submit)

	if cfg.StaffEnabled() {
		authHandler := handlers.NewAuthHandler(cfg.StaffEmail, cfg.StaffPasswordHash, cfg.JWTSecret)

		auth := api.Group("/auth")
		auth.Post("/login", authHandler.Login)
		auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

		staff := v1.Group("/staff")
		messages := staff.Group("/messages", middleware.AuthRequired(cfg.JWTSecret), middleware.RequireRole(middleware.RoleStaff))
		messages.Get("", contactHandler.ListMessages)
		messages.Get("/:id", contactHandler.GetMessage)

		if deps.Hub != nil {
			inboxHandler := handlers.NewInboxHandler(deps.Hub, cfg.JWTSecret)
			staff.Use("/inbox", inboxHandler.WebSocketAuth)
			staff.Get("/inbox", websocket.New(inboxHandler.HandleWebSocket))
		}
	}

	return registerDocsRoutes(app, cfg)
}

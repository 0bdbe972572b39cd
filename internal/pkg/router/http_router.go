package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"

	"github.com/fkuebler/paymirror/app/controllers"
	"github.com/fkuebler/paymirror/app/repository"
	"github.com/fkuebler/paymirror/internal/pkg/env"
	"github.com/fkuebler/paymirror/internal/pkg/sync"
)

type HttpRouter struct {
	repos  *repository.Repositories
	syncer *sync.Syncer
}

func NewHttpRouter(repos *repository.Repositories, syncer *sync.Syncer) *HttpRouter {
	return &HttpRouter{repos: repos, syncer: syncer}
}

func (h *HttpRouter) InstallRouter(app *fiber.App) {
	h.registerWebhookRoutes(app)
	h.registerAdminRoutes(app)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

func (h *HttpRouter) registerWebhookRoutes(app *fiber.App) {
	webhooks := controllers.NewWebhookController(h.syncer)
	app.Post("/webhook/stripe", webhooks.HandleEvent)
}

func (h *HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("ADMIN_USER", "admin"): env.GetEnv("ADMIN_PASSWORD", "admin"),
		},
	}))

	dashboard := controllers.NewAdminController(h.repos)
	customers := controllers.NewAdminCustomersController(h.repos)
	billing := controllers.NewAdminBillingController(h.repos)
	catalog := controllers.NewAdminCatalogController(h.repos)
	ledger := controllers.NewAdminLedgerController(h.repos)

	adminGroup.Get("/", dashboard.HandleDashboard)

	adminGroup.Get("/customers", customers.HandleList)
	adminGroup.Get("/customers/:id", customers.HandleDetail)

	adminGroup.Get("/orders", billing.HandleOrders)
	adminGroup.Get("/orders/:id", billing.HandleOrderDetail)
	adminGroup.Get("/invoices", billing.HandleInvoices)
	adminGroup.Get("/invoices/:id", billing.HandleInvoiceDetail)
	adminGroup.Get("/charges", billing.HandleCharges)
	adminGroup.Get("/subscriptions", billing.HandleSubscriptions)

	adminGroup.Get("/plans", catalog.HandlePlans)
	adminGroup.Get("/coupons", catalog.HandleCoupons)
	adminGroup.Get("/products", catalog.HandleProducts)
	adminGroup.Get("/skus", catalog.HandleSkus)

	adminGroup.Get("/transfers", ledger.HandleTransfers)
	adminGroup.Get("/accounts", ledger.HandleAccounts)
	adminGroup.Get("/events", ledger.HandleEvents)
}

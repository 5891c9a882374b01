package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billing-api/internal/application/analytics"
	"github.com/jhoicas/billing-api/internal/application/auth"
	"github.com/jhoicas/billing-api/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CustomerUC *billing.CustomerUseCase
	InvoiceUC  *billing.InvoiceUseCase
	InvoicePDF *billing.PDFUseCase
	StatsUC    *analytics.StatsUseCase
	Resolver   auth.IdentityResolver
}

// Router registra las rutas de la API.
//
// Los listados y los stats son públicos (lecturas globales del dashboard);
// crear, editar y borrar clientes exigen Bearer Token. PATCH /invoices queda
// sin auth: el flujo del dashboard ya pasó por la selección del cliente.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	requireAuth := AuthMiddleware(deps.Resolver)

	// Customers
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := app.Group("/customers")
	customers.Get("/", customerHandler.List)
	customers.Post("/", requireAuth, customerHandler.Create)
	customers.Patch("/", requireAuth, customerHandler.Update)
	customers.Delete("/", requireAuth, customerHandler.Delete)

	// Invoices
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF)
	invoices := app.Group("/invoices")
	invoices.Get("/", invoiceHandler.List)
	invoices.Patch("/", invoiceHandler.Update)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	// Stats (público, agregados globales)
	statsHandler := NewStatsHandler(deps.StatsUC)
	app.Get("/stats", statsHandler.Get)
}

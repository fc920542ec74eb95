package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-ti/internal/application/analytics"
	"github.com/tu-usuario/gestion-ti/internal/application/auth"
	"github.com/tu-usuario/gestion-ti/internal/application/billing"
	"github.com/tu-usuario/gestion-ti/internal/application/usecase"
	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC    *usecase.ClienteUseCase
	ServicioUC   *usecase.ServicioUseCase
	PagoUC       *usecase.PagoUseCase
	GastoUC      *usecase.GastoUseCase
	CotizacionUC *billing.CotizacionUseCase
	ConvertirUC  *billing.ConvertirUseCase
	FacturaUC    *billing.FacturaUseCase
	EnviarUC     *billing.EnviarUseCase
	PDFUC        *billing.PDFUseCase
	FlujoCajaUC  *analytics.FlujoCajaUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	soloAdmin := RequireRole(entity.RolAdmin)

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", soloAdmin, clienteHandler.Delete)

	// Catálogo de servicios (protegido)
	servicios := protected.Group("/servicios")
	servicioHandler := NewServicioHandler(deps.ServicioUC)
	servicios.Post("/", servicioHandler.Create)
	servicios.Get("/", servicioHandler.List)
	servicios.Get("/:id", servicioHandler.GetByID)
	servicios.Put("/:id", servicioHandler.Update)
	servicios.Delete("/:id", soloAdmin, servicioHandler.Delete)

	// Cotizaciones (protegido)
	cotizaciones := protected.Group("/cotizaciones")
	cotizacionHandler := NewCotizacionHandler(deps.CotizacionUC, deps.ConvertirUC, deps.EnviarUC, deps.PDFUC)
	cotizaciones.Post("/", cotizacionHandler.Create)
	cotizaciones.Get("/", cotizacionHandler.List)
	cotizaciones.Get("/:id", cotizacionHandler.GetByID)
	cotizaciones.Put("/:id", cotizacionHandler.Update)
	cotizaciones.Delete("/:id", cotizacionHandler.Delete)
	cotizaciones.Post("/:id/convertir", cotizacionHandler.Convertir)
	cotizaciones.Post("/:id/enviar", cotizacionHandler.Enviar)
	cotizaciones.Get("/:id/pdf", cotizacionHandler.PDF)

	// Facturas (protegido)
	facturas := protected.Group("/facturas")
	facturaHandler := NewFacturaHandler(deps.FacturaUC, deps.EnviarUC, deps.PDFUC)
	facturas.Get("/", facturaHandler.List)
	facturas.Post("/revisar-vencidas", facturaHandler.RevisarVencidas)
	facturas.Get("/:id", facturaHandler.GetByID)
	facturas.Patch("/:id", facturaHandler.Patch)
	facturas.Patch("/:id/estado", facturaHandler.CambiarEstado)
	facturas.Post("/:id/enviar", facturaHandler.Enviar)
	facturas.Get("/:id/pdf", facturaHandler.PDF)

	// Pagos (protegido)
	pagos := protected.Group("/pagos")
	pagoHandler := NewPagoHandler(deps.PagoUC)
	pagos.Post("/", pagoHandler.Create)
	pagos.Get("/", pagoHandler.List)
	pagos.Get("/:id", pagoHandler.GetByID)
	pagos.Delete("/:id", soloAdmin, pagoHandler.Delete)

	// Gastos (protegido)
	gastos := protected.Group("/gastos")
	gastoHandler := NewGastoHandler(deps.GastoUC)
	gastos.Post("/", gastoHandler.Create)
	gastos.Get("/", gastoHandler.List)
	gastos.Get("/:id", gastoHandler.GetByID)
	gastos.Delete("/:id", soloAdmin, gastoHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.FlujoCajaUC)
	dashboard.Get("/flujo-caja", dashboardHandler.FlujoCaja)
}

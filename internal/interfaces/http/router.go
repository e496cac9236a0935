package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sastre-api/internal/application/admin"
	"github.com/tu-usuario/sastre-api/internal/application/auth"
	"github.com/tu-usuario/sastre-api/internal/application/order"
	"github.com/tu-usuario/sastre-api/internal/application/ports"
	"github.com/tu-usuario/sastre-api/internal/application/tailor"
	"github.com/tu-usuario/sastre-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC   *auth.AuthUseCase
	RoleUC   *admin.RoleUseCase
	VerifyUC *tailor.VerificationUseCase
	OrderUC  *order.UseCase
	Media    ports.MediaStorage
	JWT      config.JWTConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth. Register lleva auth opcional: un admin autenticado da de alta
	// sastres preaprobados.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWT)
	authGroup.Post("/register", OptionalAuthMiddleware(deps.JWT.Secret, deps.AuthUC), authHandler.Register)
	authGroup.Post("/login/:roleId", authHandler.Login)
	authGroup.Post("/refresh-token", authHandler.Refresh)

	authed := AuthMiddleware(deps.JWT.Secret, deps.AuthUC)
	authGroup.Post("/logout", authed, authHandler.Logout)
	authGroup.Get("/current-user", authed, authHandler.CurrentUser)
	authGroup.Post("/change-password", authed, authHandler.ChangePassword)

	// Admin: registro de roles, verificación de sastres, envíos.
	adminGroup := api.Group("/admin", authed, AdminOnly())
	adminHandler := NewAdminHandler(deps.RoleUC, deps.VerifyUC, deps.OrderUC)
	adminGroup.Post("/roles", adminHandler.CreateRole)
	adminGroup.Get("/roles", adminHandler.ListRoles)
	adminGroup.Post("/tailors/:userId/verify", adminHandler.VerifyTailor)
	adminGroup.Put("/shipments/:orderId/status", adminHandler.UpdateShipmentStatus)
	adminGroup.Get("/shipments/:orderId/tracking", adminHandler.ShipmentTracking)

	// Tailor: sus pedidos.
	tailorGroup := api.Group("/tailor", authed, TailorOnly())
	tailorHandler := NewTailorHandler(deps.OrderUC, deps.Media)
	tailorGroup.Get("/orders", tailorHandler.ListOrders)
	tailorGroup.Post("/orders/batch", tailorHandler.BatchOrders)
	tailorGroup.Get("/orders/:orderId", tailorHandler.GetOrder)
	tailorGroup.Put("/orders/:orderId/status", tailorHandler.UpdateStatus)
	tailorGroup.Post("/orders/:orderId/rush", tailorHandler.MarkRush)
	tailorGroup.Post("/orders/:orderId/qc-photos", tailorHandler.UploadQCPhotos)
	tailorGroup.Post("/orders/:orderId/progress-photos", tailorHandler.UploadProgressPhotos)
	tailorGroup.Put("/orders/:orderId/partial-deliveries", tailorHandler.SetPartialDeliveries)
	tailorGroup.Get("/orders/:orderId/tracking", tailorHandler.Tracking)

	// Customer: crear pedidos, historial, tracking, devoluciones.
	customerGroup := api.Group("/customer", authed, CustomerOnly())
	customerHandler := NewCustomerHandler(deps.OrderUC)
	customerGroup.Post("/orders", customerHandler.PlaceOrder)
	customerGroup.Get("/orders", customerHandler.ListOrders)
	customerGroup.Get("/orders/:orderId/tracking", customerHandler.Tracking)
	customerGroup.Post("/orders/:orderId/return", customerHandler.InitiateReturn)

	// Logística: agenda de entrega propuesta por el cliente.
	logisticsGroup := api.Group("/logistics", authed, CustomerOnly())
	logisticsHandler := NewLogisticsHandler(deps.OrderUC)
	logisticsGroup.Post("/orders/:orderId/schedule", logisticsHandler.ScheduleDelivery)
}

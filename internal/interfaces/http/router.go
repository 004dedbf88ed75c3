package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reposicion-api/internal/application/auth"
	"github.com/jhoicas/reposicion-api/internal/application/replenishment"
	"github.com/jhoicas/reposicion-api/internal/application/usecase"
	"github.com/jhoicas/reposicion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	SupplierUC    *usecase.SupplierUseCase
	ProductUC     *usecase.ProductUseCase
	LinkUC        *usecase.LinkUseCase
	Replenishment *replenishment.Service
	PurchaseOrder *replenishment.PurchaseOrderUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleSeller, entity.RoleUser)
	adminOnly := RequireRole(entity.RoleAdmin)
	buyers := RequireRole(entity.RoleAdmin, entity.RoleSeller)

	protected.Get("/auth/me", anyRole, authHandler.Me)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Replenishment)
	suppliers.Get("/", anyRole, supplierHandler.List)
	suppliers.Get("/:id", anyRole, supplierHandler.GetByID)
	suppliers.Get("/:id/products", anyRole, supplierHandler.Products)
	suppliers.Get("/:id/replenishment", buyers, supplierHandler.Replenishment)
	suppliers.Post("/", adminOnly, supplierHandler.Create)
	suppliers.Put("/:id", adminOnly, supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Products (solo lectura)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", anyRole, productHandler.List)
	products.Get("/:id", anyRole, productHandler.GetByID)
	products.Get("/:id/suppliers", anyRole, productHandler.Suppliers)

	// Product-supplier links
	links := protected.Group("/links")
	linkHandler := NewLinkHandler(deps.LinkUC)
	links.Post("/", adminOnly, linkHandler.Create)
	links.Put("/:id", adminOnly, linkHandler.Update)
	links.Delete("/:id", adminOnly, linkHandler.Delete)

	// Replenishment
	rep := protected.Group("/replenishment")
	repHandler := NewReplenishmentHandler(deps.Replenishment, deps.PurchaseOrder)
	rep.Post("/message", buyers, repHandler.Message)
	rep.Post("/purchase-order", buyers, repHandler.PurchaseOrder)
}

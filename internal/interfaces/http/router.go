package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rocketshoes-cart/internal/application/cart"
	"github.com/jhoicas/rocketshoes-cart/internal/application/catalog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CartStore *cart.Store
	CatalogUC *catalog.UseCase // nil si el catálogo es remoto
	Notices   NoticeFeed       // nil = /api/cart/notices responde lista vacía
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Catálogo local (mismo formato que el servidor de la tienda: /stock/:id, /products/:id)
	if deps.CatalogUC != nil {
		catalogHandler := NewCatalogHandler(deps.CatalogUC)
		app.Get("/stock/:id", catalogHandler.GetStock)
		app.Get("/products", catalogHandler.ListProducts)
		app.Get("/products/:id", catalogHandler.GetProduct)
	}

	api := app.Group("/api")

	// Carrito
	cartGroup := api.Group("/cart")
	cartHandler := NewCartHandler(deps.CartStore, deps.Notices)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Get("/notices", cartHandler.Notices)
	cartGroup.Post("/items/:id", cartHandler.AddProduct)
	cartGroup.Delete("/items/:id", cartHandler.RemoveProduct)
	cartGroup.Put("/items/:id", cartHandler.UpdateAmount)
}

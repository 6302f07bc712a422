package routes

import (
	"github.com/shashiranjanraj/tokoku/app/controllers"
	appgraphql "github.com/shashiranjanraj/tokoku/app/graphql"
	"github.com/shashiranjanraj/tokoku/app/repositories"
	"github.com/shashiranjanraj/tokoku/app/services"
	"github.com/shashiranjanraj/tokoku/config"
	"github.com/shashiranjanraj/tokoku/pkg/database"
	"github.com/shashiranjanraj/tokoku/pkg/logger"
	"github.com/shashiranjanraj/tokoku/pkg/metrics"
	"github.com/shashiranjanraj/tokoku/pkg/middleware"
	"github.com/shashiranjanraj/tokoku/pkg/router"
	"github.com/shashiranjanraj/tokoku/pkg/ws"
)

// RegisterAPI wires every endpoint of the shop. The public surface is
// the catalog, the session cart and checkout; everything under
// /api/admin requires a valid token.
func RegisterAPI(r *router.Router, feed *ws.Feed) {
	products := repositories.NewProductRepository(database.DB)
	orders := repositories.NewOrderRepository(database.DB)
	users := repositories.NewUserRepository(database.DB)

	catalogSvc := services.NewCatalogService(products)
	checkoutSvc := services.NewCheckoutService(products, orders, feed, config.ShopPhone())
	reportSvc := services.NewReportService(orders)
	authSvc := services.NewAuthService(users)
	userSvc := services.NewUserService(users)

	catalog := controllers.NewCatalogController(catalogSvc)
	cart := controllers.NewCartController(catalogSvc)
	checkout := controllers.NewCheckoutController(checkoutSvc)
	report := controllers.NewReportController(reportSvc)
	auth := controllers.NewAuthController(authSvc)
	user := controllers.NewUserController(userSvc)

	api := r.Group("/api")

	// Public storefront.
	api.Get("/products", "catalog.list", catalog.List)
	api.Get("/products/{id}", "catalog.show", catalog.Show)
	api.Get("/cart", "cart.view", cart.View)
	api.Post("/cart", "cart.add", cart.Add)
	api.Put("/cart", "cart.update", cart.Update)
	api.Post("/checkout", "checkout", checkout.Checkout)
	api.Post("/login", "auth.login", auth.Login)

	// Admin surface, token required.
	admin := api.Group("/admin", middleware.Auth)
	admin.Post("/products", "admin.products.create", catalog.Create)
	admin.Put("/products/{id}", "admin.products.update", catalog.Update)
	admin.Delete("/products/{id}", "admin.products.delete", catalog.Delete)
	admin.Get("/products/export", "admin.products.export", catalog.Export)
	admin.Get("/orders", "admin.orders.list", report.List)
	admin.Get("/orders/{id}", "admin.orders.show", report.Show)

	adminOnly := admin.Group("/users", middleware.RequireRole("admin"))
	adminOnly.Get("", "admin.users.list", user.List)
	adminOnly.Post("", "admin.users.create", user.Create)
	adminOnly.Put("/{id}", "admin.users.update", user.Update)
	adminOnly.Delete("/{id}", "admin.users.delete", user.Delete)

	// Live order feed for the admin dashboard.
	r.Get("/ws/orders", "ws.orders", feed.Serve)

	// Read-only GraphQL over catalog and orders.
	schema, err := appgraphql.NewSchema(catalogSvc, reportSvc)
	if err != nil {
		logger.Error("routes: build graphql schema", "error", err)
	} else {
		api.Post("/graphql", "graphql", appgraphql.Handler(schema))
	}

	r.Get("/metrics", "metrics", metrics.Handler())
}

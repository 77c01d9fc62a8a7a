package router

import (
	"wiseBuy/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationsHandler) {
	recommendations := api.Group("/recommendations")

	recommendations.POST("", handler.Recommend)
}

func SetupPurchaseRoutes(api *echo.Group, handler *rest.PurchasesHandler) {
	purchases := api.Group("/purchases")

	purchases.POST("", handler.LogPurchase)
}

func SetupShoppingListRoutes(api *echo.Group, handler *rest.ShoppingListsHandler) {
	lists := api.Group("/shopping-lists")

	lists.POST("", handler.LogShoppingList)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductsHandler) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:productId", handler.GetProduct)
	products.POST("", handler.CreateProduct)
}

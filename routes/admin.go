package routes

import (
	"github.com/gin-gonic/gin"
	adminControllers "github.com/kaushikmavani/ecom/controllers/admin"
	orderControllers "github.com/kaushikmavani/ecom/controllers/order"
	productControllers "github.com/kaushikmavani/ecom/controllers/product"
	"github.com/kaushikmavani/ecom/middleware"
	"gorm.io/gorm"
)

func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		orders := admin.Group("/orders")
		{
			orders.GET("", adminControllers.GetOrders(db))
			orders.GET("/export-excel", adminControllers.ExportOrdersToExcel(db))
			orders.GET("/ws", orderControllers.OrderFeedHandler)
			orders.GET("/:id", adminControllers.GetOrder(db))
			orders.PATCH("/:id/status", adminControllers.UpdateOrderStatus(db))
		}

		payments := admin.Group("/payments")
		{
			payments.GET("", adminControllers.GetPayments(db))
			payments.GET("/:id", adminControllers.GetPayment(db))
		}

		reviews := admin.Group("/reviews")
		{
			reviews.GET("", adminControllers.GetReviews(db))
			reviews.GET("/:id", adminControllers.GetReview(db))
		}

		admin.GET("/carts/:user_id", adminControllers.GetUserCart(db))

		products := admin.Group("/products")
		{
			products.POST("", productControllers.CreateProduct(db))
			products.PUT("/:id", productControllers.UpdateProduct(db))
			products.DELETE("/:id", productControllers.DeleteProduct(db))
		}
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/kaushikmavani/ecom/controllers/order"
	"github.com/kaushikmavani/ecom/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.PUT("/review/add", orderControllers.AddReview(db))
		orders.GET("/:id", orderControllers.GetOrder(db))
		orders.GET("", orderControllers.GetOrders(db))
	}
}

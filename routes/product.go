package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/kaushikmavani/ecom/controllers/product"
	"github.com/kaushikmavani/ecom/middleware"
	"gorm.io/gorm"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	products.Use(middleware.ValidateToken)
	{
		products.GET("", productControllers.GetProducts(db))
		products.GET("/:id", productControllers.GetProduct(db))
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/kaushikmavani/ecom/controllers/cart"
	"github.com/kaushikmavani/ecom/middleware"
	"gorm.io/gorm"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.PUT("/add-to-cart", cartControllers.AddToCart(db))
		cart.PATCH("/remove-from-cart", cartControllers.RemoveFromCart(db))
		cart.PATCH("/add-qty", cartControllers.AddQty(db))
		cart.PATCH("/remove-qty", cartControllers.RemoveQty(db))
		cart.DELETE("/clear", cartControllers.ClearCart(db))
		cart.GET("", cartControllers.GetCart(db))
	}
}

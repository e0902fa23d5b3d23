package routes

import (
	"github.com/gin-gonic/gin"
	paymentControllers "github.com/kaushikmavani/ecom/controllers/payment"
	"github.com/kaushikmavani/ecom/middleware"
	"gorm.io/gorm"
)

func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB) {
	payments := r.Group("/payments")
	payments.Use(middleware.ValidateToken)
	{
		payments.PUT("/make-payment", paymentControllers.MakePayment(db))
	}
}

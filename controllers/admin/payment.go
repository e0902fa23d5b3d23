package adminControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	orderControllers "github.com/kaushikmavani/ecom/controllers/order"
	"github.com/kaushikmavani/ecom/models"
	"gorm.io/gorm"
)

func expandPayment(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Order.Items.Product.Brand").
		Preload("Order.Items.Product.Color").
		Preload("Order.Items.Product.Size").
		Preload("Order.Items.Product.Category").
		Preload("Order.Items.Product.SubCategory")
}

// GET /admin/payments
func GetPayments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := orderControllers.Pagination(c)

		var payments []models.Payment
		if err := expandPayment(db).
			Order("id DESC").
			Limit(limit).
			Offset(offset).
			Find(&payments).Error; err != nil {
			log.Printf("fetch payments failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": 1, "data": payments})
	}
}

// GET /admin/payments/:id
func GetPayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payment models.Payment
		if err := expandPayment(db).First(&payment, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "Payment not found, Please enter valid payment id."})
				return
			}
			log.Printf("fetch payment failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": 1, "data": payment})
	}
}

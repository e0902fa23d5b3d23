package adminControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaushikmavani/ecom/models"
	"gorm.io/gorm"
)

// GET /admin/carts/:user_id
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "user_id is required"})
			return
		}

		var cart models.Cart
		err := db.
			Preload("Items.Product.Brand").
			Preload("Items.Product.Color").
			Preload("Items.Product.Size").
			Preload("Items.Product.Category").
			Preload("Items.Product.SubCategory").
			Where("user_id = ?", userID).
			First(&cart).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"status": 1, "data": []interface{}{}})
				return
			}
			log.Printf("fetch user cart failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": 1, "data": cart})
	}
}

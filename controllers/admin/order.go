package adminControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	orderControllers "github.com/kaushikmavani/ecom/controllers/order"
	"github.com/kaushikmavani/ecom/models"
	"github.com/kaushikmavani/ecom/utils"
	"gorm.io/gorm"
)

type UpdateOrderStatusInput struct {
	Status *int `json:"status" binding:"required,min=0,max=1"`
}

func expandOrder(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Items.Product.Brand").
		Preload("Items.Product.Color").
		Preload("Items.Product.Size").
		Preload("Items.Product.Category").
		Preload("Items.Product.SubCategory").
		Preload("Review")
}

// GET /admin/orders
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := orderControllers.Pagination(c)

		var orders []models.Order
		if err := expandOrder(db).
			Order("id DESC").
			Limit(limit).
			Offset(offset).
			Find(&orders).Error; err != nil {
			log.Printf("fetch orders failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": 1, "data": orders})
	}
}

// GET /admin/orders/:id
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := expandOrder(db).First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "Order not found, Please enter valid order id."})
				return
			}
			log.Printf("fetch order failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": 1, "data": order})
	}
}

// PATCH /admin/orders/:id/status
//
// The completion transition gates review creation; settlement itself always
// creates orders as placed.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"status": 0, "data": utils.ValidationErrors(err)})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "Order not found, Please enter valid order id."})
				return
			}
			log.Printf("fetch order failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			return
		}

		if err := db.Model(&order).Update("status", *input.Status).Error; err != nil {
			log.Printf("update order status failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": 1, "message": "Order status has been updated successfully!"})
	}
}

// GET /admin/reviews
func GetReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := orderControllers.Pagination(c)

		var reviews []models.Review
		if err := db.
			Preload("User").
			Order("id DESC").
			Limit(limit).
			Offset(offset).
			Find(&reviews).Error; err != nil {
			log.Printf("fetch reviews failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": 1, "data": reviews})
	}
}

// GET /admin/reviews/:id
func GetReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var review models.Review
		if err := db.Preload("User").First(&review, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "Review not found, Please enter valid review id."})
				return
			}
			log.Printf("fetch review failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": 1, "data": review})
	}
}

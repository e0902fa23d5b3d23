package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kaushikmavani/ecom/models"
	"github.com/kaushikmavani/ecom/utils"
	"gorm.io/gorm"
)

type AddReviewInput struct {
	Order  uint   `json:"order" binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review" binding:"required,min=3,max=250"`
}

var (
	errOrderNotFound   = errors.New("order not found")
	errNotOwner        = errors.New("order belongs to another user")
	errNotCompleted    = errors.New("order is not completed")
	errAlreadyReviewed = errors.New("order already reviewed")
)

// Pagination reads page/limit query params with the shared defaults.
func Pagination(c *gin.Context) (limit, offset int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	return limit, (page - 1) * limit
}

func expandOrder(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items.Product.Brand").
		Preload("Items.Product.Color").
		Preload("Items.Product.Size").
		Preload("Items.Product.Category").
		Preload("Items.Product.SubCategory").
		Preload("Review")
}

// GET /orders
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"status": 0, "message": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		limit, offset := Pagination(c)

		var orders []models.Order
		if err := expandOrder(db).
			Where("user_id = ?", userID).
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

// GET /orders/:id
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"status": 0, "message": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var order models.Order
		err := expandOrder(db).
			Where("user_id = ?", userID).
			First(&order, "id = ?", c.Param("id")).Error
		if err != nil {
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

// PUT /orders/review/add
func AddReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"status": 0, "message": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var input AddReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"status": 0, "data": utils.ValidationErrors(err)})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var order models.Order
			if err := tx.First(&order, "id = ?", input.Order).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errOrderNotFound
				}
				return err
			}

			if order.UserID != userID {
				return errNotOwner
			}

			if order.Status != models.OrderStatusCompleted {
				return errNotCompleted
			}

			var existing models.Review
			err := tx.Where("user_id = ? AND order_id = ?", userID, order.ID).First(&existing).Error
			if err == nil {
				return errAlreadyReviewed
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			review := models.Review{
				UserID:  userID,
				OrderID: order.ID,
				Rating:  input.Rating,
				Review:  input.Review,
			}
			return tx.Create(&review).Error
		})
		if err != nil {
			switch {
			case errors.Is(err, errOrderNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "Order not found, Please enter valid order id."})
			case errors.Is(err, errNotOwner):
				c.JSON(http.StatusForbidden, gin.H{"status": 0, "message": "You can not add review on this order."})
			case errors.Is(err, errNotCompleted):
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "You can only add review on completed orders."})
			case errors.Is(err, errAlreadyReviewed):
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "You have already added review on this order."})
			default:
				log.Printf("add review failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": 1, "message": "Review created successfully!"})
	}
}

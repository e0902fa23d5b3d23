package productControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kaushikmavani/ecom/models"
	"gorm.io/gorm"
)

func expandProduct(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Brand").
		Preload("Color").
		Preload("Size").
		Preload("Category").
		Preload("SubCategory")
}

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if err != nil || limit < 1 {
			limit = 10
		}

		query := expandProduct(db).Model(&models.Product{})

		// Optional filters
		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("title LIKE ? OR description LIKE ?", likePattern, likePattern)
		}
		if categoryID := c.Query("category"); categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}
		if brandID := c.Query("brand"); brandID != "" {
			query = query.Where("brand_id = ?", brandID)
		}

		var products []models.Product
		if err := query.
			Order("id DESC").
			Limit(limit).
			Offset((page - 1) * limit).
			Find(&products).Error; err != nil {
			log.Printf("fetch products failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": 1, "data": products})
	}
}

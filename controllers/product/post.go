package productControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaushikmavani/ecom/models"
	"github.com/kaushikmavani/ecom/utils"
	"gorm.io/gorm"
)

type ProductInput struct {
	Brand       uint    `json:"brand" binding:"required"`
	Color       uint    `json:"color" binding:"required"`
	Size        uint    `json:"size" binding:"required"`
	Category    uint    `json:"category" binding:"required"`
	SubCategory uint    `json:"sub_category" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Qty         *int    `json:"qty" binding:"required,min=0"`
	Image       string  `json:"image" binding:"required"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"status": 0, "data": utils.ValidationErrors(err)})
			return
		}

		product := models.Product{
			BrandID:       input.Brand,
			ColorID:       input.Color,
			SizeID:        input.Size,
			CategoryID:    input.Category,
			SubCategoryID: input.SubCategory,
			Title:         input.Title,
			Description:   input.Description,
			Price:         input.Price,
			Stock:         *input.Qty,
			Image:         input.Image,
		}
		if err := db.Create(&product).Error; err != nil {
			log.Printf("create product failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": 1, "data": product})
	}
}

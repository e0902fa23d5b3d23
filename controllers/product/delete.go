package productControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaushikmavani/ecom/models"
	"gorm.io/gorm"
)

// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.Product{})
		if result.Error != nil {
			log.Printf("delete product failed: %v", result.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "Product not found, Please enter valid product id"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": 1, "message": "Product has been deleted successfully!"})
	}
}

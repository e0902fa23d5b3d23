package adminControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaushikmavani/ecom/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /admin/orders/export-excel
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("User").Preload("Items").Order("id DESC").Find(&orders).Error; err != nil {
			log.Printf("fetch orders failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			return
		}

		// Header row
		headers := []string{
			"ID", "OrderRef", "UserID", "UserEmail", "Items",
			"SubTotal", "FinalAmount", "Status", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.OrderRef)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(o.User.Email)
			row.AddCell().SetValue(len(o.Items))
			row.AddCell().SetValue(o.SubTotal)
			row.AddCell().SetValue(o.FinalAmount)
			row.AddCell().SetValue(o.Status)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			return
		}
	}
}

package cartControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaushikmavani/ecom/models"
	"github.com/kaushikmavani/ecom/utils"
	"gorm.io/gorm"
)

type AddToCartInput struct {
	Product uint `json:"product" binding:"required"`
	Qty     int  `json:"qty" binding:"required,min=1"`
}

type CartProductInput struct {
	Product uint `json:"product" binding:"required"`
}

var (
	errProductNotFound   = errors.New("product not found")
	errInsufficientStock = errors.New("insufficient stock")
	errCartEmpty         = errors.New("cart is empty")
	errItemNotFound      = errors.New("product is not in the cart")
)

// updateLine persists a repriced line by column so the loaded product
// association is never written back.
func updateLine(tx *gorm.DB, item models.CartItem) error {
	return tx.Model(&models.CartItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"qty":    item.Qty,
		"price":  item.Price,
		"amount": item.Amount,
	}).Error
}

// recomputeTotals rewrites both totals as the sum of the item amounts. Totals
// are never patched with a delta.
func recomputeTotals(tx *gorm.DB, cart *models.Cart) error {
	var subTotal float64
	for _, item := range cart.Items {
		subTotal += item.Amount
	}
	return tx.Model(cart).Updates(map[string]interface{}{
		"sub_total":    subTotal,
		"final_amount": subTotal,
	}).Error
}

// PUT /cart/add-to-cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"status": 0, "message": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"status": 0, "data": utils.ValidationErrors(err)})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var product models.Product
			if err := tx.First(&product, "id = ?", input.Product).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errProductNotFound
				}
				return err
			}

			if input.Qty > product.Stock {
				return errInsufficientStock
			}

			var cart models.Cart
			if err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				// First add creates the cart
				amount := float64(input.Qty) * product.Price
				cart = models.Cart{
					UserID: userID,
					Items: []models.CartItem{{
						ProductID: product.ID,
						Qty:       input.Qty,
						Price:     product.Price,
						Amount:    amount,
					}},
					SubTotal:    amount,
					FinalAmount: amount,
				}
				return tx.Create(&cart).Error
			}

			// Merge into an existing line, repricing at the current catalog
			// price, or append a new one.
			merged := false
			for i := range cart.Items {
				if cart.Items[i].ProductID == product.ID {
					cart.Items[i].Qty += input.Qty
					cart.Items[i].Price = product.Price
					cart.Items[i].Amount = float64(cart.Items[i].Qty) * product.Price
					if err := updateLine(tx, cart.Items[i]); err != nil {
						return err
					}
					merged = true
					break
				}
			}
			if !merged {
				item := models.CartItem{
					CartID:    cart.ID,
					ProductID: product.ID,
					Qty:       input.Qty,
					Price:     product.Price,
					Amount:    float64(input.Qty) * product.Price,
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
				cart.Items = append(cart.Items, item)
			}

			return recomputeTotals(tx, &cart)
		})
		if err != nil {
			switch {
			case errors.Is(err, errProductNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "Product not found, Please enter valid product id"})
			case errors.Is(err, errInsufficientStock):
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "You can not add qty more than stock in cart."})
			default:
				log.Printf("add to cart failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": 1, "message": "Product has been added into cart successfully!"})
	}
}

// PATCH /cart/remove-from-cart
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"status": 0, "message": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var input CartProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"status": 0, "data": utils.ValidationErrors(err)})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errCartEmpty
				}
				return err
			}

			idx := -1
			for i, item := range cart.Items {
				if item.ProductID == input.Product {
					idx = i
					break
				}
			}
			if idx == -1 {
				return errItemNotFound
			}

			if err := tx.Delete(&cart.Items[idx]).Error; err != nil {
				return err
			}
			cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)

			// Removing the last line removes the cart itself
			if len(cart.Items) == 0 {
				return tx.Delete(&cart).Error
			}
			return recomputeTotals(tx, &cart)
		})
		if err != nil {
			switch {
			case errors.Is(err, errCartEmpty):
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "Your cart is already empty."})
			case errors.Is(err, errItemNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "Product is not already added into the cart."})
			default:
				log.Printf("remove from cart failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": 1, "message": "Product has been removed from cart successfully!"})
	}
}

// PATCH /cart/add-qty
func AddQty(db *gorm.DB) gin.HandlerFunc {
	return adjustQty(db, +1, "Qty has been added successfully!")
}

// PATCH /cart/remove-qty
func RemoveQty(db *gorm.DB) gin.HandlerFunc {
	return adjustQty(db, -1, "Qty has been removed successfully!")
}

// adjustQty changes a line quantity by one in either direction. The line is
// repriced at the current catalog price, a line reaching qty 0 is removed
// and an emptied cart is deleted.
func adjustQty(db *gorm.DB, delta int, successMessage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"status": 0, "message": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var input CartProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"status": 0, "data": utils.ValidationErrors(err)})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var product models.Product
			if err := tx.First(&product, "id = ?", input.Product).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errProductNotFound
				}
				return err
			}

			var cart models.Cart
			if err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errCartEmpty
				}
				return err
			}

			idx := -1
			for i, item := range cart.Items {
				if item.ProductID == input.Product {
					idx = i
					break
				}
			}
			if idx == -1 {
				return errItemNotFound
			}

			target := cart.Items[idx].Qty + delta
			if target > product.Stock {
				return errInsufficientStock
			}

			if target == 0 {
				if err := tx.Delete(&cart.Items[idx]).Error; err != nil {
					return err
				}
				cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
				if len(cart.Items) == 0 {
					return tx.Delete(&cart).Error
				}
				return recomputeTotals(tx, &cart)
			}

			cart.Items[idx].Qty = target
			cart.Items[idx].Price = product.Price
			cart.Items[idx].Amount = float64(target) * product.Price
			if err := updateLine(tx, cart.Items[idx]); err != nil {
				return err
			}
			return recomputeTotals(tx, &cart)
		})
		if err != nil {
			switch {
			case errors.Is(err, errProductNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "Product not found, Please enter valid product id"})
			case errors.Is(err, errCartEmpty):
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "Your cart is already empty."})
			case errors.Is(err, errItemNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "Product is not already added into the cart."})
			case errors.Is(err, errInsufficientStock):
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "You can not add qty more than stock in cart."})
			default:
				log.Printf("adjust cart qty failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": 1, "message": successMessage})
	}
}

// DELETE /cart/clear
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"status": 0, "message": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		err := db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errCartEmpty
				}
				return err
			}
			if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&cart).Error
		})
		if err != nil {
			if errors.Is(err, errCartEmpty) {
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "Your cart is already empty."})
				return
			}
			log.Printf("clear cart failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": 1, "message": "Your cart is empty successfully!"})
	}
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"status": 0, "message": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

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
			// Absence of a cart is not an error for reads
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"status": 1, "data": []interface{}{}})
				return
			}
			log.Printf("fetch cart failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": 1, "data": cart})
	}
}

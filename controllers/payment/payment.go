package paymentControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	orderControllers "github.com/kaushikmavani/ecom/controllers/order"
	"github.com/kaushikmavani/ecom/models"
	"github.com/kaushikmavani/ecom/utils"
	"gorm.io/gorm"
)

type MakePaymentInput struct {
	Cart   uint    `json:"cart" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
	Status *int    `json:"status" binding:"required"`
}

var (
	errCartNotFound   = errors.New("cart not found")
	errCartEmpty      = errors.New("cart is empty")
	errAmountMismatch = errors.New("amount does not match cart total")
	errOutOfStock     = errors.New("product out of stock")
)

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// verifyForPayment re-fetches every product inside the settlement transaction
// and reports whether each line is still covered by current stock. Cart state
// may be stale by the time the user pays; this is the authoritative re-check.
func verifyForPayment(tx *gorm.DB, cart models.Cart) bool {
	for _, item := range cart.Items {
		var product models.Product
		if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
			return false
		}
		if item.Qty > product.Stock {
			return false
		}
	}
	return true
}

// makePayment converts a verified cart into an order plus payment record,
// decrements stock per line and deletes the spent cart, all in one
// transaction. Any failure rolls the whole sequence back.
func makePayment(db *gorm.DB, userID uint, input MakePaymentInput) (models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items").First(&cart, "id = ?", input.Cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errCartNotFound
			}
			return err
		}

		if len(cart.Items) == 0 {
			return errCartEmpty
		}

		if cart.FinalAmount != input.Amount {
			return errAmountMismatch
		}

		if !verifyForPayment(tx, cart) {
			return errOutOfStock
		}

		items := make([]models.OrderItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			items = append(items, models.OrderItem{
				ProductID: item.ProductID,
				Qty:       item.Qty,
				Price:     item.Price,
				Amount:    item.Amount,
			})
		}

		order = models.Order{
			OrderRef:    generateOrderRef(),
			UserID:      userID,
			Items:       items,
			SubTotal:    cart.SubTotal,
			FinalAmount: cart.FinalAmount,
			Status:      models.OrderStatusPlaced,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		payment := models.Payment{
			UserID:  userID,
			OrderID: order.ID,
			Status:  models.PaymentStatusSucceeded,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		for _, item := range cart.Items {
			// Conditional decrement. The verifier ran in this transaction,
			// but the guard on stock makes the decrement itself authoritative:
			// zero rows affected means the remaining stock no longer covers
			// this line, and the whole settlement aborts.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Qty).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Qty))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errOutOfStock
			}
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cart).Error
	})
	return order, err
}

// PUT /payments/make-payment
func MakePayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"status": 0, "message": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var input MakePaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"status": 0, "data": utils.ValidationErrors(err)})
			return
		}

		if *input.Status != models.PaymentStatusSucceeded {
			c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "Payment failed, Please verify your payment details."})
			return
		}

		order, err := makePayment(db, userID, input)
		if err != nil {
			switch {
			case errors.Is(err, errCartNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "Cart not found, Please enter valid cart id."})
			case errors.Is(err, errCartEmpty):
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "Please enter at least one item into cart for payment."})
			case errors.Is(err, errAmountMismatch):
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "Payment failed, Please verify your payment details."})
			case errors.Is(err, errOutOfStock):
				c.JSON(http.StatusBadRequest, gin.H{"status": 0, "message": "Some products are out of stock, Please check your cart before payment."})
			default:
				log.Printf("make payment failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"status": 0, "message": "Something went wrong, Please try again later."})
			}
			return
		}

		orderControllers.BroadcastNewOrder(order)

		c.JSON(http.StatusOK, gin.H{"status": 1, "message": "Payment has been completed successfully!"})
	}
}

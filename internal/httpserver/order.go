package httpserver

import (
	"net/http"
	"strings"

	"storefront/internal/domain"

	"github.com/gin-gonic/gin"
)

// idempotencyHeader lets a client retry a checkout without placing a second
// order.
const idempotencyHeader = "Idempotency-Key"

func placeOrderHandler(checkout CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer := currentCustomer(c)
		key := strings.TrimSpace(c.GetHeader(idempotencyHeader))

		ord, err := checkout.PlaceOrder(c.Request.Context(), customer.ID, key)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"orderId": ord.ID, "order": ord})
	}
}

func getOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer := currentCustomer(c)
		ord, err := orders.Get(c.Request.Context(), c.Param("orderID"))
		if err != nil {
			respondError(c, err)
			return
		}
		// Customers only see their own orders.
		if ord.CustomerID != customer.ID {
			respondError(c, domain.ErrNotFound)
			return
		}
		c.JSON(http.StatusOK, ord)
	}
}

func listOrdersHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer := currentCustomer(c)
		list, err := orders.ListForCustomer(c.Request.Context(), customer.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		if list == nil {
			list = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

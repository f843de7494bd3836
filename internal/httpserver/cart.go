package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateCartLineRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func addToCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer := currentCustomer(c)
		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		line, err := carts.AddItem(c.Request.Context(), customer.ID, req.ProductID, req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, line)
	}
}

func updateCartLineHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer := currentCustomer(c)
		var req updateCartLineRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
			return
		}

		if err := carts.UpdateQuantity(c.Request.Context(), customer.ID, c.Param("lineID"), *req.Quantity); err != nil {
			respondError(c, err)
			return
		}

		cart, err := carts.Get(c.Request.Context(), customer.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func removeCartLineHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer := currentCustomer(c)
		if err := carts.RemoveItem(c.Request.Context(), customer.ID, c.Param("lineID")); err != nil {
			respondError(c, err)
			return
		}

		cart, err := carts.Get(c.Request.Context(), customer.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func viewCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer := currentCustomer(c)
		cart, err := carts.Get(c.Request.Context(), customer.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

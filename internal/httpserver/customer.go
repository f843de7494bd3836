package httpserver

import (
	"net/http"

	identitysvc "storefront/internal/service/identity"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Phone string `json:"phone" binding:"required"`
}

func registerHandler(identity IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in identitysvc.RegisterInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		customer, token, err := identity.Register(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"customer": customer, "accessToken": token})
	}
}

func loginHandler(identity IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone required"})
			return
		}

		customer, token, err := identity.Login(c.Request.Context(), req.Phone)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"customer": customer, "accessToken": token})
	}
}

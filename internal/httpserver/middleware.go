package httpserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain"
	"storefront/internal/metrics"

	"github.com/gin-gonic/gin"
)

const customerKey = "customer"

// authMiddleware resolves the bearer token to a customer once per request.
func authMiddleware(identity IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		customer, err := identity.ResolveToken(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(customerKey, customer)
		c.Next()
	}
}

func currentCustomer(c *gin.Context) *domain.Customer {
	v, ok := c.Get(customerKey)
	if !ok {
		return nil
	}
	customer, _ := v.(*domain.Customer)
	return customer
}

func metricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		m.Requests.WithLabelValues(handler, strconv.Itoa(c.Writer.Status())).Inc()
		m.LatencyMS.WithLabelValues(handler).Observe(float64(time.Since(start).Milliseconds()))
	}
}

package httpserver

import (
	"net/http"

	"storefront/internal/domain"

	"github.com/gin-gonic/gin"
)

func listProductsHandler(catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.List(c.Request.Context(), c.Query("categoryId"), c.Query("search"))
		if err != nil {
			respondError(c, err)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func getProductHandler(catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := catalog.Get(c.Request.Context(), c.Param("productID"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func listCategoriesHandler(catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := catalog.Categories(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if categories == nil {
			categories = []domain.Category{}
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

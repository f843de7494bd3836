package httpserver

import (
	"context"
	"log"

	"storefront/internal/domain"
	"storefront/internal/metrics"
	identitysvc "storefront/internal/service/identity"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IdentityService interface {
	Register(ctx context.Context, in identitysvc.RegisterInput) (*domain.Customer, string, error)
	Login(ctx context.Context, phone string) (*domain.Customer, string, error)
	ResolveToken(ctx context.Context, token string) (*domain.Customer, error)
}

type CatalogService interface {
	List(ctx context.Context, categoryID, search string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

type CartService interface {
	AddItem(ctx context.Context, customerID, productID string, quantity int) (*domain.CartLine, error)
	UpdateQuantity(ctx context.Context, customerID, lineID string, quantity int) error
	RemoveItem(ctx context.Context, customerID, lineID string) error
	Get(ctx context.Context, customerID string) (*domain.Cart, error)
}

type CheckoutService interface {
	PlaceOrder(ctx context.Context, customerID, idempotencyKey string) (*domain.Order, error)
}

type OrderService interface {
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	ListForCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
}

// Deps carries the services the router needs.
type Deps struct {
	Identity IdentityService
	Catalog  CatalogService
	Cart     CartService
	Checkout CheckoutService
	Orders   OrderService
	Metrics  *metrics.Metrics
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())
	if deps.Metrics != nil {
		router.Use(metricsMiddleware(deps.Metrics))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	v1 := router.Group("/v1")
	{
		v1.POST("/customers", registerHandler(deps.Identity))
		v1.POST("/customers/login", loginHandler(deps.Identity))

		v1.GET("/products", listProductsHandler(deps.Catalog))
		v1.GET("/products/:productID", getProductHandler(deps.Catalog))
		v1.GET("/categories", listCategoriesHandler(deps.Catalog))

		authed := v1.Group("", authMiddleware(deps.Identity))
		{
			authed.GET("/cart", viewCartHandler(deps.Cart))
			authed.POST("/cart/items", addToCartHandler(deps.Cart))
			authed.PATCH("/cart/items/:lineID", updateCartLineHandler(deps.Cart))
			authed.DELETE("/cart/items/:lineID", removeCartLineHandler(deps.Cart))

			authed.POST("/orders", placeOrderHandler(deps.Checkout))
			authed.GET("/orders", listOrdersHandler(deps.Orders))
			authed.GET("/orders/:orderID", getOrderHandler(deps.Orders))
		}
	}

	return router
}

package httpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"pos-console/internal/backend"
	"pos-console/internal/composer"
	"pos-console/internal/domain"
	"pos-console/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Backend is the slice of the data service client the console routes
// need. *backend.Client satisfies it.
type Backend interface {
	Login(ctx context.Context, username, password string) (*backend.AuthResult, error)
	Register(ctx context.Context, username, password string) (*backend.AuthResult, error)

	ListCustomers(ctx context.Context, token string) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, token string, in backend.CustomerInput) error
	UpdateCustomer(ctx context.Context, token string, id int64, in backend.CustomerInput) error
	DeleteCustomer(ctx context.Context, token string, id int64) error
	UploadCustomerPicture(ctx context.Context, token string, id int64, filename string, file io.Reader) error

	ListInventory(ctx context.Context, token string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, token string, in backend.ProductInput) error
	UpdateProduct(ctx context.Context, token string, id int64, in backend.ProductInput) error
	DeleteProduct(ctx context.Context, token string, id int64) error
	UploadProductPicture(ctx context.Context, token string, id int64, filename string, file io.Reader) error

	ListSales(ctx context.Context, token string) ([]domain.Sale, error)

	GetProfile(ctx context.Context, token string) (*domain.Profile, error)
	InventoryValue(ctx context.Context, token string) (int64, error)
	TopProducts(ctx context.Context, token string) ([]domain.TopProduct, error)
	LowStock(ctx context.Context, token string, threshold int) ([]domain.Product, error)

	composer.SaleBackend
}

// Deps carries everything the routes depend on.
type Deps struct {
	Backend     Backend
	Sessions    session.Store
	Carts       *composer.Registry
	CORSOrigins []string
	StockAdjust bool
}

// buildRouter wires routes for the console API.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	if deps.Backend == nil {
		return nil, errors.New("backend client required")
	}
	if deps.Sessions == nil {
		return nil, errors.New("session store required")
	}
	if deps.Carts == nil {
		return nil, errors.New("cart registry required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(deps.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = deps.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	router.Use(cors.New(corsCfg))

	h := &handlers{logger: logger, deps: deps}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Sessions))

	router.POST("/auth/login", h.login)
	router.POST("/auth/register", h.register)

	authed := router.Group("/", authMiddleware(deps.Sessions))
	authed.POST("/auth/logout", h.logout)

	authed.GET("/dashboard", h.dashboard)

	authed.GET("/customers", h.listCustomers)
	authed.POST("/customers", h.createCustomer)
	authed.PUT("/customers/:id", h.updateCustomer)
	authed.DELETE("/customers/:id", h.deleteCustomer)
	authed.POST("/customers/:id/upload-picture", h.uploadCustomerPicture)

	authed.GET("/inventory", h.listInventory)
	authed.POST("/inventory", h.createProduct)
	authed.PUT("/inventory/:id", h.updateProduct)
	authed.DELETE("/inventory/:id", h.deleteProduct)
	authed.POST("/inventory/:id/upload-picture", h.uploadProductPicture)

	authed.GET("/sales", h.listSales)
	authed.GET("/sale-form", h.saleForm)

	authed.GET("/cart", h.getCart)
	authed.PUT("/cart/customer", h.selectCartCustomer)
	authed.POST("/cart/lines", h.addCartLine)
	authed.PUT("/cart/lines/:index", h.updateCartLine)
	authed.DELETE("/cart/lines/:index", h.removeCartLine)
	authed.POST("/cart/submit", h.submitCart)

	return router, nil
}

type handlers struct {
	logger *log.Logger
	deps   Deps
}

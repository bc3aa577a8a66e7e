package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"carteasy/internal/assistant"
	"carteasy/internal/auth"
	"carteasy/internal/cache"
	"carteasy/internal/checkout"
	"carteasy/internal/handlers"
	"carteasy/internal/logging"
	"carteasy/internal/models"
	"carteasy/internal/repository"
	"carteasy/internal/session"
)

// Services agrupa las dependencias de los handlers
type Services struct {
	Products     repository.ProductRepository
	Orders       repository.OrderRepository
	Sessions     session.Store
	Auth         *auth.Service
	Assistant    *assistant.Service
	Checkout     *checkout.Service
	ListingCache *cache.Cache[[]models.Product]
	Logger       *zap.Logger
}

// NewRouter crea el engine de gin con los middlewares y las rutas
func NewRouter(s Services) *gin.Engine {
	router := gin.New()
	router.Use(logging.Recovery(s.Logger), logging.Middleware(s.Logger))
	RegisterRoutes(router, s)
	return router
}

func RegisterRoutes(router *gin.Engine, s Services) {
	products := handlers.NewProductHandler(s.Products, s.ListingCache, s.Logger)
	sessions := handlers.NewSessionHandler(s.Sessions)
	cart := handlers.NewCartHandler(s.Products, s.Sessions, s.Logger)
	authH := handlers.NewAuthHandler(s.Auth, s.Sessions)
	assistantH := handlers.NewAssistantHandler(s.Assistant, s.Sessions)
	checkoutH := handlers.NewCheckoutHandler(s.Checkout, s.Orders, s.Sessions, s.Logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "carteasy"})
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "not found"})
	})

	v1 := router.Group("/v1")
	{
		v1.GET("/home", products.Home)
		v1.GET("/categories", products.Categories)
		v1.GET("/products", products.ListProducts)
		v1.GET("/products/:id", products.GetProduct)

		v1.POST("/sessions", sessions.CreateSession)
	}

	shopper := v1.Group("", handlers.RequireSession(s.Sessions))
	{
		shopper.DELETE("/sessions", sessions.DeleteSession)

		shopper.GET("/cart", cart.GetCart)
		shopper.DELETE("/cart", cart.ClearCart)
		shopper.POST("/cart/items", cart.AddItem)
		shopper.PATCH("/cart/items/:id", cart.UpdateItem)
		shopper.DELETE("/cart/items/:id", cart.RemoveItem)

		shopper.POST("/auth/login", authH.Login)
		shopper.POST("/auth/signup", authH.Signup)
		shopper.POST("/auth/logout", authH.Logout)
		shopper.GET("/auth/me", authH.Me)

		shopper.GET("/assistant/messages", assistantH.Messages)
		shopper.POST("/assistant/messages", assistantH.SendMessage)
		shopper.DELETE("/assistant/messages", assistantH.ClearMessages)

		shopper.POST("/checkout", checkoutH.Checkout)
		shopper.GET("/orders/:id", checkoutH.GetOrder)
	}
}

package api

import (
	"net/http" // HTTP status codes

	"mealmate/internal/config"
	"mealmate/internal/grocery"
	"mealmate/internal/ideas"
	"mealmate/internal/middleware"
	"mealmate/internal/planner"

	"github.com/gin-contrib/cors"  // CORS middleware for Gin
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client

	authsvc "mealmate/internal/auth"
)

// Deps carries everything the route table needs. Redis may be nil; the list
// handlers then skip caching entirely.
type Deps struct {
	Cfg     *config.Config
	Auth    *authsvc.Service
	Plan    *planner.Service
	Grocery *grocery.Service
	Ideas   *ideas.Service
	Redis   *redis.Client
}

// NewRouter builds the Gin engine with the full route table
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.Cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	})

	// Probes and the API index stay open
	r.GET("/", RootHandler())
	r.GET("/health", HealthHandler())
	r.GET("/api/health", AIHealthHandler(d.Ideas))

	// Auth routes
	auth := r.Group("/api/auth")
	auth.POST("/register", RegisterHandler(d.Auth))
	auth.POST("/login", LoginHandler(d.Auth))
	auth.GET("/profile", middleware.JWTAuthMiddleware(d.Cfg.JWTSecret), ProfileHandler(d.Auth))

	// Meal plan routes (protected by JWT)
	protected := r.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware(d.Cfg.JWTSecret))
	protected.GET("/plan", ListPlanHandler(d.Plan, d.Redis))
	protected.POST("/meals", AddMealHandler(d.Plan, d.Redis))
	protected.PUT("/meals/:id", UpdateMealHandler(d.Plan, d.Redis))
	protected.DELETE("/meals/:id", DeleteMealHandler(d.Plan, d.Redis))

	// Grocery routes (protected by JWT)
	protected.GET("/groceries", ListGroceriesHandler(d.Grocery, d.Redis))
	protected.POST("/groceries", AddGroceryItemHandler(d.Grocery, d.Redis))
	protected.PUT("/groceries/:id", UpdateGroceryItemHandler(d.Grocery, d.Redis))
	protected.DELETE("/groceries/clear-purchased", ClearPurchasedHandler(d.Grocery, d.Redis))
	protected.DELETE("/groceries/:id", DeleteGroceryItemHandler(d.Grocery, d.Redis))

	// AI route (protected by JWT)
	protected.POST("/generate-ideas", GenerateIdeasHandler(d.Ideas))

	return r
}

package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// HealthHandler is the liveness probe
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "MealMate API is running",
		})
	}
}

// RootHandler describes the API surface
func RootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "MealMate API",
			"version":     "1.0.0",
			"description": "AI-powered meal planning API",
			"endpoints": gin.H{
				"auth": gin.H{
					"register": "POST /api/auth/register",
					"login":    "POST /api/auth/login",
					"profile":  "GET /api/auth/profile",
				},
				"meals": gin.H{
					"get_plan":    "GET /api/plan",
					"add_meal":    "POST /api/meals",
					"update_meal": "PUT /api/meals/{id}",
					"delete_meal": "DELETE /api/meals/{id}",
				},
				"groceries": gin.H{
					"get_list":        "GET /api/groceries",
					"add_item":        "POST /api/groceries",
					"update_item":     "PUT /api/groceries/{id}",
					"delete_item":     "DELETE /api/groceries/{id}",
					"clear_purchased": "DELETE /api/groceries/clear-purchased",
				},
				"ai": gin.H{
					"generate_ideas": "POST /api/generate-ideas",
					"health_check":   "GET /api/health",
				},
			},
		})
	}
}

package api

import (
	"context"  // Context for the model call
	"net/http" // HTTP status codes

	"mealmate/internal/ideas"

	"github.com/gin-gonic/gin" // Gin web framework
)

type GenerateIdeasRequest struct {
	Prompt string `json:"prompt"`
	Count  *int   `json:"count"`
}

// GenerateIdeasHandler asks the model for meal suggestions
func GenerateIdeasHandler(svc *ideas.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GenerateIdeasRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		count := ideas.DefaultCount
		if req.Count != nil {
			count = *req.Count
		}
		suggestions, err := svc.Generate(context.Background(), req.Prompt, count)
		if err != nil {
			Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"meals": suggestions})
	}
}

// AIHealthHandler reports whether the model backend is reachable via config
func AIHealthHandler(svc *ideas.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"configured": svc.Configured(),
		})
	}
}

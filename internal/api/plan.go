package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"mealmate/internal/apperr"
	"mealmate/internal/domain"
	"mealmate/internal/middleware"
	"mealmate/internal/planner"
	"mealmate/internal/utils"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

const listCacheTTL = 60 * time.Second

type AddMealRequest struct {
	DayOfWeek   string                    `json:"day_of_week"`
	Name        string                    `json:"name"`
	Notes       string                    `json:"notes"`
	Ingredients []planner.IngredientInput `json:"ingredients"`
}

// UpdateMealRequest uses pointers so an absent key is distinguishable from an
// empty value; the service decides which fields apply.
type UpdateMealRequest struct {
	DayOfWeek   *string                    `json:"day_of_week"`
	Name        *string                    `json:"name"`
	Notes       *string                    `json:"notes"`
	Ingredients *[]planner.IngredientInput `json:"ingredients"`
}

func planCacheKey(userID uint) string {
	return "plan:user:" + strconv.Itoa(int(userID))
}

// ListPlanHandler returns the user's full weekly plan with ingredients
func ListPlanHandler(svc *planner.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		ctx := context.Background()
		var cached []domain.Meal
		if found, err := utils.GetCache(ctx, rdb, planCacheKey(userID), &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"meals": cached})
			return
		}
		meals, err := svc.List(userID)
		if err != nil {
			Fail(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, planCacheKey(userID), meals, listCacheTTL)
		c.JSON(http.StatusOK, gin.H{"meals": meals})
	}
}

// AddMealHandler creates a meal for a free day
func AddMealHandler(svc *planner.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req AddMealRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		meal, err := svc.Add(userID, req.DayOfWeek, req.Name, req.Notes, req.Ingredients)
		if err != nil {
			Fail(c, err)
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, planCacheKey(userID))
		c.JSON(http.StatusCreated, gin.H{
			"message": "Meal added successfully",
			"meal":    meal,
		})
	}
}

// UpdateMealHandler overwrites the fields present in the request
func UpdateMealHandler(svc *planner.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		mealID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			Fail(c, apperr.NotFound("Meal not found"))
			return
		}
		var req UpdateMealRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		meal, err := svc.Update(userID, uint(mealID), planner.MealUpdate{
			DayOfWeek:   req.DayOfWeek,
			Name:        req.Name,
			Notes:       req.Notes,
			Ingredients: req.Ingredients,
		})
		if err != nil {
			Fail(c, err)
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, planCacheKey(userID))
		c.JSON(http.StatusOK, gin.H{
			"message": "Meal updated successfully",
			"meal":    meal,
		})
	}
}

// DeleteMealHandler removes a meal and its ingredients
func DeleteMealHandler(svc *planner.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		mealID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			Fail(c, apperr.NotFound("Meal not found"))
			return
		}
		if err := svc.Delete(userID, uint(mealID)); err != nil {
			Fail(c, err)
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, planCacheKey(userID))
		c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
	}
}

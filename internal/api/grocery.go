package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"mealmate/internal/apperr"
	"mealmate/internal/domain"
	"mealmate/internal/grocery"
	"mealmate/internal/middleware"
	"mealmate/internal/utils"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

type AddGroceryItemRequest struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

type UpdateGroceryItemRequest struct {
	Purchased *bool   `json:"purchased"`
	Name      *string `json:"name"`
	Quantity  *string `json:"quantity"`
}

func groceryCacheKey(userID uint) string {
	return "groceries:user:" + strconv.Itoa(int(userID))
}

// ListGroceriesHandler returns the user's grocery list, newest first
func ListGroceriesHandler(svc *grocery.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		ctx := context.Background()
		var cached []domain.GroceryItem
		if found, err := utils.GetCache(ctx, rdb, groceryCacheKey(userID), &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"grocery_items": cached})
			return
		}
		items, err := svc.List(userID)
		if err != nil {
			Fail(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, groceryCacheKey(userID), items, listCacheTTL)
		c.JSON(http.StatusOK, gin.H{"grocery_items": items})
	}
}

// AddGroceryItemHandler appends an item to the user's list
func AddGroceryItemHandler(svc *grocery.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req AddGroceryItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		item, err := svc.Add(userID, req.Name, req.Quantity)
		if err != nil {
			Fail(c, err)
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, groceryCacheKey(userID))
		c.JSON(http.StatusCreated, gin.H{
			"message": "Grocery item added successfully",
			"item":    item,
		})
	}
}

// UpdateGroceryItemHandler toggles purchased state or renames an item
func UpdateGroceryItemHandler(svc *grocery.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			Fail(c, apperr.NotFound("Grocery item not found"))
			return
		}
		var req UpdateGroceryItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		item, err := svc.Update(userID, uint(itemID), grocery.ItemUpdate{
			Purchased: req.Purchased,
			Name:      req.Name,
			Quantity:  req.Quantity,
		})
		if err != nil {
			Fail(c, err)
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, groceryCacheKey(userID))
		c.JSON(http.StatusOK, gin.H{
			"message": "Grocery item updated successfully",
			"item":    item,
		})
	}
}

// DeleteGroceryItemHandler removes a single item
func DeleteGroceryItemHandler(svc *grocery.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			Fail(c, apperr.NotFound("Grocery item not found"))
			return
		}
		if err := svc.Delete(userID, uint(itemID)); err != nil {
			Fail(c, err)
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, groceryCacheKey(userID))
		c.JSON(http.StatusOK, gin.H{"message": "Grocery item deleted successfully"})
	}
}

// ClearPurchasedHandler bulk-deletes every purchased item
func ClearPurchasedHandler(svc *grocery.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		count, err := svc.ClearPurchased(userID)
		if err != nil {
			Fail(c, err)
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, groceryCacheKey(userID))
		c.JSON(http.StatusOK, gin.H{
			"message":       "Purchased items cleared successfully",
			"deleted_count": count,
		})
	}
}

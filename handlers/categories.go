package handlers

import (
	"net/http"

	"github.com/iamkimedel22/SAVR/db"
	"github.com/iamkimedel22/SAVR/logger"
	"github.com/iamkimedel22/SAVR/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createCategoryRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type updateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// HandleGetCategories lists the caller's effective categories: their
// own plus the global defaults, deduplicated by name.
func HandleGetCategories(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	categories, err := db.ListCategoriesForUser(userID)
	if err != nil {
		logger.Get().Error("error listing categories", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, dedupeCategories(categories))
}

// dedupeCategories collapses rows sharing a name, keeping the
// user-owned row where both a global and a user-owned one exist.
func dedupeCategories(categories []models.Category) []models.Category {
	result := make([]models.Category, 0, len(categories))
	index := make(map[string]int, len(categories))
	for _, row := range categories {
		at, seen := index[row.Name]
		if !seen {
			index[row.Name] = len(result)
			result = append(result, row)
			continue
		}
		if result[at].UserID == nil && row.UserID != nil {
			result[at] = row
		}
	}
	return result
}

// HandleCreateCategory creates a user-owned category. Names already
// taken in the caller's effective list are rejected.
func HandleCreateCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	exists, err := db.CategoryNameExists(req.Name, userID)
	if err != nil {
		logger.Get().Error("error checking category name", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category already exists"})
		return
	}

	id, err := db.CreateCategory(userID, req.Name, req.Color)
	if err != nil {
		logger.Get().Error("error creating category", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
}

// checkCategoryAccess verifies the category exists, is not a global
// default and belongs to the caller. It writes the response on failure.
func checkCategoryAccess(c *gin.Context, id, userID int64, action string) bool {
	owner, found, err := db.GetCategoryOwner(id)
	if err != nil {
		logger.Get().Error("error fetching category owner", zap.Error(err), zap.Int64("category_id", id))
		serverError(c)
		return false
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return false
	}
	if owner == nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Cannot " + action + " default category"})
		return false
	}
	if *owner != userID {
		// Another user's row is reported exactly like a missing one.
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return false
	}
	return true
}

func HandleUpdateCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if !checkCategoryAccess(c, id, userID, "update") {
		return
	}

	var fields []db.UpdateField
	if req.Name != nil {
		fields = append(fields, db.UpdateField{Column: "name", Value: *req.Name})
	}
	if req.Color != nil {
		fields = append(fields, db.UpdateField{Column: "color", Value: *req.Color})
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
		return
	}

	if err := db.UpdateCategory(id, fields); err != nil {
		logger.Get().Error("error updating category", zap.Error(err), zap.Int64("category_id", id))
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func HandleDeleteCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if !checkCategoryAccess(c, id, userID, "delete") {
		return
	}

	if err := db.DeleteCategory(id); err != nil {
		logger.Get().Error("error deleting category", zap.Error(err), zap.Int64("category_id", id))
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

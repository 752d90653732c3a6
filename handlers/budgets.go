package handlers

import (
	"net/http"

	"github.com/iamkimedel22/SAVR/db"
	"github.com/iamkimedel22/SAVR/logger"
	"github.com/iamkimedel22/SAVR/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createBudgetRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type updateBudgetRequest struct {
	Category *string  `json:"category"`
	Amount   *float64 `json:"amount"`
}

// HandleGetBudgets lists the caller's budgets with derived spend and
// percentage. A zero-amount budget reports 0%, never a division error.
func HandleGetBudgets(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	budgets, err := db.ListBudgets(userID)
	if err != nil {
		logger.Get().Error("error listing budgets", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}

	result := make([]models.Budget, 0, len(budgets))
	for _, b := range budgets {
		b.Spent = round2(b.Spent)
		b.Amount = round2(b.Amount)
		b.Percentage = percent(b.Spent, b.Amount)
		result = append(result, b)
	}

	c.JSON(http.StatusOK, result)
}

func HandleCreateBudget(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	if req.Category == "" || req.Amount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	categoryID, err := db.ResolveCategoryID(req.Category, userID)
	if err != nil {
		logger.Get().Error("error resolving category", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}

	id, err := db.CreateBudget(userID, categoryID, req.Amount)
	if err != nil {
		logger.Get().Error("error creating budget", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
}

func checkBudgetAccess(c *gin.Context, id, userID int64) bool {
	owner, found, err := db.GetBudgetOwner(id)
	if err != nil {
		logger.Get().Error("error fetching budget owner", zap.Error(err), zap.Int64("budget_id", id))
		serverError(c)
		return false
	}
	if !found || owner != userID {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return false
	}
	return true
}

func HandleUpdateBudget(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if !checkBudgetAccess(c, id, userID) {
		return
	}

	var fields []db.UpdateField
	if req.Amount != nil {
		fields = append(fields, db.UpdateField{Column: "amount", Value: *req.Amount})
	}
	if req.Category != nil {
		categoryID, err := db.ResolveCategoryID(*req.Category, userID)
		if err != nil {
			logger.Get().Error("error resolving category", zap.Error(err), zap.Int64("user_id", userID))
			serverError(c)
			return
		}
		fields = append(fields, db.UpdateField{Column: "category_id", Value: categoryID})
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
		return
	}

	if err := db.UpdateBudget(id, fields); err != nil {
		logger.Get().Error("error updating budget", zap.Error(err), zap.Int64("budget_id", id))
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func HandleDeleteBudget(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if !checkBudgetAccess(c, id, userID) {
		return
	}

	if err := db.DeleteBudget(id); err != nil {
		logger.Get().Error("error deleting budget", zap.Error(err), zap.Int64("budget_id", id))
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

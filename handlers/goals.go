package handlers

import (
	"net/http"

	"github.com/iamkimedel22/SAVR/db"
	"github.com/iamkimedel22/SAVR/logger"
	"github.com/iamkimedel22/SAVR/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createGoalRequest struct {
	Title         string  `json:"title"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline"`
}

type updateGoalRequest struct {
	Title         *string  `json:"title"`
	TargetAmount  *float64 `json:"targetAmount"`
	CurrentAmount *float64 `json:"currentAmount"`
	Deadline      *string  `json:"deadline"`
}

// HandleGetGoals lists the caller's savings goals. The displayed
// percentage is capped at 100; the remaining amount is not capped and
// goes negative once a goal is exceeded.
func HandleGetGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	goals, err := db.ListGoals(userID)
	if err != nil {
		logger.Get().Error("error listing goals", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}

	result := make([]models.SavingsGoal, 0, len(goals))
	for _, g := range goals {
		p := percent(g.CurrentAmount, g.TargetAmount)
		if p > 100 {
			p = 100
		}
		g.Percentage = p
		g.Remaining = round2(g.TargetAmount - g.CurrentAmount)
		result = append(result, g)
	}

	c.JSON(http.StatusOK, result)
}

func HandleCreateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	if req.Title == "" || req.TargetAmount == 0 || req.Deadline == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	if !validDate(req.Deadline) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date"})
		return
	}

	id, err := db.CreateGoal(userID, req.Title, req.TargetAmount, req.CurrentAmount, req.Deadline)
	if err != nil {
		logger.Get().Error("error creating goal", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
}

func checkGoalAccess(c *gin.Context, id, userID int64) bool {
	owner, found, err := db.GetGoalOwner(id)
	if err != nil {
		logger.Get().Error("error fetching goal owner", zap.Error(err), zap.Int64("goal_id", id))
		serverError(c)
		return false
	}
	if !found || owner != userID {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return false
	}
	return true
}

func HandleUpdateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if !checkGoalAccess(c, id, userID) {
		return
	}

	var fields []db.UpdateField
	if req.Title != nil {
		fields = append(fields, db.UpdateField{Column: "title", Value: *req.Title})
	}
	if req.TargetAmount != nil {
		fields = append(fields, db.UpdateField{Column: "target_amount", Value: *req.TargetAmount})
	}
	if req.CurrentAmount != nil {
		fields = append(fields, db.UpdateField{Column: "current_amount", Value: *req.CurrentAmount})
	}
	if req.Deadline != nil {
		if !validDate(*req.Deadline) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date"})
			return
		}
		fields = append(fields, db.UpdateField{Column: "deadline", Value: *req.Deadline})
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
		return
	}

	if err := db.UpdateGoal(id, fields); err != nil {
		logger.Get().Error("error updating goal", zap.Error(err), zap.Int64("goal_id", id))
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func HandleDeleteGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if !checkGoalAccess(c, id, userID) {
		return
	}

	if err := db.DeleteGoal(id); err != nil {
		logger.Get().Error("error deleting goal", zap.Error(err), zap.Int64("goal_id", id))
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

package handlers

import (
	"net/http"

	"github.com/iamkimedel22/SAVR/db"
	"github.com/iamkimedel22/SAVR/logger"
	"github.com/iamkimedel22/SAVR/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandleGetDashboard returns the monthly summary: lifetime balance,
// current-month income and expense, and overall savings progress across
// every goal.
func HandleGetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	name, err := db.GetUserName(userID)
	if err != nil {
		logger.Get().Error("error getting user name", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}
	if name == "" {
		name = "User"
	}

	balance, err := db.GetLifetimeBalance(userID)
	if err != nil {
		logger.Get().Error("error getting balance", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}

	income, err := db.GetMonthTotalByType(userID, models.TransactionTypeIncome)
	if err != nil {
		logger.Get().Error("error getting monthly income", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}

	expense, err := db.GetMonthTotalByType(userID, models.TransactionTypeExpense)
	if err != nil {
		logger.Get().Error("error getting monthly expense", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}

	current, target, err := db.GetGoalTotals(userID)
	if err != nil {
		logger.Get().Error("error getting goal totals", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, models.DashboardSummary{
		UserName:             name,
		TotalBalance:         round2(balance),
		MonthlyIncome:        round2(income),
		MonthlyExpense:       round2(expense),
		SavingsGoalsProgress: percent(current, target),
	})
}

package handlers

import (
	"net/http"

	"github.com/iamkimedel22/SAVR/db"
	"github.com/iamkimedel22/SAVR/logger"
	"github.com/iamkimedel22/SAVR/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// rangeMonths maps the range selector to its lookback window. Unknown
// values fall back to a single month.
func rangeMonths(r string) int {
	switch r {
	case "quarter":
		return 3
	case "year":
		return 12
	default:
		return 1
	}
}

// HandleGetAnalytics returns three independent aggregate shapes over
// the selected range: expense distribution per category, the monthly
// expense trend, and monthly income-vs-expense pairs.
func HandleGetAnalytics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	months := rangeMonths(c.DefaultQuery("range", "month"))

	byCategory, err := db.GetSpendingByCategory(userID, months)
	if err != nil {
		logger.Get().Error("error getting category spending", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}

	trend, err := db.GetMonthlyTrend(userID, months)
	if err != nil {
		logger.Get().Error("error getting monthly trend", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}

	incomeVsExpense, err := db.GetIncomeVsExpense(userID, months)
	if err != nil {
		logger.Get().Error("error getting income vs expense", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}

	report := models.AnalyticsReport{
		SpendingByCategory: make([]models.CategorySpend, 0, len(byCategory)),
		MonthlyTrend:       make([]models.MonthlyTotal, 0, len(trend)),
		IncomeVsExpense:    make([]models.MonthlyIncomeExpense, 0, len(incomeVsExpense)),
	}
	for _, s := range byCategory {
		s.Value = round2(s.Value)
		report.SpendingByCategory = append(report.SpendingByCategory, s)
	}
	for _, t := range trend {
		t.Total = round2(t.Total)
		report.MonthlyTrend = append(report.MonthlyTrend, t)
	}
	for _, m := range incomeVsExpense {
		m.Income = round2(m.Income)
		m.Expense = round2(m.Expense)
		report.IncomeVsExpense = append(report.IncomeVsExpense, m)
	}

	c.JSON(http.StatusOK, report)
}

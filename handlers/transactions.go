package handlers

import (
	"net/http"
	"time"

	"github.com/iamkimedel22/SAVR/db"
	"github.com/iamkimedel22/SAVR/logger"
	"github.com/iamkimedel22/SAVR/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createTransactionRequest struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Date     string  `json:"date"`
	Note     string  `json:"note"`
}

type updateTransactionRequest struct {
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
	Type     *string  `json:"type"`
	Date     *string  `json:"date"`
	Note     *string  `json:"note"`
}

func validTransactionType(t string) bool {
	return t == models.TransactionTypeIncome || t == models.TransactionTypeExpense
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func HandleGetTransactions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	transactions, err := db.ListTransactions(userID)
	if err != nil {
		logger.Get().Error("error listing transactions", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	c.JSON(http.StatusOK, transactions)
}

// HandleCreateTransaction records a transaction. The category is given
// by name; an unknown name stores a null link rather than failing.
func HandleCreateTransaction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	if req.Amount == 0 || req.Category == "" || req.Type == "" || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	if !validTransactionType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid transaction type"})
		return
	}
	if !validDate(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date"})
		return
	}

	categoryID, err := db.ResolveCategoryID(req.Category, userID)
	if err != nil {
		logger.Get().Error("error resolving category", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}

	id, err := db.CreateTransaction(userID, categoryID, req.Amount, req.Type, req.Date, req.Note)
	if err != nil {
		logger.Get().Error("error creating transaction", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
}

// checkTransactionAccess verifies the transaction exists and belongs to
// the caller, answering 404 either way on failure.
func checkTransactionAccess(c *gin.Context, id, userID int64) bool {
	owner, found, err := db.GetTransactionOwner(id)
	if err != nil {
		logger.Get().Error("error fetching transaction owner", zap.Error(err), zap.Int64("transaction_id", id))
		serverError(c)
		return false
	}
	if !found || owner != userID {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return false
	}
	return true
}

func HandleUpdateTransaction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if !checkTransactionAccess(c, id, userID) {
		return
	}

	var fields []db.UpdateField
	if req.Amount != nil {
		fields = append(fields, db.UpdateField{Column: "amount", Value: *req.Amount})
	}
	if req.Type != nil {
		if !validTransactionType(*req.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid transaction type"})
			return
		}
		fields = append(fields, db.UpdateField{Column: "type", Value: *req.Type})
	}
	if req.Date != nil {
		if !validDate(*req.Date) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date"})
			return
		}
		fields = append(fields, db.UpdateField{Column: "date", Value: *req.Date})
	}
	if req.Note != nil {
		fields = append(fields, db.UpdateField{Column: "note", Value: *req.Note})
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

	if err := db.UpdateTransaction(id, fields); err != nil {
		logger.Get().Error("error updating transaction", zap.Error(err), zap.Int64("transaction_id", id))
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func HandleDeleteTransaction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if !checkTransactionAccess(c, id, userID) {
		return
	}

	if err := db.DeleteTransaction(id); err != nil {
		logger.Get().Error("error deleting transaction", zap.Error(err), zap.Int64("transaction_id", id))
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

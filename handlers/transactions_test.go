package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/iamkimedel22/SAVR/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTransactionsEmptyIsArray(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT t.id").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "amount", "type", "date", "note"}))

	r := authedRouter(7)
	r.GET("/transactions", HandleGetTransactions)
	w := doGet(t, r, "/transactions")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetTransactionsIncludesCategoryName(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT t.id").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "amount", "type", "date", "note"}).
			AddRow(int64(1), "Food", 50.0, "expense", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), ""))

	r := authedRouter(7)
	r.GET("/transactions", HandleGetTransactions)
	w := doGet(t, r, "/transactions")

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.Transaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Food", got[0].Category)
	assert.Equal(t, 50.0, got[0].Amount)
	assert.Equal(t, "2024-01-15", got[0].Date)
}

func TestCreateTransactionMissingFields(t *testing.T) {
	r := authedRouter(7)
	r.POST("/transactions", HandleCreateTransaction)

	for _, body := range []string{
		`{}`,
		`{"amount":50,"category":"Food","type":"expense"}`,
		`{"amount":50,"type":"expense","date":"2024-01-15"}`,
		`{"category":"Food","type":"expense","date":"2024-01-15"}`,
	} {
		w := doJSON(t, r, http.MethodPost, "/transactions", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestCreateTransactionInvalidType(t *testing.T) {
	r := authedRouter(7)
	r.POST("/transactions", HandleCreateTransaction)
	w := doJSON(t, r, http.MethodPost, "/transactions",
		`{"amount":50,"category":"Food","type":"transfer","date":"2024-01-15"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid transaction type")
}

func TestCreateTransactionInvalidDate(t *testing.T) {
	r := authedRouter(7)
	r.POST("/transactions", HandleCreateTransaction)
	w := doJSON(t, r, http.MethodPost, "/transactions",
		`{"amount":50,"category":"Food","type":"expense","date":"15/01/2024"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTransactionResolvesCategory(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT id").
		WithArgs("Food", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(int64(7), int64(3), 50.0, "expense", "2024-01-15", "lunch").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(21)))

	r := authedRouter(7)
	r.POST("/transactions", HandleCreateTransaction)
	w := doJSON(t, r, http.MethodPost, "/transactions",
		`{"amount":50,"category":"Food","type":"expense","date":"2024-01-15","note":"lunch"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":21`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransactionUnknownCategoryStoresNull(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT id").
		WithArgs("Mystery", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(int64(7), nil, 50.0, "expense", "2024-01-15", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(22)))

	r := authedRouter(7)
	r.POST("/transactions", HandleCreateTransaction)
	w := doJSON(t, r, http.MethodPost, "/transactions",
		`{"amount":50,"category":"Mystery","type":"expense","date":"2024-01-15"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTransactionTwice(t *testing.T) {
	mock := newMock(t)
	// First delete: owned row exists.
	mock.ExpectQuery("SELECT user_id FROM transactions").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(7)))
	mock.ExpectExec("DELETE FROM transactions").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Second delete: row is gone.
	mock.ExpectQuery("SELECT user_id FROM transactions").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	r := authedRouter(7)
	r.DELETE("/transactions/:id", HandleDeleteTransaction)

	first := doJSON(t, r, http.MethodDelete, "/transactions/5", "")
	assert.Equal(t, http.StatusOK, first.Code)

	second := doJSON(t, r, http.MethodDelete, "/transactions/5", "")
	assert.Equal(t, http.StatusNotFound, second.Code)
}

func TestUpdateTransactionOfAnotherUser(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT user_id FROM transactions").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(33)))

	r := authedRouter(7)
	r.PUT("/transactions/:id", HandleUpdateTransaction)
	w := doJSON(t, r, http.MethodPut, "/transactions/5", `{"amount":99}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTransactionPartialFields(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT user_id FROM transactions").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(7)))
	mock.ExpectExec("UPDATE transactions SET amount = \\$1, note = \\$2 WHERE id = \\$3").
		WithArgs(75.5, "updated", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := authedRouter(7)
	r.PUT("/transactions/:id", HandleUpdateTransaction)
	w := doJSON(t, r, http.MethodPut, "/transactions/5", `{"amount":75.5,"note":"updated"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTransactionBadID(t *testing.T) {
	r := authedRouter(7)
	r.PUT("/transactions/:id", HandleUpdateTransaction)
	w := doJSON(t, r, http.MethodPut, "/transactions/abc", `{"amount":1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

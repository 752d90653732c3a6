package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/iamkimedel22/SAVR/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboardSummary(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT name FROM users").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Alice"))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(CASE WHEN type = 'income'").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(1234.567))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\)").
		WithArgs(int64(7), "income").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(2000.0))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\)").
		WithArgs(int64(7), "expense").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(765.433))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(current_amount\\), 0\\)").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"current", "target"}).AddRow(250.0, 1000.0))

	r := authedRouter(7)
	r.GET("/dashboard", HandleGetDashboard)
	w := doGet(t, r, "/dashboard")

	require.Equal(t, http.StatusOK, w.Code)
	var got models.DashboardSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	assert.Equal(t, "Alice", got.UserName)
	assert.Equal(t, 1234.57, got.TotalBalance)
	assert.Equal(t, 2000.0, got.MonthlyIncome)
	assert.Equal(t, 765.43, got.MonthlyExpense)
	assert.Equal(t, 25, got.SavingsGoalsProgress)
}

func TestGetDashboardNoGoalsProgressZero(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT name FROM users").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(CASE WHEN type = 'income'").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(0.0))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\)").
		WithArgs(int64(7), "income").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(0.0))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\)").
		WithArgs(int64(7), "expense").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(0.0))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(current_amount\\), 0\\)").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"current", "target"}).AddRow(0.0, 0.0))

	r := authedRouter(7)
	r.GET("/dashboard", HandleGetDashboard)
	w := doGet(t, r, "/dashboard")

	require.Equal(t, http.StatusOK, w.Code)
	var got models.DashboardSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	assert.Equal(t, "User", got.UserName, "missing user falls back to a generic name")
	assert.Equal(t, 0, got.SavingsGoalsProgress, "zero target is 0%, not a division error")
}

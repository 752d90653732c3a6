package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/iamkimedel22/SAVR/db"
	"github.com/iamkimedel22/SAVR/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newMock swaps the db package pool for a sqlmock connection for the
// duration of one test.
func newMock(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	orig := db.DB
	db.DB = mockDB
	t.Cleanup(func() {
		db.DB = orig
		mockDB.Close()
	})
	return mock
}

// authedRouter builds a test engine whose middleware stamps every
// request with the given user id, standing in for the bearer check.
func authedRouter(userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

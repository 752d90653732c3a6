package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRouterRejectsUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter("test-secret")

	paths := []string{"/categories", "/transactions", "/budgets", "/goals", "/dashboard", "/analytics"}
	for _, path := range paths {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "path: %s", path)
		assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String(), "path: %s", path)
	}
}

func TestRouterPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter("test-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/transactions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterAuthRoutesArePublic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter("test-secret")

	// No bearer token: the route is reached and fails validation, not auth.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

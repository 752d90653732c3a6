package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/iamkimedel22/SAVR/middleware"

	"github.com/gin-gonic/gin"
)

// JWTSecret signs and verifies access tokens. Set once from main before
// the router starts serving.
var JWTSecret string

// currentUserID returns the user id stored by the auth middleware. A
// missing id means the route was wired without the middleware; the
// request is aborted with 401.
func currentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return 0, false
	}
	userID, ok := v.(int64)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// pathID parses the :id route parameter, answering 400 when it is not
// a number.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return id, true
}

// round2 rounds a monetary value to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// percent returns round(part/whole*100), with a zero whole defined as
// 0% rather than a division error.
func percent(part, whole float64) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(part / whole * 100))
}

func serverError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}

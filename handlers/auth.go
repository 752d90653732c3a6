package handlers

import (
	"net/http"

	"github.com/iamkimedel22/SAVR/auth"
	"github.com/iamkimedel22/SAVR/db"
	"github.com/iamkimedel22/SAVR/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// defaultCategories are created for every new user at registration.
var defaultCategories = []string{"Food", "Transport", "Bills", "Entertainment", "Other"}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a user, seeds the default category set and
// returns a fresh access token.
func HandleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
		return
	}

	if req.Email == "" || len(req.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
		return
	}

	existing, err := db.GetUserByEmail(req.Email)
	if err != nil {
		logger.Get().Error("error checking existing email", zap.Error(err))
		serverError(c)
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		logger.Get().Error("error hashing password", zap.Error(err))
		serverError(c)
		return
	}

	name := req.Name
	if name == "" {
		name = "User"
	}

	userID, err := db.CreateUser(req.Email, string(hash), name)
	if err != nil {
		logger.Get().Error("error creating user", zap.Error(err))
		serverError(c)
		return
	}

	// Sequential inserts, not a transaction: a failure here leaves the
	// user with a partial category set.
	for _, categoryName := range defaultCategories {
		if _, err := db.CreateCategory(userID, categoryName, nil); err != nil {
			logger.Get().Error("error creating default category",
				zap.Error(err), zap.Int64("user_id", userID), zap.String("category", categoryName))
			serverError(c)
			return
		}
	}

	token, err := auth.GenerateToken(userID, JWTSecret)
	if err != nil {
		logger.Get().Error("error generating token", zap.Error(err), zap.Int64("user_id", userID))
		serverError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"accessToken": token,
		"userId":      userID,
		"email":       req.Email,
	})
}

// HandleLogin verifies credentials, records an audit log entry and
// returns an access token. Unknown email and wrong password are not
// distinguished.
func HandleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	user, err := db.GetUserByEmail(req.Email)
	if err != nil {
		logger.Get().Error("error looking up user", zap.Error(err))
		serverError(c)
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	if err := db.InsertLog(user.ID, "login"); err != nil {
		logger.Get().Error("error writing login audit log", zap.Error(err), zap.Int64("user_id", user.ID))
		serverError(c)
		return
	}

	token, err := auth.GenerateToken(user.ID, JWTSecret)
	if err != nil {
		logger.Get().Error("error generating token", zap.Error(err), zap.Int64("user_id", user.ID))
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": token,
		"userId":      user.ID,
	})
}

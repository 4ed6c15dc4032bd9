// Package authControllers implements first-party email/password authentication
// with JWT access/refresh pairs and refresh-token revocation on logout.
package authControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Faruqt/fashion-store/auth"
	"github.com/Faruqt/fashion-store/models"
)

type registerInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordInput struct {
	Email       string `json:"email"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func createUser(db *gorm.DB, in registerInput, isStaff bool) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Password:  string(hash),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		IsActive:  true,
		IsStaff:   isStaff,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func registerHandler(db *gorm.DB, logger *zap.Logger, isStaff bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if blank(input.Email) || blank(input.Password) || blank(input.FirstName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email, password and first name are required"})
			return
		}

		user, err := createUser(db, input, isStaff)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "A user with this email already exists"})
				return
			}
			logger.Error("failed to create user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		access, refresh, err := auth.GenerateTokenPair(user)
		if err != nil {
			logger.Error("failed to issue tokens", zap.String("user_id", user.ID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
			return
		}

		logger.Info("user created", zap.String("user_id", user.ID.String()), zap.Bool("is_staff", isStaff))
		c.JSON(http.StatusCreated, gin.H{
			"user":          user,
			"access_token":  access,
			"refresh_token": refresh,
		})
	}
}

// POST /api/auth/create-user
func Register(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return registerHandler(db, logger, false)
}

// POST /api/auth/create-admin: superuser only (enforced in routes).
func CreateAdmin(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return registerHandler(db, logger, true)
}

// POST /api/auth/login
func Login(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil || blank(input.Email) || blank(input.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide both email and password"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(input.Email))).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			logger.Error("failed to look up user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}

		if !user.IsActive {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User account is not active"})
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}

		access, refresh, err := auth.GenerateTokenPair(&user)
		if err != nil {
			logger.Error("failed to issue tokens", zap.String("user_id", user.ID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}

		logger.Info("user logged in", zap.String("user_id", user.ID.String()))
		c.JSON(http.StatusOK, gin.H{
			"message":       "User logged in successfully",
			"access_token":  access,
			"refresh_token": refresh,
		})
	}
}

// POST /api/auth/change-password
func ChangePassword(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input changePasswordInput
		if err := c.ShouldBindJSON(&input); err != nil ||
			blank(input.Email) || blank(input.OldPassword) || blank(input.NewPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide email, old password and new password"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(input.Email))).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			logger.Error("failed to look up user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)) != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("failed to hash password", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
			return
		}

		if err := db.Model(&user).Update("password", string(hash)).Error; err != nil {
			logger.Error("failed to store password", zap.String("user_id", user.ID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
			return
		}

		logger.Info("password changed", zap.String("user_id", user.ID.String()))
		c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
	}
}

// refreshFromHeader extracts the refresh token from the Refresh-Authorization
// header. Expected format: Bearer <refresh_token>.
func refreshFromHeader(c *gin.Context) (string, bool) {
	header := c.GetHeader("Refresh-Authorization")
	if header == "" {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || blank(token) {
		return "", false
	}
	return token, true
}

// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := refreshFromHeader(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token is required"})
			return
		}

		claims, err := auth.ParseToken(tokenString, auth.TokenTypeRefresh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired refresh token"})
			return
		}

		var revoked int64
		if err := db.Model(&models.RevokedToken{}).Where("jti = ?", claims.ID).Count(&revoked).Error; err != nil {
			logger.Error("failed to check token revocation", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh token"})
			return
		}
		if revoked > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired refresh token"})
			return
		}

		access, err := auth.GenerateAccessToken(claims)
		if err != nil {
			logger.Error("failed to issue access token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"access_token": access})
	}
}

// POST /api/auth/logout: authenticated. Revokes the presented refresh token.
func Logout(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := refreshFromHeader(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token is required"})
			return
		}

		claims, err := auth.ParseToken(tokenString, auth.TokenTypeRefresh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired refresh token"})
			return
		}

		revoked := models.RevokedToken{
			JTI:       claims.ID,
			UserID:    claims.UserID,
			ExpiresAt: claims.ExpiresAt.Time,
		}
		// Re-revoking the same token is a no-op, not an error.
		if err := db.Where("jti = ?", revoked.JTI).FirstOrCreate(&revoked).Error; err != nil {
			logger.Error("failed to revoke token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
			return
		}

		logger.Info("user logged out", zap.String("user_id", claims.UserID.String()))
		c.JSON(http.StatusResetContent, gin.H{"message": "User logged out successfully"})
	}
}

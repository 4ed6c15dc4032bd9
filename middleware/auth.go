package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Faruqt/fashion-store/auth"
)

// Context keys set by ValidateToken for downstream handlers.
const (
	CtxUserID      = "user_id"
	CtxIsStaff     = "is_staff"
	CtxIsSuperUser = "is_superuser"
)

// ValidateToken authenticates the request from the Authorization header and
// stores the principal in the gin context.
func ValidateToken(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	claims, err := auth.ParseToken(tokenString, auth.TokenTypeAccess)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set(CtxUserID, claims.UserID)
	c.Set(CtxIsStaff, claims.IsStaff)
	c.Set(CtxIsSuperUser, claims.IsSuperUser)

	c.Next()
}

// AdminOnly rejects principals without the staff flag. Must run after ValidateToken.
func AdminOnly(c *gin.Context) {
	if !c.GetBool(CtxIsStaff) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
		c.Abort()
		return
	}
	c.Next()
}

// SuperUserOnly rejects principals without the superuser flag. Must run after ValidateToken.
func SuperUserOnly(c *gin.Context) {
	if !c.GetBool(CtxIsSuperUser) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Superuser privileges required"})
		c.Abort()
		return
	}
	c.Next()
}

// Principal returns the authenticated user's ID from the context.
func Principal(c *gin.Context) uuid.UUID {
	if id, ok := c.Get(CtxUserID); ok {
		if uid, ok := id.(uuid.UUID); ok {
			return uid
		}
	}
	return uuid.Nil
}

// CanAccess reports whether the acting principal may touch a resource owned by
// ownerID: staff bypass ownership, everyone else must own the resource.
func CanAccess(c *gin.Context, ownerID uuid.UUID) bool {
	return c.GetBool(CtxIsStaff) || Principal(c) == ownerID
}

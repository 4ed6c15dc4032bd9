package auth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Faruqt/fashion-store/models"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	UserID      uuid.UUID `json:"user_id"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperUser bool      `json:"is_superuser"`
	TokenType   string    `json:"token_type"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// AccessTTL defaults to 15 minutes, overridable via ACCESS_TOKEN_TTL_MIN.
func AccessTTL() time.Duration {
	if v, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_TTL_MIN")); err == nil && v > 0 {
		return time.Duration(v) * time.Minute
	}
	return 15 * time.Minute
}

// RefreshTTL defaults to 7 days, overridable via REFRESH_TOKEN_TTL_HOURS.
func RefreshTTL() time.Duration {
	if v, err := strconv.Atoi(os.Getenv("REFRESH_TOKEN_TTL_HOURS")); err == nil && v > 0 {
		return time.Duration(v) * time.Hour
	}
	return 7 * 24 * time.Hour
}

func signToken(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:      user.ID,
		IsStaff:     user.IsStaff,
		IsSuperUser: user.IsSuperUser,
		TokenType:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// GenerateTokenPair issues an access/refresh token pair for the user.
// The refresh token carries a jti so it can be revoked on logout.
func GenerateTokenPair(user *models.User) (access string, refresh string, err error) {
	if access, err = signToken(user, TokenTypeAccess, AccessTTL()); err != nil {
		return "", "", err
	}
	if refresh, err = signToken(user, TokenTypeRefresh, RefreshTTL()); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// GenerateAccessToken issues a fresh access token from the refresh-token claims.
func GenerateAccessToken(claims *Claims) (string, error) {
	user := models.User{
		ID:          claims.UserID,
		IsStaff:     claims.IsStaff,
		IsSuperUser: claims.IsSuperUser,
	}
	return signToken(&user, TokenTypeAccess, AccessTTL())
}

// ParseToken verifies the signature and the expected token type.
func ParseToken(tokenString, wantType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

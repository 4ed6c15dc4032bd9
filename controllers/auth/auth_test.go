package authControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authControllers "github.com/Faruqt/fashion-store/controllers/auth"
	"github.com/Faruqt/fashion-store/middleware"
	"github.com/Faruqt/fashion-store/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.RevokedToken{}))
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	logger := zap.NewNop()
	g := r.Group("/api/auth")
	g.POST("/create-user", authControllers.Register(db, logger))
	g.POST("/login", authControllers.Login(db, logger))
	g.POST("/change-password", authControllers.ChangePassword(db, logger))
	g.POST("/refresh-token", authControllers.RefreshToken(db, logger))
	g.POST("/logout", middleware.ValidateToken, authControllers.Logout(db, logger))
	return r
}

func postJSON(r *gin.Engine, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRegister(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := testDB(t)
	r := newRouter(db)

	w := postJSON(r, "/api/auth/create-user", gin.H{
		"email":      "Jane@Example.com",
		"password":   "s3cret",
		"first_name": "Jane",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.NotEmpty(t, body["access_token"])
	assert.NotEmpty(t, body["refresh_token"])
	// password hash never leaves the server
	assert.NotContains(t, w.Body.String(), "password")

	var user models.User
	require.NoError(t, db.Where("email = ?", "jane@example.com").First(&user).Error)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsStaff)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := testDB(t)
	r := newRouter(db)

	input := gin.H{"email": "dup@example.com", "password": "s3cret", "first_name": "Jane"}
	require.Equal(t, http.StatusCreated, postJSON(r, "/api/auth/create-user", input, nil).Code)

	w := postJSON(r, "/api/auth/create-user", input, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegisterMissingFields(t *testing.T) {
	db := testDB(t)
	r := newRouter(db)

	w := postJSON(r, "/api/auth/create-user", gin.H{"email": "x@example.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func registerUser(t *testing.T, r *gin.Engine, email, password string) map[string]any {
	t.Helper()
	w := postJSON(r, "/api/auth/create-user", gin.H{
		"email": email, "password": password, "first_name": "Test",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	return decode(t, w)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := testDB(t)
	r := newRouter(db)
	registerUser(t, r, "jane@example.com", "s3cret")

	w := postJSON(r, "/api/auth/login", gin.H{"email": "jane@example.com", "password": "s3cret"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.NotEmpty(t, body["access_token"])
	assert.NotEmpty(t, body["refresh_token"])

	// wrong password
	w = postJSON(r, "/api/auth/login", gin.H{"email": "jane@example.com", "password": "nope"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown user
	w = postJSON(r, "/api/auth/login", gin.H{"email": "ghost@example.com", "password": "s3cret"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// missing fields
	w = postJSON(r, "/api/auth/login", gin.H{"email": "jane@example.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginInactiveUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := testDB(t)
	r := newRouter(db)
	registerUser(t, r, "jane@example.com", "s3cret")
	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "jane@example.com").Update("is_active", false).Error)

	w := postJSON(r, "/api/auth/login", gin.H{"email": "jane@example.com", "password": "s3cret"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not active")
}

func TestChangePassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := testDB(t)
	r := newRouter(db)
	registerUser(t, r, "jane@example.com", "s3cret")

	w := postJSON(r, "/api/auth/change-password", gin.H{
		"email": "jane@example.com", "old_password": "wrong", "new_password": "newpass",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/api/auth/change-password", gin.H{
		"email": "jane@example.com", "old_password": "s3cret", "new_password": "newpass",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// old password stops working, new one logs in
	assert.Equal(t, http.StatusBadRequest,
		postJSON(r, "/api/auth/login", gin.H{"email": "jane@example.com", "password": "s3cret"}, nil).Code)
	assert.Equal(t, http.StatusOK,
		postJSON(r, "/api/auth/login", gin.H{"email": "jane@example.com", "password": "newpass"}, nil).Code)
}

func TestRefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := testDB(t)
	r := newRouter(db)
	tokens := registerUser(t, r, "jane@example.com", "s3cret")
	access := tokens["access_token"].(string)
	refresh := tokens["refresh_token"].(string)

	w := postJSON(r, "/api/auth/refresh-token", nil, map[string]string{
		"Refresh-Authorization": "Bearer " + refresh,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode(t, w)["access_token"])

	// an access token is not accepted as a refresh token
	w = postJSON(r, "/api/auth/refresh-token", nil, map[string]string{
		"Refresh-Authorization": "Bearer " + access,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// missing header
	assert.Equal(t, http.StatusBadRequest, postJSON(r, "/api/auth/refresh-token", nil, nil).Code)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := testDB(t)
	r := newRouter(db)
	tokens := registerUser(t, r, "jane@example.com", "s3cret")
	access := tokens["access_token"].(string)
	refresh := tokens["refresh_token"].(string)

	headers := map[string]string{
		"Authorization":         "Bearer " + access,
		"Refresh-Authorization": "Bearer " + refresh,
	}

	// logout requires authentication
	assert.Equal(t, http.StatusUnauthorized, postJSON(r, "/api/auth/logout", nil, map[string]string{
		"Refresh-Authorization": "Bearer " + refresh,
	}).Code)

	w := postJSON(r, "/api/auth/logout", nil, headers)
	require.Equal(t, http.StatusResetContent, w.Code)

	// the revoked refresh token can no longer mint access tokens
	w = postJSON(r, "/api/auth/refresh-token", nil, map[string]string{
		"Refresh-Authorization": "Bearer " + refresh,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// logging out twice with the same token is harmless
	assert.Equal(t, http.StatusResetContent, postJSON(r, "/api/auth/logout", nil, headers).Code)
}

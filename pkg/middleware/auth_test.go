package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hello-madurai/pkg/jwt"
	"hello-madurai/pkg/locale"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, _ := jwtService.GenerateToken("admin-123", jwt.RoleAdmin)

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(ContextUserID),
			"role":    c.GetString(ContextUserRole),
		})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"admin-123"`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidFormat(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "InvalidFormat token")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	jwtService := jwt.NewServiceWithTTL("test-secret-key", time.Nanosecond)
	token, _ := jwtService.GenerateToken("admin-123", jwt.RoleAdmin)
	time.Sleep(1100 * time.Millisecond)

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	adminToken, _ := jwtService.GenerateToken("admin-1", jwt.RoleAdmin)
	editorToken, _ := jwtService.GenerateToken("editor-1", "editor")

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService), AdminOnly())
	router.GET("/admin", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"admin", adminToken, http.StatusOK},
		{"non-admin", editorToken, http.StatusForbidden},
		{"anonymous", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/admin", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestLocale(t *testing.T) {
	router := setupTestRouter()
	router.Use(Locale())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, LocaleFrom(c).String())
	})

	tests := []struct {
		name   string
		url    string
		accept string
		want   locale.Locale
	}{
		{"query wins over header", "/test?lang=ta", "en-US", locale.Tamil},
		{"header used without query", "/test", "ta-IN,ta;q=0.9", locale.Tamil},
		{"unknown query falls back to header", "/test?lang=fr", "ta", locale.Tamil},
		{"default", "/test", "", locale.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", tt.url, nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, string(tt.want), w.Body.String())
			assert.Equal(t, string(tt.want), w.Header().Get("Content-Language"))
		})
	}
}

func TestLocaleFrom_WithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, locale.English, LocaleFrom(c))
}

func TestRateLimitMiddleware_RedisDownPassesThrough(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	router := setupTestRouter()
	router.Use(RateLimitMiddleware(client, 1, time.Minute))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitKey(t *testing.T) {
	jwtService := jwt.NewService("test-secret")
	token, err := jwtService.GenerateToken("admin-1", jwt.RoleAdmin)
	assert.NoError(t, err)

	var keys []string
	router := setupTestRouter()
	record := func(c *gin.Context) {
		keys = append(keys, rateLimitKey(c))
		c.Status(http.StatusNoContent)
	}
	router.GET("/public", record)
	router.GET("/admin", AuthMiddleware(jwtService), record)

	req, _ := http.NewRequest("GET", "/public", nil)
	req.RemoteAddr = "203.0.113.7:5000"
	router.ServeHTTP(httptest.NewRecorder(), req)

	req, _ = http.NewRequest("GET", "/admin", nil)
	req.RemoteAddr = "203.0.113.7:5000"
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, []string{
		"rate_limit:/public:ip:203.0.113.7",
		"rate_limit:/admin:user:admin-1",
	}, keys)
}

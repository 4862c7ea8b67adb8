package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/math490/ProjetoTarefas-3B/internal/config"
	"github.com/math490/ProjetoTarefas-3B/internal/handlers"
	"github.com/math490/ProjetoTarefas-3B/internal/models"
	"github.com/math490/ProjetoTarefas-3B/internal/services"
	"github.com/math490/ProjetoTarefas-3B/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MockAuthService struct {
	user *models.User
}

func (m *MockAuthService) LoginUser(db *gorm.DB, email, password string) (*models.User, error) {
	if m.user != nil && m.user.Email == email && password == "pw1" {
		return m.user, nil
	}
	return nil, services.ErrInvalidCredentials
}

func setupAuthHandler(t *testing.T) (*handlers.AuthHandler, *MockAuthService, *gin.Engine) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	store := session.NewStore(config.RedisConfig{Addr: mr.Addr(), DialTimeout: 5 * time.Second}, time.Hour)
	t.Cleanup(func() { store.Close() })
	manager := session.NewManager(store, "test-secret", time.Hour)

	mockAuth := &MockAuthService{}
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	handler := handlers.NewAuthHandler(nil, mockAuth, manager, "tarefas_session", log)

	router := gin.New()
	router.LoadHTMLGlob("../../templates/*.html")

	return handler, mockAuth, router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func TestLoginSuccessSetsSessionCookie(t *testing.T) {
	handler, mockAuth, router := setupAuthHandler(t)
	router.POST("/login", handler.Login)

	mockAuth.user = &models.User{ID: 1, Name: "Alice", Email: "a@x.com"}

	w := postForm(router, "/login", url.Values{"email": {"a@x.com"}, "password": {"pw1"}})

	if w.Code != http.StatusFound {
		t.Fatalf("Expected status %d, got %d", http.StatusFound, w.Code)
	}
	if location := w.Header().Get("Location"); location != "/tasks" {
		t.Errorf("Expected redirect to /tasks, got %s", location)
	}

	var sessionCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "tarefas_session" {
			sessionCookie = cookie
		}
	}
	if sessionCookie == nil || sessionCookie.Value == "" {
		t.Fatal("Expected session cookie to be set")
	}
}

func TestLoginFailureRerendersForm(t *testing.T) {
	handler, mockAuth, router := setupAuthHandler(t)
	router.POST("/login", handler.Login)

	mockAuth.user = &models.User{ID: 1, Name: "Alice", Email: "a@x.com"}

	w := postForm(router, "/login", url.Values{"email": {"a@x.com"}, "password": {"wrong"}})

	// Re-rendered in place, not a redirect.
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), "E-mail ou senha inválidos") {
		t.Error("Expected invalid-credentials notice in the form")
	}
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "tarefas_session" {
			t.Error("No session cookie may be set on failed login")
		}
	}
}

func TestLoginUnknownEmailSameResponse(t *testing.T) {
	handler, _, router := setupAuthHandler(t)
	router.POST("/login", handler.Login)

	w := postForm(router, "/login", url.Values{"email": {"nobody@x.com"}, "password": {"pw1"}})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), "E-mail ou senha inválidos") {
		t.Error("Unknown email must produce the same combined notice")
	}
}

func TestShowLoginRendersForm(t *testing.T) {
	handler, _, router := setupAuthHandler(t)
	router.GET("/login", handler.ShowLogin)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/login", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), "form") {
		t.Error("Expected login form markup")
	}
}

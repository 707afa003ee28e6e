package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(NewService(NewInMemoryUserRepository()))
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)

	return r
}

func postJSON(r *gin.Engine, path string, payload map[string]string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	r := setupTestRouter()

	w := postJSON(r, "/auth/register", map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["token"] == "" || resp["token"] == nil {
		t.Fatal("expected a token in the response")
	}
}

func TestRegisterMissingFields(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	r := setupTestRouter()

	w := postJSON(r, "/auth/register", map[string]string{
		"email": "test@example.com",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	r := setupTestRouter()

	payload := map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	}

	if w := postJSON(r, "/auth/register", payload); w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}
	if w := postJSON(r, "/auth/register", payload); w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	r := setupTestRouter()

	postJSON(r, "/auth/register", map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	})

	w := postJSON(r, "/auth/login", map[string]string{
		"email":    "test@example.com",
		"password": "wrong",
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

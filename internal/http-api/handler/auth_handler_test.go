package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"albumrater/internal/http-api/dto"
	"albumrater/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(p service.SignupParams) (string, error) {
	args := m.Called(p)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(username, password string) (string, error) {
	args := m.Called(username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (string, error) {
	args := m.Called(tokenString)
	return args.String(0), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignup_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	handler.RegisterRoutes(router)

	mockAuthService.On("Signup", mock.MatchedBy(func(p service.SignupParams) bool {
		return p.Username == "alice" && p.FirstName == "Alice" && p.Password == "password123"
	})).Return("signed.jwt.token", nil)

	w := postJSON(router, "/signup", dto.SignupRequest{
		Username:  "alice",
		FirstName: "Alice",
		Password:  "password123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.TokenResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "signed.jwt.token", response.Token)

	mockAuthService.AssertExpectations(t)
}

func TestSignup_UsernameTaken(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	handler.RegisterRoutes(router)

	mockAuthService.On("Signup", mock.Anything).Return("", service.ErrDuplicateUsername)

	w := postJSON(router, "/signup", dto.SignupRequest{
		Username:  "alice",
		FirstName: "Alice",
		Password:  "password123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorsResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, []string{"Username is taken."}, response.Errors)

	mockAuthService.AssertExpectations(t)
}

func TestSignup_MissingFields(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	handler.RegisterRoutes(router)

	// No password at all
	w := postJSON(router, "/signup", map[string]string{
		"username":   "alice",
		"first_name": "Alice",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorsResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, []string{"Please fill all required fields."}, response.Errors)

	mockAuthService.AssertNotCalled(t, "Signup", mock.Anything)
}

func TestSignup_ShortPassword(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	handler.RegisterRoutes(router)

	w := postJSON(router, "/signup", dto.SignupRequest{
		Username:  "alice",
		FirstName: "Alice",
		Password:  "abc",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuthService.AssertNotCalled(t, "Signup", mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	handler.RegisterRoutes(router)

	mockAuthService.On("Login", "alice", "password123").Return("signed.jwt.token", nil)

	w := postJSON(router, "/login", dto.LoginRequest{Username: "alice", Password: "password123"})

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.TokenResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "signed.jwt.token", response.Token)

	mockAuthService.AssertExpectations(t)
}

// Wrong password and unknown username must be indistinguishable in both
// status and body.
func TestLogin_InvalidCredentialsIdenticalShape(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	handler.RegisterRoutes(router)

	mockAuthService.On("Login", "alice", "wrongpass").Return("", service.ErrInvalidCredentials)
	mockAuthService.On("Login", "nosuchuser", "whatever").Return("", service.ErrInvalidCredentials)

	wrongPassword := postJSON(router, "/login", dto.LoginRequest{Username: "alice", Password: "wrongpass"})
	unknownUser := postJSON(router, "/login", dto.LoginRequest{Username: "nosuchuser", Password: "whatever"})

	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, http.StatusBadRequest, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())

	mockAuthService.AssertExpectations(t)
}

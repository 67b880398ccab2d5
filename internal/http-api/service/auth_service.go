package service

import (
	"errors"

	"albumrater/internal/http-api/models"
	"albumrater/internal/http-api/repository"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// dummy bcrypt hash compared against when the username does not exist, so
// unknown-user and wrong-password logins take the same time.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e"

type SignupParams struct {
	Username  string
	FirstName string
	LastName  *string
	Password  string
	Bio       *string
	ImageURL  string
}

type AuthService interface {
	Signup(p SignupParams) (token string, err error)
	Login(username, password string) (token string, err error)
	// ValidateToken verifies the signature and returns the username claim.
	ValidateToken(tokenString string) (username string, err error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret string
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// Signup persists a new user with a hashed password and returns a bearer
// token for them. The unique constraint on username backstops the
// application-level duplicate check.
func (s *authService) Signup(p SignupParams) (string, error) {
	if _, err := s.userRepo.FindByUsername(p.Username); err == nil {
		return "", ErrDuplicateUsername
	}

	hashedPassword, err := HashPassword(p.Password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Username:  p.Username,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Bio:       p.Bio,
		ImageURL:  p.ImageURL,
		Password:  hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if repository.IsUniqueViolation(err) {
			return "", ErrDuplicateUsername
		}
		return "", err
	}

	return s.generateToken(user.Username)
}

// Login checks the credentials and returns a bearer token. Unknown users
// and wrong passwords are indistinguishable to the caller.
func (s *authService) Login(username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		VerifyPassword(dummyHash, password)
		return "", ErrInvalidCredentials
	}

	if err := VerifyPassword(user.Password, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(user.Username)
}

// generateToken signs a token carrying the username as identity claim.
// Tokens do not expire.
func (s *authService) generateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", ErrInvalidToken
	}

	// The user may have deleted their account since the token was issued
	if _, err := s.userRepo.FindByUsername(username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}

	return username, nil
}

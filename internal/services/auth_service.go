package services

import (
	"fmt"
	"log"
	"time"

	"ecom/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and validates the JWT tokens that gate admin-only
// endpoints. Tokens carry the user id, email and role.
type AuthService struct {
	userRepo      repositories.UserRepository
	jwtSecret     []byte
	tokenDuration time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: 24 * time.Hour,
	}
}

// Login authenticates a user by email and password and returns a signed JWT.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists.
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.tokenDuration).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// TokenValidator validates a JWT and returns its claims. It is what the
// auth middleware depends on, so services that only need validation (the
// product service has no user store) can satisfy it with a TokenVerifier.
type TokenValidator interface {
	ValidateToken(tokenString string) (jwt.MapClaims, error)
}

// ValidateToken parses and validates a JWT, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	return validateHS256(tokenString, s.jwtSecret)
}

// TokenVerifier is a stateless TokenValidator for services that verify
// tokens issued elsewhere with the shared secret.
type TokenVerifier struct {
	jwtSecret []byte
}

// NewTokenVerifier creates a new TokenVerifier.
func NewTokenVerifier(jwtSecret string) *TokenVerifier {
	return &TokenVerifier{jwtSecret: []byte(jwtSecret)}
}

// ValidateToken parses and validates a JWT, returning the claims if valid.
func (v *TokenVerifier) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	return validateHS256(tokenString, v.jwtSecret)
}

func validateHS256(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

package server

import (
	"fmt"
	"time"

	"amica/internal/models"
	"amica/internal/observability"
	"amica/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Register handles POST /api/auth/register
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Collect every field violation so the client can show them all at once
	if violations := validation.ValidateRegistration(req.Name, req.Email, req.Password); len(violations) > 0 {
		observability.AuthAttempts.WithLabelValues("register", "invalid").Inc()
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationErrors(violations))
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	// Uniqueness is checked inside the store's write lock
	user, err := s.userService.Create(c.Context(), req.Email, string(hashedPassword), req.Name)
	if err != nil {
		observability.AuthAttempts.WithLabelValues("register", "failure").Inc()
		return respondError(c, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	observability.AuthAttempts.WithLabelValues("register", "success").Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user.WithoutPassword(),
	})
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email and password are required"))
	}

	user, err := s.userService.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return respondError(c, err)
	}
	// An unknown address and a wrong password get the same answer, so the
	// endpoint cannot be used to probe which emails are registered.
	if user == nil {
		observability.AuthAttempts.WithLabelValues("login", "failure").Inc()
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid email or password"))
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); cmpErr != nil {
		observability.AuthAttempts.WithLabelValues("login", "failure").Inc()
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid email or password"))
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	observability.AuthAttempts.WithLabelValues("login", "success").Inc()
	return c.JSON(fiber.Map{
		"token": token,
		"user":  user.WithoutPassword(),
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so logout is a
// client-side operation; the endpoint exists so clients have a uniform call.
func (s *Server) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// generateToken creates a signed JWT for the given user ID
func (s *Server) generateToken(userID string) (string, error) {
	// Validate secret exists
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,                         // Subject (user ID)
		"iss": tokenIssuer,                    // Issuer
		"aud": tokenAudience,                  // Audience
		"exp": now.Add(tokenLifetime).Unix(),  // Expiration (24 hours)
		"iat": now.Unix(),                     // Issued at
		"nbf": now.Unix(),                     // Not before
		"jti": s.generateJTI(),                // JWT ID (unique identifier)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gymhub/internal/domain"
	"gymhub/internal/service"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type LoginRequest struct {
	Role     domain.Role `json:"role" binding:"required,oneof=admin trainer member"`
	Username string      `json:"username" binding:"required"`
	Password string      `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string           `json:"token"`
	Identity service.Identity `json:"identity"`
}

type RegisterRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// --- Handler Methods ---

// Login authenticates against the table picked by the role field and
// returns a session token. Unknown username and wrong password produce the
// same response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, identity, err := h.authService.Login(c.Request.Context(), req.Role, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrTokenGeneration) {
			abortWithError(c, http.StatusInternalServerError, "Could not process login")
			return
		}
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, Identity: identity})
}

// Register creates a member account from the self-service signup form.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	member, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		if errors.Is(err, service.ErrHashingFailed) {
			abortWithError(c, http.StatusInternalServerError, "Could not process registration")
			return
		}
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"member":   member,
		"username": member.Username,
	})
}

// Logout is advisory: tokens are stateless, so the server only acknowledges
// and the client discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

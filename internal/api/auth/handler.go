package auth

import (
	"net/http"

	"artmarket/internal/api/httpx"
	"artmarket/internal/domain/access"
	"artmarket/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// TokenIssuer signs session tokens for a principal.
type TokenIssuer interface {
	Issue(p access.Principal) (string, error)
}

type Handler struct {
	Users  *users.Service
	Tokens TokenIssuer
	// Google is nil when Google sign-in is not configured.
	Google *GoogleConfig
}

type registerRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var input registerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	u, err := h.Users.Register(c.Request.Context(), users.RegisterInput{
		FullName: input.FullName,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})
	if err != nil {
		httpx.WriteError(c, err)
		return
	}

	log.Info().Uint("user_id", u.ID).Str("role", u.Role).Msg("user registered")
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	u, err := h.Users.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}

	token, err := h.Tokens.Issue(u.Principal())
	if err != nil {
		log.Error().Err(err).Uint("user_id", u.ID).Msg("sign token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token:    token,
		Role:     u.Role,
		FullName: u.FullName,
		Email:    u.Email,
	})
}

// GET /api/auth/me
func (h *Handler) Me(c *gin.Context) {
	u, err := h.Users.Get(c.Request.Context(), httpx.PrincipalFrom(c).ID())
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

package httpapi

import (
	"errors"
	"net/http"

	"metaspace/internal/auth"
	"metaspace/internal/user"
	"metaspace/pkg/logger"

	"github.com/gin-gonic/gin"
)

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	AvatarID *int   `json:"avatar_id,omitempty"`
	Role     string `json:"role"`
}

// SignIn exchanges credentials for a bearer token.
// All credential failures map to one 401 with no distinguishing content.
func (h Handlers) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	token, err := h.Users.SignIn(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		logger.FromGin(c).Error("signin failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// SignUp registers a new user. Duplicate usernames return 409.
func (h Handlers) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	err := h.Users.SignUp(c.Request.Context(), user.SignUpRequest{
		Username: req.Username,
		Password: req.Password,
		AvatarID: req.AvatarID,
		Role:     auth.Role(req.Role),
	})
	switch {
	case err == nil:
		c.Status(http.StatusCreated)
	case errors.Is(err, user.ErrDuplicateUsername):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "username already taken"})
	case errors.Is(err, user.ErrInvalidArgument):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "username, password and a valid role are required"})
	default:
		logger.FromGin(c).Error("signup failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

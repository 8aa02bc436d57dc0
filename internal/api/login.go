package api

import (
	"errors"
	"net/http"
	"strings"

	"leadgate/internal/auth"
	"leadgate/internal/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *auth.TokenManager
}

func NewAuthHandler(db *gorm.DB, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges admin credentials for a bearer token. Bad email and
// bad password get the same answer so the endpoint cannot be used to
// probe for accounts.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and password are required"})
		return
	}

	var user models.AdminUser
	err := h.db.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid email or password"})
			return
		}
		writeDBError(c, err)
		return
	}

	if err := auth.CheckPassword(req.Password, user.PasswordHash); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid email or password"})
		return
	}

	token, err := h.tokens.Generate(user.UUID, user.Email, user.Role)
	if err != nil {
		log.WithError(err).Error("token generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token":     token,
			"expiresIn": 24 * 60 * 60,
			"user": gin.H{
				"uuid":  user.UUID,
				"email": user.Email,
				"role":  user.Role,
			},
		},
	})
}

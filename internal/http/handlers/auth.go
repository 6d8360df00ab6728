package handlers

import (
	"net/http"
	"strings"
	"time"

	"reseller-console/internal/http/middleware"
	"reseller-console/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const roleAdmin = "admin"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if a.Env.AdminPasswordHash == "" || a.Env.JWTSecret == "" {
		respondError(c, http.StatusServiceUnavailable, "auth_not_configured", "login is not configured", nil)
		return
	}

	username := strings.TrimSpace(req.Username)
	if username != a.Env.AdminUsername ||
		bcrypt.CompareHashAndPassword([]byte(a.Env.AdminPasswordHash), []byte(req.Password)) != nil {
		utils.LogEvent(middleware.GetRequestID(c), "auth", "login_failed", "username="+username)
		respondError(c, http.StatusUnauthorized, "invalid_credentials", "wrong username or password", nil)
		return
	}

	token, err := middleware.IssueToken([]byte(a.Env.JWTSecret), username, roleAdmin, time.Now())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "token_failed", "failed to create token", nil)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "username="+username)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  gin.H{"username": username, "role": roleAdmin},
	})
}

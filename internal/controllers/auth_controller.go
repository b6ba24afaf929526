package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"freight_dispatch/internal/config"
	"freight_dispatch/internal/middleware"
)

// AuthController exchanges the configured operator credentials for a signed
// bearer token. The configured password is hashed once at startup so login
// compares against a bcrypt digest rather than the raw value.
type AuthController struct {
	login        string
	passwordHash []byte
	issuer       *middleware.TokenIssuer
}

func NewAuthController(cfg *config.Config, issuer *middleware.TokenIssuer) *AuthController {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AppPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("could not hash configured password: %v", err)
	}
	return &AuthController{login: cfg.AppLogin, passwordHash: hash, issuer: issuer}
}

func (a *AuthController) Login(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if body.Username != a.login ||
		bcrypt.CompareHashAndPassword(a.passwordHash, []byte(body.Password)) != nil {
		logrus.WithField("username", body.Username).Warn("Login: bad credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Bad credentials"})
		return
	}

	token, err := a.issuer.GenerateToken(body.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/metrics"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"github.com/gin-gonic/gin"
)

// userResponse is the public view of a user record. The stored password
// hash deliberately never leaves the service.
type userResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{UserID: u.ID, Username: u.Username}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// login handles the form-encoded password grant. The unknown-user and
// wrong-password replies stay distinct for compatibility with the original
// API, even though that allows username probing.
func (s *Server) login(c *gin.Context) {

	username := c.PostForm("username")
	password := c.PostForm("password")

	token, err := s.users.Login(c.Request.Context(), username, password)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			metrics.RecordLogin("unauthorized")
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Incorrect username"})
		case errors.Is(err, common.ErrorInvalidCredentials):
			metrics.RecordLogin("unauthorized")
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Incorrect password"})
		default:
			metrics.RecordLogin("error")
			s.logger.Error(c.Request.Context(), "login failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		}
		return
	}

	metrics.RecordLogin("ok")
	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) createUser(c *gin.Context) {

	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid input"})
		return
	}

	s.logger.Info(c.Request.Context(), "Registration request", "username", req.Username)

	user, err := s.users.Register(c.Request.Context(), req.Username, req.Password)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			metrics.RecordRegistration("conflict")
			c.JSON(http.StatusConflict, gin.H{"detail": "username already exists"})
		case errors.Is(err, common.ErrorValidation):
			metrics.RecordRegistration("invalid")
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid input"})
		default:
			metrics.RecordRegistration("error")
			s.logger.Error(c.Request.Context(), "registration failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		}
		return
	}

	metrics.RecordRegistration("ok")
	s.logger.Info(c.Request.Context(), "Registered", "username", user.Username)
	c.JSON(http.StatusCreated, newUserResponse(user))
}

func (s *Server) currentUser(c *gin.Context) {
	user := c.MustGet(currentUserKey).(*models.User)
	c.JSON(http.StatusOK, newUserResponse(user))
}

func (s *Server) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

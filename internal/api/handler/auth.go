package handler

import (
	"net/http"

	"github.com/Sadman-26/Metro-Rail-Project/internal/auth"
	"github.com/Sadman-26/Metro-Rail-Project/internal/models"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"is_admin"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Name:     u.Name,
		IsAdmin:  u.IsAdmin,
	}
}

// Register creates an account and returns the user with a session token.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	user, token, err := h.Auth.Register(auth.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": newUserResponse(user), "token": token})
}

// Login verifies credentials and returns the user with a session token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	user, token, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user), "token": token})
}

// Logout revokes the caller's session token.
func (h *Handler) Logout(c *gin.Context) {
	token, _ := bearerToken(c)
	if err := h.Auth.Logout(token); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// CurrentUser returns the authenticated caller.
func (h *Handler) CurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, newUserResponse(caller(c)))
}

package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/okozlov/accountd/internal/common"
	"github.com/okozlov/accountd/internal/server/models"
)

type registerRequest struct {
	Lastname        string `json:"lastname"`
	Firstname       string `json:"firstname"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

type loginRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type updateUserRequest struct {
	Lastname    string `json:"lastname"`
	Firstname   string `json:"firstname"`
	Description string `json:"description"`
	ImgProfile  string `json:"imgProfile"`
}

type userResponse struct {
	ID          int64     `json:"id"`
	Lastname    string    `json:"lastname"`
	Firstname   string    `json:"firstname"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	Role        string    `json:"role"`
	ImgProfile  string    `json:"imgProfile"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Lastname:    u.Lastname,
		Firstname:   u.Firstname,
		Email:       u.Email,
		Description: u.Description,
		Role:        string(u.Role),
		ImgProfile:  u.ImgProfile,
		CreatedAt:   u.CreatedAt,
	}
}

// statusForError maps service errors to HTTP statuses. Anything unrecognized
// is a 500 and its detail stays out of the response body.
func statusForError(err error) int {
	switch {
	case errors.Is(err, common.ErrMissingField),
		errors.Is(err, common.ErrInvalidEmailFormat),
		errors.Is(err, common.ErrWeakPassword),
		errors.Is(err, common.ErrPasswordMismatch):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrMalformedToken):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrEmailAlreadyInUse):
		return http.StatusConflict
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) renderError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.auth.Register(c.Request.Context(), req.Lastname, req.Firstname, req.Email, req.Password, req.ConfirmPassword, role)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": toUserResponse(user)})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, token, err := s.auth.Login(c.Request.Context(), req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  toUserResponse(user),
	})
}

func (s *Server) handleVerify(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	claims, err := s.auth.VerifyToken(token)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          claims.UserID,
		"lastname":    claims.Lastname,
		"firstname":   claims.Firstname,
		"email":       claims.Email,
		"description": claims.Description,
		"role":        claims.Role,
		"imgProfile":  claims.ImgProfile,
	})
}

func (s *Server) handleListUsers(c *gin.Context) {
	users, err := s.users.List(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	c.JSON(http.StatusOK, gin.H{"users": out})
}

func userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, false
	}
	return id, true
}

func (s *Server) handleGetUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	user, err := s.users.GetByID(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

func (s *Server) handleUpdateUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := s.users.Update(c.Request.Context(), id, req.Lastname, req.Firstname, req.Description, req.ImgProfile)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

func (s *Server) handleDeleteUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	if err := s.users.Delete(c.Request.Context(), id); err != nil {
		s.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) handleAvatarUploadURL(c *gin.Context) {
	key, url, err := s.avatars.GetPresignedPutURL(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": key, "url": url})
}

func (s *Server) handleAvatarDownloadURL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing key"})
		return
	}

	url, err := s.avatars.GetPresignedGetURL(c.Request.Context(), key)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

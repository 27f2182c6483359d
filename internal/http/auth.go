package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-dashboard/internal/domain"
	"admin-dashboard/internal/service"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
	Profile  struct {
		FirstName  string `json:"firstName"`
		LastName   string `json:"lastName"`
		Phone      string `json:"phone"`
		Department string `json:"department"`
	} `json:"profile"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

type profileRequest struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Avatar     *string `json:"avatar"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
		Profile: domain.Profile{
			FirstName:  req.Profile.FirstName,
			LastName:   req.Profile.LastName,
			Phone:      req.Profile.Phone,
			Department: req.Profile.Department,
		},
	})
	if err != nil {
		failService(c, err, "User not found")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"token":   token,
		"user":    user,
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failService(c, err, "User not found")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

func (h *Handler) getProfile(c *gin.Context) {
	identity, _ := identityFrom(c)

	user, err := h.users.GetByID(c.Request.Context(), identity.ID)
	if err != nil {
		failService(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (h *Handler) updateProfile(c *gin.Context) {
	identity, _ := identityFrom(c)

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), identity.ID, service.ProfilePatch{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Avatar:     req.Avatar,
		Phone:      req.Phone,
		Department: req.Department,
	})
	if err != nil {
		failService(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"user":    user,
	})
}

func (h *Handler) changePassword(c *gin.Context) {
	identity, _ := identityFrom(c)

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	if err := h.users.ChangePassword(c.Request.Context(), identity.ID, req.CurrentPassword, req.NewPassword); err != nil {
		failService(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed successfully"})
}

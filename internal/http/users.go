package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-dashboard/internal/domain"
	"admin-dashboard/internal/repository"
	"admin-dashboard/internal/service"
)

type createUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Profile  struct {
		FirstName  string `json:"firstName"`
		LastName   string `json:"lastName"`
		Phone      string `json:"phone"`
		Department string `json:"department"`
	} `json:"profile"`
}

type updateUserRequest struct {
	Username *string         `json:"username"`
	Email    *string         `json:"email"`
	Profile  *profileRequest `json:"profile"`
	Role     *string         `json:"role"`
	IsActive *bool           `json:"isActive"`
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

func (h *Handler) listUsers(c *gin.Context) {
	page, limit := h.pageParams(c)
	filter := repository.UserFilter{
		Search: c.Query("search"),
		Role:   domain.Role(c.Query("role")),
		Page:   page,
		Limit:  limit,
	}
	if v := c.Query("isActive"); v == "true" || v == "false" {
		active := v == "true"
		filter.IsActive = &active
	}

	users, total, err := h.users.List(c.Request.Context(), filter)
	if err != nil {
		failService(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       users,
		"pagination": paginationBlock(page, limit, total),
	})
}

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	user, generated, err := h.users.Create(c.Request.Context(), service.RegisterInput{
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

	resp := gin.H{
		"success": true,
		"message": "User created successfully",
		"data":    user,
	}
	if generated != "" {
		resp["generatedPassword"] = generated
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) getUser(c *gin.Context) {
	identity, _ := identityFrom(c)
	id := c.Param("id")
	if !identity.IsAdmin() && identity.ID != id {
		fail(c, http.StatusForbidden, "Access denied")
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		failService(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

func (h *Handler) updateUser(c *gin.Context) {
	identity, _ := identityFrom(c)
	id := c.Param("id")
	if !identity.IsAdmin() && identity.ID != id {
		fail(c, http.StatusForbidden, "Not authorized to modify this resource")
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	in := service.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		IsActive: req.IsActive,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		in.Role = &role
	}
	if req.Profile != nil {
		in.Profile = &service.ProfilePatch{
			FirstName:  req.Profile.FirstName,
			LastName:   req.Profile.LastName,
			Avatar:     req.Profile.Avatar,
			Phone:      req.Profile.Phone,
			Department: req.Profile.Department,
		}
	}

	user, err := h.users.Update(c.Request.Context(), id, in, identity.IsAdmin())
	if err != nil {
		failService(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated successfully",
		"data":    user,
	})
}

func (h *Handler) deleteUser(c *gin.Context) {
	identity, _ := identityFrom(c)

	if err := h.users.Deactivate(c.Request.Context(), c.Param("id"), identity.ID); err != nil {
		failService(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}

func (h *Handler) resetUserPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		failBinding(c, err)
		return
	}

	generated, err := h.users.ResetPassword(c.Request.Context(), c.Param("id"), req.Password)
	if err != nil {
		failService(c, err, "User not found")
		return
	}

	resp := gin.H{"success": true, "message": "Password reset successfully"}
	if generated != "" {
		resp["newPassword"] = generated
	}
	c.JSON(http.StatusOK, resp)
}

// updateUserSettings is strictly self-service; admins cannot write
// another account's settings.
func (h *Handler) updateUserSettings(c *gin.Context) {
	identity, _ := identityFrom(c)
	if c.Param("id") != identity.ID {
		fail(c, http.StatusForbidden, "Not authorized to update these settings")
		return
	}

	var settings json.RawMessage
	if err := c.ShouldBindJSON(&settings); err != nil {
		failBinding(c, err)
		return
	}

	user, err := h.users.UpdateSettings(c.Request.Context(), identity.ID, settings)
	if err != nil {
		failService(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Settings updated successfully",
		"data":    user,
	})
}

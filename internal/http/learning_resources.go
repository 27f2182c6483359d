package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-dashboard/internal/domain"
	"admin-dashboard/internal/repository"
	"admin-dashboard/internal/service"
)

type createLearningResourceRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	URL         string   `json:"url" binding:"required,url"`
	Tags        []string `json:"tags"`
	Difficulty  string   `json:"difficulty"`
}

type updateLearningResourceRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	URL         *string  `json:"url"`
	Tags        []string `json:"tags"`
	Difficulty  *string  `json:"difficulty"`
}

func (h *Handler) listLearningResources(c *gin.Context) {
	page, limit := h.pageParams(c)
	filter := repository.LearningResourceFilter{
		Category:   domain.ResourceCategory(c.Query("category")),
		Difficulty: domain.Difficulty(c.Query("difficulty")),
		Search:     c.Query("search"),
		Page:       page,
		Limit:      limit,
	}

	resources, total, err := h.learning.List(c.Request.Context(), filter)
	if err != nil {
		failService(c, err, "Resource not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       resources,
		"pagination": paginationBlock(page, limit, total),
	})
}

func (h *Handler) getLearningResource(c *gin.Context) {
	resource, err := h.learning.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failService(c, err, "Resource not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": resource})
}

func (h *Handler) createLearningResource(c *gin.Context) {
	identity, _ := identityFrom(c)

	var req createLearningResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	resource, err := h.learning.Create(c.Request.Context(), identity, service.CreateLearningResourceInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    domain.ResourceCategory(req.Category),
		URL:         req.URL,
		Tags:        req.Tags,
		Difficulty:  domain.Difficulty(req.Difficulty),
	})
	if err != nil {
		failService(c, err, "Resource not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Resource created successfully",
		"data":    resource,
	})
}

func (h *Handler) updateLearningResource(c *gin.Context) {
	identity, _ := identityFrom(c)

	var req updateLearningResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	in := service.UpdateLearningResourceInput{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Tags:        req.Tags,
	}
	if req.Category != nil {
		category := domain.ResourceCategory(*req.Category)
		in.Category = &category
	}
	if req.Difficulty != nil {
		difficulty := domain.Difficulty(*req.Difficulty)
		in.Difficulty = &difficulty
	}

	resource, err := h.learning.Update(c.Request.Context(), c.Param("id"), identity, in)
	if err != nil {
		failService(c, err, "Resource not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Resource updated successfully",
		"data":    resource,
	})
}

func (h *Handler) deleteLearningResource(c *gin.Context) {
	if err := h.learning.Delete(c.Request.Context(), c.Param("id")); err != nil {
		failService(c, err, "Resource not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Resource deleted successfully"})
}

func (h *Handler) likeLearningResource(c *gin.Context) {
	likes, err := h.learning.Like(c.Request.Context(), c.Param("id"))
	if err != nil {
		failService(c, err, "Resource not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Resource liked",
		"data":    gin.H{"likes": likes},
	})
}

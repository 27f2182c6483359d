package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-dashboard/internal/domain"
	"admin-dashboard/internal/repository"
	"admin-dashboard/internal/service"
)

type createToolRequest struct {
	ToolName         string   `json:"toolName" binding:"required"`
	Description      string   `json:"description"`
	Category         string   `json:"category" binding:"required"`
	OfficialURL      string   `json:"officialUrl" binding:"required,url"`
	DocumentationURL string   `json:"documentationUrl"`
	LogoURL          string   `json:"logoUrl"`
	Tags             []string `json:"tags"`
	TechStack        []string `json:"techStack"`
	Pricing          string   `json:"pricing"`
	Features         []string `json:"features"`
	UseCases         []string `json:"useCases"`
	Rating           int      `json:"rating"`
}

type updateToolRequest struct {
	ToolName         *string  `json:"toolName"`
	Description      *string  `json:"description"`
	Category         *string  `json:"category"`
	OfficialURL      *string  `json:"officialUrl"`
	DocumentationURL *string  `json:"documentationUrl"`
	LogoURL          *string  `json:"logoUrl"`
	Tags             []string `json:"tags"`
	TechStack        []string `json:"techStack"`
	Pricing          *string  `json:"pricing"`
	Features         []string `json:"features"`
	UseCases         []string `json:"useCases"`
	Rating           *int     `json:"rating"`
}

func (h *Handler) listTools(c *gin.Context) {
	page, limit := h.pageParams(c)
	filter := repository.ToolResourceFilter{
		Category: domain.ToolCategory(c.Query("category")),
		Pricing:  domain.Pricing(c.Query("pricing")),
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
	}

	tools, total, err := h.tools.List(c.Request.Context(), filter)
	if err != nil {
		failService(c, err, "Tool not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       tools,
		"pagination": paginationBlock(page, limit, total),
	})
}

func (h *Handler) getTool(c *gin.Context) {
	tool, err := h.tools.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failService(c, err, "Tool not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": tool})
}

func (h *Handler) createTool(c *gin.Context) {
	identity, _ := identityFrom(c)

	var req createToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	tool, err := h.tools.Create(c.Request.Context(), identity, service.CreateToolResourceInput{
		ToolName:         req.ToolName,
		Description:      req.Description,
		Category:         domain.ToolCategory(req.Category),
		OfficialURL:      req.OfficialURL,
		DocumentationURL: req.DocumentationURL,
		LogoURL:          req.LogoURL,
		Tags:             req.Tags,
		TechStack:        req.TechStack,
		Pricing:          domain.Pricing(req.Pricing),
		Features:         req.Features,
		UseCases:         req.UseCases,
		Rating:           req.Rating,
	})
	if err != nil {
		failService(c, err, "Tool not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Tool created successfully",
		"data":    tool,
	})
}

func (h *Handler) updateTool(c *gin.Context) {
	identity, _ := identityFrom(c)

	var req updateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	in := service.UpdateToolResourceInput{
		ToolName:         req.ToolName,
		Description:      req.Description,
		OfficialURL:      req.OfficialURL,
		DocumentationURL: req.DocumentationURL,
		LogoURL:          req.LogoURL,
		Tags:             req.Tags,
		TechStack:        req.TechStack,
		Features:         req.Features,
		UseCases:         req.UseCases,
		Rating:           req.Rating,
	}
	if req.Category != nil {
		category := domain.ToolCategory(*req.Category)
		in.Category = &category
	}
	if req.Pricing != nil {
		pricing := domain.Pricing(*req.Pricing)
		in.Pricing = &pricing
	}

	tool, err := h.tools.Update(c.Request.Context(), c.Param("id"), identity, in)
	if err != nil {
		failService(c, err, "Tool not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tool updated successfully",
		"data":    tool,
	})
}

func (h *Handler) deleteTool(c *gin.Context) {
	if err := h.tools.Delete(c.Request.Context(), c.Param("id")); err != nil {
		failService(c, err, "Tool not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Tool deleted successfully"})
}

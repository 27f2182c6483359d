package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"admin-dashboard/internal/domain"
	"admin-dashboard/internal/repository"
	"admin-dashboard/internal/service"
)

type createProjectRequest struct {
	ProjectName      string              `json:"projectName" binding:"required"`
	Description      string              `json:"description"`
	Status           string              `json:"status"`
	StartDate        *time.Time          `json:"startDate"`
	EndDate          *time.Time          `json:"endDate"`
	ProjectURL       string              `json:"projectUrl"`
	RepositoryURL    string              `json:"repositoryUrl"`
	DocumentationURL string              `json:"documentationUrl"`
	Technologies     []string            `json:"technologies"`
	TeamMembers      []domain.TeamMember `json:"teamMembers"`
	Manager          *domain.MentorRef   `json:"manager"`
}

type updateProjectRequest struct {
	ProjectName      *string             `json:"projectName"`
	Description      *string             `json:"description"`
	Status           *string             `json:"status"`
	StartDate        *time.Time          `json:"startDate"`
	EndDate          *time.Time          `json:"endDate"`
	ProjectURL       *string             `json:"projectUrl"`
	RepositoryURL    *string             `json:"repositoryUrl"`
	DocumentationURL *string             `json:"documentationUrl"`
	Technologies     []string            `json:"technologies"`
	TeamMembers      []domain.TeamMember `json:"teamMembers"`
	Manager          *domain.MentorRef   `json:"manager"`
}

func (h *Handler) listProjects(c *gin.Context) {
	page, limit := h.pageParams(c)
	filter := repository.ProjectFilter{
		Status: domain.ProjectStatus(c.Query("status")),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	projects, total, err := h.projects.List(c.Request.Context(), filter)
	if err != nil {
		failService(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       projects,
		"pagination": paginationBlock(page, limit, total),
	})
}

func (h *Handler) getProject(c *gin.Context) {
	project, err := h.projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failService(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": project})
}

func (h *Handler) createProject(c *gin.Context) {
	identity, _ := identityFrom(c)

	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	project, err := h.projects.Create(c.Request.Context(), identity, service.CreateProjectInput{
		ProjectName:      req.ProjectName,
		Description:      req.Description,
		Status:           domain.ProjectStatus(req.Status),
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		ProjectURL:       req.ProjectURL,
		RepositoryURL:    req.RepositoryURL,
		DocumentationURL: req.DocumentationURL,
		Technologies:     req.Technologies,
		TeamMembers:      req.TeamMembers,
		Manager:          req.Manager,
	})
	if err != nil {
		failService(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Project created successfully",
		"data":    project,
	})
}

func (h *Handler) updateProject(c *gin.Context) {
	identity, _ := identityFrom(c)

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	in := service.UpdateProjectInput{
		ProjectName:      req.ProjectName,
		Description:      req.Description,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		ProjectURL:       req.ProjectURL,
		RepositoryURL:    req.RepositoryURL,
		DocumentationURL: req.DocumentationURL,
		Technologies:     req.Technologies,
		TeamMembers:      req.TeamMembers,
		Manager:          req.Manager,
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		in.Status = &status
	}

	project, err := h.projects.Update(c.Request.Context(), c.Param("id"), identity, in)
	if err != nil {
		failService(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project updated successfully",
		"data":    project,
	})
}

func (h *Handler) deleteProject(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		failService(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted successfully"})
}

package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"admin-dashboard/internal/domain"
	"admin-dashboard/internal/repository"
	"admin-dashboard/internal/service"
)

type createInternRequest struct {
	PersonalInfo      domain.PersonalInfo      `json:"personalInfo" binding:"required"`
	InternshipDetails domain.InternshipDetails `json:"internshipDetails" binding:"required"`
	Skills            domain.Skills            `json:"skills"`
}

type updateInternRequest struct {
	PersonalInfo      *domain.PersonalInfo      `json:"personalInfo"`
	InternshipDetails *domain.InternshipDetails `json:"internshipDetails"`
	Skills            *domain.Skills            `json:"skills"`
	Performance       *domain.Performance       `json:"performance"`
	Documents         []domain.InternDocument   `json:"documents"`
}

type dailyCommentRequest struct {
	Date            *time.Time `json:"date"`
	Comment         string     `json:"comment" binding:"required"`
	TaskDescription string     `json:"taskDescription"`
	HoursWorked     float64    `json:"hoursWorked"`
	Status          string     `json:"status"`
}

type meetingNoteRequest struct {
	Date            *time.Time `json:"date"`
	Title           string     `json:"title"`
	Agenda          string     `json:"agenda"`
	Notes           string     `json:"notes" binding:"required"`
	Attendees       []string   `json:"attendees"`
	ActionItems     []string   `json:"actionItems"`
	NextMeetingDate *time.Time `json:"nextMeetingDate"`
}

func (h *Handler) listInterns(c *gin.Context) {
	page, limit := h.pageParams(c)
	filter := repository.InternFilter{
		Status:     domain.InternshipStatus(c.Query("status")),
		Department: c.Query("department"),
		Search:     c.Query("search"),
		Page:       page,
		Limit:      limit,
	}

	interns, total, err := h.interns.List(c.Request.Context(), filter)
	if err != nil {
		failService(c, err, "Intern not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       interns,
		"pagination": paginationBlock(page, limit, total),
	})
}

func (h *Handler) getIntern(c *gin.Context) {
	intern, err := h.interns.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failService(c, err, "Intern not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": intern})
}

func (h *Handler) createIntern(c *gin.Context) {
	identity, _ := identityFrom(c)

	var req createInternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	intern, err := h.interns.Create(c.Request.Context(), identity, service.CreateInternInput{
		PersonalInfo:      req.PersonalInfo,
		InternshipDetails: req.InternshipDetails,
		Skills:            req.Skills,
	})
	if err != nil {
		failService(c, err, "Intern not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Intern created successfully",
		"data":    intern,
	})
}

func (h *Handler) updateIntern(c *gin.Context) {
	identity, _ := identityFrom(c)

	var req updateInternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	intern, err := h.interns.Update(c.Request.Context(), c.Param("id"), identity, service.UpdateInternInput{
		PersonalInfo:      req.PersonalInfo,
		InternshipDetails: req.InternshipDetails,
		Skills:            req.Skills,
		Performance:       req.Performance,
		Documents:         req.Documents,
	})
	if err != nil {
		failService(c, err, "Intern not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Intern updated successfully",
		"data":    intern,
	})
}

func (h *Handler) deleteIntern(c *gin.Context) {
	if err := h.interns.Delete(c.Request.Context(), c.Param("id")); err != nil {
		failService(c, err, "Intern not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Intern deleted successfully"})
}

func (h *Handler) addInternComment(c *gin.Context) {
	identity, _ := identityFrom(c)

	var req dailyCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	intern, err := h.interns.AddDailyComment(c.Request.Context(), c.Param("id"), identity, service.DailyCommentInput{
		Date:            req.Date,
		Comment:         req.Comment,
		TaskDescription: req.TaskDescription,
		HoursWorked:     req.HoursWorked,
		Status:          req.Status,
	})
	if err != nil {
		failService(c, err, "Intern not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Comment added successfully",
		"data":    intern,
	})
}

func (h *Handler) addInternMeetingNote(c *gin.Context) {
	identity, _ := identityFrom(c)

	var req meetingNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	intern, err := h.interns.AddMeetingNote(c.Request.Context(), c.Param("id"), identity, service.MeetingNoteInput{
		Date:            req.Date,
		Title:           req.Title,
		Agenda:          req.Agenda,
		Notes:           req.Notes,
		Attendees:       req.Attendees,
		ActionItems:     req.ActionItems,
		NextMeetingDate: req.NextMeetingDate,
	})
	if err != nil {
		failService(c, err, "Intern not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Meeting note added successfully",
		"data":    intern,
	})
}

func (h *Handler) addInternProject(c *gin.Context) {
	identity, _ := identityFrom(c)

	var project domain.InternProject
	if err := c.ShouldBindJSON(&project); err != nil {
		failBinding(c, err)
		return
	}

	intern, err := h.interns.AddProject(c.Request.Context(), c.Param("id"), identity, project)
	if err != nil {
		failService(c, err, "Intern not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Project added successfully",
		"data":    intern,
	})
}

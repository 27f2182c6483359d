package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"admin-dashboard/internal/service"
)

// fail writes the standard failure envelope.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// failBinding turns a request binding error into a field-level error
// list when the validator produced one, and a plain 400 otherwise.
func failBinding(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, gin.H{
				"field":   strings.ToLower(fe.Field()[:1]) + fe.Field()[1:],
				"message": "failed on the '" + fe.Tag() + "' rule",
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "errors": fields})
		return
	}
	fail(c, http.StatusBadRequest, err.Error())
}

// failService maps domain errors onto HTTP statuses. notFound is the
// resource-specific message used for absent records.
func failService(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		fail(c, http.StatusNotFound, notFound)
	case errors.Is(err, service.ErrUserExists):
		fail(c, http.StatusConflict, "User with given email or username already exists")
	case errors.Is(err, service.ErrInternExists):
		fail(c, http.StatusConflict, "Intern with this email already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrAccountDeactivated):
		fail(c, http.StatusForbidden, "Account is deactivated")
	case errors.Is(err, service.ErrWrongPassword):
		fail(c, http.StatusBadRequest, "Current password is incorrect")
	case errors.Is(err, service.ErrSelfDeactivation):
		fail(c, http.StatusBadRequest, "Cannot delete your own account")
	case errors.Is(err, service.ErrInvalidToken):
		fail(c, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, service.ErrValidation):
		fail(c, http.StatusBadRequest, err.Error())
	default:
		fail(c, http.StatusInternalServerError, "Internal server error")
	}
}

// paginationBlock mirrors the list envelope the frontend paginates on.
func paginationBlock(page, limit, total int) gin.H {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return gin.H{
		"currentPage":  page,
		"totalPages":   totalPages,
		"totalItems":   total,
		"itemsPerPage": limit,
	}
}

// pageParams reads page/limit query parameters, applying the configured
// default and clamping limit to the configured maximum.
func (h *Handler) pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = h.defaultLimit
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}
	return page, limit
}

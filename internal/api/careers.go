package api

import (
	"errors"
	"net/http"
	"strings"

	"leadgate/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CareerHandler struct {
	db *gorm.DB
}

func NewCareerHandler(db *gorm.DB) *CareerHandler {
	return &CareerHandler{db: db}
}

// GetApplications lists career applications. Exactly one filter is
// honored per request, in precedence order: status, then role, then
// limit. With no filters the 50 most recent are returned.
func (h *CareerHandler) GetApplications(c *gin.Context) {
	query := h.db.Model(&models.CareerApplication{}).Order("created_at DESC")

	switch {
	case c.Query("status") != "":
		status := c.Query("status")
		if _, known := models.CareerTransitions[status]; !known {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown status filter"})
			return
		}
		query = query.Where("status = ?", status)
	case c.Query("role") != "":
		query = query.Where("role_applied = ?", c.Query("role"))
	default:
		limit, err := positiveIntQuery(c, "limit", 50)
		if err != nil || limit > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid limit parameter"})
			return
		}
		query = query.Limit(limit)
	}

	var apps []models.CareerApplication
	if err := query.Find(&apps).Error; err != nil {
		writeDBError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(apps),
		"data":    apps,
	})
}

type createCareerRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	RoleApplied string `json:"roleApplied"`
}

// CreateApplication handles POST /api/applications. The (email, role)
// unique index is the duplicate guard; a violation maps to 409.
func (h *CareerHandler) CreateApplication(c *gin.Context) {
	var req createCareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	details := map[string]string{}
	if strings.TrimSpace(req.FullName) == "" {
		details["fullName"] = "Full name is required"
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	switch {
	case email == "":
		details["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		details["email"] = "Email is not valid"
	}
	if strings.TrimSpace(req.Phone) == "" {
		details["phone"] = "Phone is required"
	}
	if strings.TrimSpace(req.RoleApplied) == "" {
		details["roleApplied"] = "Role is required"
	}
	if len(details) > 0 {
		writeValidationError(c, details)
		return
	}

	app := models.CareerApplication{
		FullName:    strings.TrimSpace(req.FullName),
		Email:       email,
		Phone:       strings.TrimSpace(req.Phone),
		RoleApplied: strings.TrimSpace(req.RoleApplied),
		Status:      models.CareerStatusPending,
	}

	if err := h.db.Create(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "An application for this role already exists"})
			return
		}
		writeDBError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"id":          app.ID,
			"fullName":    app.FullName,
			"email":       app.Email,
			"roleApplied": app.RoleApplied,
			"status":      app.Status,
			"createdAt":   app.CreatedAt,
		},
	})
}

type updateStatusRequest struct {
	ID     *uint  `json:"id"`
	Status string `json:"status"`
}

// UpdateStatus handles PUT /api/applications. Only moves allowed by the
// career transition table are accepted.
func (h *CareerHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if req.ID == nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "id and status are required"})
		return
	}

	var app models.CareerApplication
	if err := h.db.First(&app, *req.ID).Error; err != nil {
		writeDBError(c, err)
		return
	}

	if err := models.CareerTransitions.CheckTransition(app.Status, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	app.Status = req.Status
	if err := h.db.Save(&app).Error; err != nil {
		writeDBError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": app})
}

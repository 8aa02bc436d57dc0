package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"leadgate/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InternshipHandler struct {
	db *gorm.DB
}

func NewInternshipHandler(db *gorm.DB) *InternshipHandler {
	return &InternshipHandler{db: db}
}

type groupCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// GetApplications lists internship applications. stats=domain and
// stats=status take priority and return grouped counts; otherwise one
// filter applies, in precedence order: status, domain, upcoming=true,
// then the 50 most recent.
func (h *InternshipHandler) GetApplications(c *gin.Context) {
	switch c.Query("stats") {
	case "domain":
		h.stats(c, "domain")
		return
	case "status":
		h.stats(c, "status")
		return
	case "":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown stats mode"})
		return
	}

	query := h.db.Model(&models.InternshipApplication{}).Order("created_at DESC")

	switch {
	case c.Query("status") != "":
		status := c.Query("status")
		if _, known := models.InternshipTransitions[status]; !known {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown status filter"})
			return
		}
		query = query.Where("status = ?", status)
	case c.Query("domain") != "":
		domain := c.Query("domain")
		if !models.ValidDomain(domain) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown domain filter"})
			return
		}
		query = query.Where("domain = ?", domain)
	case c.Query("upcoming") == "true":
		query = query.Where("start_date > ?", time.Now())
	default:
		query = query.Limit(50)
	}

	var apps []models.InternshipApplication
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

func (h *InternshipHandler) stats(c *gin.Context, column string) {
	var rows []groupCount
	err := h.db.Model(&models.InternshipApplication{}).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		writeDBError(c, err)
		return
	}

	var total int64
	for _, r := range rows {
		total += r.Count
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"groupBy": column,
		"total":   total,
		"data":    rows,
	})
}

type createInternshipRequest struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Domain    string `json:"domain"`
	College   string `json:"college"`
	Year      string `json:"year"`
	Branch    string `json:"branch"`
	City      string `json:"city"`
	Mode      string `json:"mode"`
	StartDate string `json:"startDate"`
	Duration  string `json:"duration"`
	// Pointer so an explicit 0 is distinguishable from a missing price.
	Price   *int   `json:"price"`
	Message string `json:"message"`
}

// CreateApplication handles POST /api/internships. Price 0 is legal;
// only a missing price is rejected. The (email, domain) unique index is
// the duplicate guard.
func (h *InternshipHandler) CreateApplication(c *gin.Context) {
	var req createInternshipRequest
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
	switch {
	case req.Domain == "":
		details["domain"] = "Domain is required"
	case !models.ValidDomain(req.Domain):
		details["domain"] = "Domain is not one of the offered tracks"
	}
	if req.Price == nil {
		details["price"] = "Price is required"
	} else if *req.Price < 0 {
		details["price"] = "Price cannot be negative"
	}

	mode := req.Mode
	if mode == "" {
		mode = "Remote"
	}
	switch mode {
	case "Remote", "On-site", "Hybrid":
	default:
		details["mode"] = "Mode must be Remote, On-site or Hybrid"
	}

	var startDate *time.Time
	if req.StartDate != "" {
		t, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			details["startDate"] = "Start date must be YYYY-MM-DD"
		} else {
			startDate = &t
		}
	}

	if len(details) > 0 {
		writeValidationError(c, details)
		return
	}

	duration := strings.TrimSpace(req.Duration)
	if duration == "" {
		duration = "8 weeks"
	}

	app := models.InternshipApplication{
		FullName:  strings.TrimSpace(req.FullName),
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		Domain:    req.Domain,
		College:   strings.TrimSpace(req.College),
		Year:      strings.TrimSpace(req.Year),
		Branch:    strings.TrimSpace(req.Branch),
		City:      strings.TrimSpace(req.City),
		Mode:      mode,
		StartDate: startDate,
		Duration:  duration,
		Price:     *req.Price,
		Message:   strings.TrimSpace(req.Message),
		Status:    models.InternshipStatusPending,
	}

	if err := h.db.Create(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "An application for this domain already exists"})
			return
		}
		writeDBError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"id":                 app.ID,
			"fullName":           app.FullName,
			"email":              app.Email,
			"domain":             app.Domain,
			"mode":               app.Mode,
			"duration":           app.Duration,
			"status":             app.Status,
			"formattedPrice":     app.FormattedPrice(),
			"formattedStartDate": app.FormattedStartDate(),
			"createdAt":          app.CreatedAt,
		},
	})
}

// UpdateStatus handles PUT /api/internships with the same contract as
// the career PUT, against the internship transition table.
func (h *InternshipHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if req.ID == nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "id and status are required"})
		return
	}

	var app models.InternshipApplication
	if err := h.db.First(&app, *req.ID).Error; err != nil {
		writeDBError(c, err)
		return
	}

	if err := models.InternshipTransitions.CheckTransition(app.Status, req.Status); err != nil {
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

package api

import (
	"fmt"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"leadgate/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ContactHandler struct {
	db *gorm.DB
}

func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{db: db}
}

type createContactRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Subject         string `json:"subject"`
	Message         string `json:"message"`
	Source          string `json:"source"`
}

// validate applies the public form's contract. Phone is accepted but not
// required here: the form never enforced it, only the stored schema did.
func (r *createContactRequest) validate() map[string]string {
	details := map[string]string{}

	name := strings.TrimSpace(r.FullName)
	switch {
	case name == "":
		details["fullName"] = "Full name is required"
	case len(name) < 2 || len(name) > 100:
		details["fullName"] = "Full name must be between 2 and 100 characters"
	}

	email := strings.ToLower(strings.TrimSpace(r.Email))
	switch {
	case email == "":
		details["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		details["email"] = "Email is not valid"
	}

	msg := strings.TrimSpace(r.Message)
	switch {
	case msg == "":
		details["message"] = "Message is required"
	case len(msg) < 10 || len(msg) > 2000:
		details["message"] = "Message must be between 10 and 2000 characters"
	}

	if len(r.Subject) > 200 {
		details["subject"] = "Subject must be at most 200 characters"
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

// CreateContact handles POST /api/contact.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req createContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	if details := req.validate(); details != nil {
		writeValidationError(c, details)
		return
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = "Contact Page"
	}

	contact := models.Contact{
		Reference:       uuid.NewString(),
		FullName:        strings.TrimSpace(req.FullName),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           strings.TrimSpace(req.Phone),
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Subject:         strings.TrimSpace(req.Subject),
		Message:         strings.TrimSpace(req.Message),
		Source:          source,
		Status:          models.ContactStatusNew,
	}

	if err := h.db.Create(&contact).Error; err != nil {
		writeDBError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"id":        contact.ID,
			"reference": contact.Reference,
			"fullName":  contact.FullName,
			"email":     contact.Email,
			"createdAt": contact.CreatedAt,
		},
	})
}

// GetContacts returns the 50 most recent contacts, newest first.
func (h *ContactHandler) GetContacts(c *gin.Context) {
	var contacts []models.Contact
	if err := h.db.Order("created_at DESC").Limit(50).Find(&contacts).Error; err != nil {
		writeDBError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(contacts),
		"data":    contacts,
	})
}

// AdminListContacts handles GET /api/admin/contacts with page/limit/source.
func (h *ContactHandler) AdminListContacts(c *gin.Context) {
	page, err := positiveIntQuery(c, "page", 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid page parameter"})
		return
	}
	limit, err := positiveIntQuery(c, "limit", 20)
	if err != nil || limit > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid limit parameter"})
		return
	}

	query := h.db.Model(&models.Contact{})
	if source := c.Query("source"); source != "" {
		query = query.Where("source = ?", source)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		writeDBError(c, err)
		return
	}

	var contacts []models.Contact
	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&contacts).Error; err != nil {
		writeDBError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    contacts,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// DeleteContact handles DELETE with an id query parameter.
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Contact id is required"})
		return
	}

	result := h.db.Delete(&models.Contact{}, "id = ?", id)
	if result.Error != nil {
		writeDBError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Contact not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Contact deleted"})
}

// ExportContacts streams every contact as a CSV download.
func (h *ContactHandler) ExportContacts(c *gin.Context) {
	var contacts []models.Contact
	if err := h.db.Order("created_at DESC").Find(&contacts).Error; err != nil {
		writeDBError(c, err)
		return
	}

	var b strings.Builder
	b.WriteString("Reference,Full Name,Email,Phone,Subject,Source,Status,Created At\n")
	for _, ct := range contacts {
		b.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s,%s,%s\n",
			ct.Reference, csvEscape(ct.FullName), ct.Email, ct.Phone,
			csvEscape(ct.Subject), csvEscape(ct.Source), ct.Status,
			ct.CreatedAt.Format("2006-01-02 15:04:05")))
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=contacts.csv")
	c.String(http.StatusOK, b.String())
}

func csvEscape(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// positiveIntQuery parses a query parameter as a positive integer,
// falling back to def when absent.
func positiveIntQuery(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}

package models

import (
	"fmt"
	"strings"
	"time"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Reference       string    `gorm:"type:varchar(36);uniqueIndex" json:"reference"`
	FullName        string    `gorm:"type:varchar(100);not null" json:"fullName"`
	Email           string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone           string    `gorm:"type:varchar(30)" json:"phone"`
	AppointmentDate string    `gorm:"type:varchar(30)" json:"appointmentDate,omitempty"`
	AppointmentTime string    `gorm:"type:varchar(30)" json:"appointmentTime,omitempty"`
	Subject         string    `gorm:"type:varchar(200)" json:"subject,omitempty"`
	Message         string    `gorm:"type:text;not null" json:"message"`
	Source          string    `gorm:"type:varchar(100);default:'Contact Page'" json:"source"`
	Status          string    `gorm:"type:varchar(20);default:'New';index" json:"status"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index:,sort:desc" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Contact) TableName() string {
	return "contacts"
}

// CareerApplication is a submission for an open role.
// The (email, role_applied) pair is unique: one application per role per person.
type CareerApplication struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FullName    string    `gorm:"type:varchar(100);not null" json:"fullName"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_career_email_role" json:"email"`
	Phone       string    `gorm:"type:varchar(30);not null" json:"phone"`
	RoleApplied string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_career_email_role;index" json:"roleApplied"`
	Status      string    `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:,sort:desc" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (CareerApplication) TableName() string {
	return "career_applications"
}

// InternshipDomains are the only tracks an internship application may target.
var InternshipDomains = []string{
	"Web Development",
	"App Development",
	"AI & Data Science",
	"Digital Marketing",
	"Graphic Design",
	"Content Writing",
	"Video Editing",
	"UI/UX Design",
}

// ValidDomain reports whether domain is one of InternshipDomains.
func ValidDomain(domain string) bool {
	for _, d := range InternshipDomains {
		if d == domain {
			return true
		}
	}
	return false
}

// InternshipApplication is a submission for a paid internship track.
// The (email, domain) pair is unique: one application per domain per person.
type InternshipApplication struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	FullName  string     `gorm:"type:varchar(100);not null" json:"fullName"`
	Email     string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_internship_email_domain" json:"email"`
	Phone     string     `gorm:"type:varchar(30);not null" json:"phone"`
	Domain    string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_internship_email_domain;index" json:"domain"`
	College   string     `gorm:"type:varchar(200)" json:"college,omitempty"`
	Year      string     `gorm:"type:varchar(20)" json:"year,omitempty"`
	Branch    string     `gorm:"type:varchar(100)" json:"branch,omitempty"`
	City      string     `gorm:"type:varchar(100)" json:"city,omitempty"`
	Mode      string     `gorm:"type:varchar(20);default:'Remote'" json:"mode"`
	StartDate *time.Time `json:"startDate,omitempty"`
	Duration  string     `gorm:"type:varchar(50);default:'8 weeks'" json:"duration"`
	Price     int        `gorm:"not null;default:9999" json:"price"`
	Message   string     `gorm:"type:text" json:"message,omitempty"`
	Status    string     `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index:,sort:desc" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (InternshipApplication) TableName() string {
	return "internship_applications"
}

// FormattedPrice renders the price in rupees with Indian digit grouping,
// e.g. 9999 -> "₹9,999" and 125000 -> "₹1,25,000".
func (a InternshipApplication) FormattedPrice() string {
	return "₹" + groupIndian(a.Price)
}

// FormattedStartDate renders the start date as "2 January 2006",
// or "To be decided" when no date was given.
func (a InternshipApplication) FormattedStartDate() string {
	if a.StartDate == nil {
		return "To be decided"
	}
	return a.StartDate.Format("2 January 2006")
}

// groupIndian inserts commas in the Indian numbering style: the last
// three digits form one group, every two digits after that another.
func groupIndian(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(append(groups, tail), ",")
	}
	if neg {
		return "-" + s
	}
	return s
}

// AdminUser is a back-office account able to mint API tokens.
type AdminUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UUID         string    `gorm:"type:varchar(36);uniqueIndex" json:"uuid"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(100);not null" json:"-"`
	Role         string    `gorm:"type:varchar(20);default:'Admin'" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

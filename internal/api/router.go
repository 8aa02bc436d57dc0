package api

import (
	"leadgate/internal/auth"
	"leadgate/internal/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires every route onto a gin engine. The database handle and
// token manager are passed through to the handlers; nothing here is
// package-level state.
func NewRouter(db *gorm.DB, cfg *config.Config, tokens *auth.TokenManager) *gin.Engine {
	r := gin.Default()
	r.Use(CORS())

	contactHandler := NewContactHandler(db)
	careerHandler := NewCareerHandler(db)
	internshipHandler := NewInternshipHandler(db)
	healthHandler := NewHealthHandler(cfg)
	authHandler := NewAuthHandler(db, tokens)

	// 3 submissions per minute per IP, bursting to 5.
	submitLimit := NewSubmitLimiter(0.05, 5).Middleware()

	requireAdmin := []gin.HandlerFunc{
		RequireAuth(tokens),
		RequireRole(auth.RoleAdmin, auth.RoleSuperAdmin),
	}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", healthHandler.Health)
		apiGroup.POST("/auth/login", authHandler.Login)

		// Public intake. /api/contact and /api/contacts are aliases.
		apiGroup.POST("/contact", submitLimit, contactHandler.CreateContact)
		apiGroup.POST("/contacts", submitLimit, contactHandler.CreateContact)

		apiGroup.GET("/applications", careerHandler.GetApplications)
		apiGroup.POST("/applications", submitLimit, careerHandler.CreateApplication)
		apiGroup.PUT("/applications", careerHandler.UpdateStatus)

		apiGroup.GET("/internships", internshipHandler.GetApplications)
		apiGroup.POST("/internships", submitLimit, internshipHandler.CreateApplication)
		apiGroup.PUT("/internships", internshipHandler.UpdateStatus)

		// Admin views of the contact inbox.
		apiGroup.GET("/contacts", append(requireAdmin, contactHandler.GetContacts)...)
		apiGroup.DELETE("/contacts", append(requireAdmin, contactHandler.DeleteContact)...)

		adminGroup := apiGroup.Group("/admin", requireAdmin...)
		{
			adminGroup.GET("/contacts", contactHandler.AdminListContacts)
			adminGroup.DELETE("/contacts", contactHandler.DeleteContact)
			adminGroup.GET("/contacts/export", RequireSuperAdmin(), contactHandler.ExportContacts)
		}
	}

	return r
}

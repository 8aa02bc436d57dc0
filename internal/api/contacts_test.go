package api

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"leadgate/internal/auth"
	"leadgate/internal/models"

	"github.com/google/uuid"
)

func TestCreateContact_Success(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "POST", "/api/contact", map[string]any{
		"fullName": "Priya Sharma",
		"email":    "Priya@Example.COM",
		"phone":    "9876543210",
		"message":  "I would like to discuss a project with your team.",
	}, "")

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decode(t, rec)
	data := body["data"].(map[string]any)
	if data["email"] != "priya@example.com" {
		t.Errorf("expected lowercased email, got %v", data["email"])
	}
	if data["reference"] == "" || data["reference"] == nil {
		t.Error("expected a non-empty reference")
	}
	if data["fullName"] != "Priya Sharma" {
		t.Errorf("unexpected fullName %v", data["fullName"])
	}
	for _, unexpected := range []string{"message", "phone", "status"} {
		if _, ok := data[unexpected]; ok {
			t.Errorf("projection should not include %q", unexpected)
		}
	}

	var count int64
	env.db.Model(&models.Contact{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 persisted contact, got %d", count)
	}
}

func TestCreateContact_SourceDefaults(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "POST", "/api/contacts", map[string]any{
		"fullName": "Arun Mehta",
		"email":    "arun@example.com",
		"message":  "Please call me back about the marketing package.",
	}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var contact models.Contact
	if err := env.db.First(&contact).Error; err != nil {
		t.Fatalf("load contact: %v", err)
	}
	if contact.Source != "Contact Page" {
		t.Errorf("expected default source, got %q", contact.Source)
	}
	if contact.Status != models.ContactStatusNew {
		t.Errorf("expected status New, got %q", contact.Status)
	}
}

func TestCreateContact_MissingFields(t *testing.T) {
	base := map[string]any{
		"fullName": "Priya Sharma",
		"email":    "priya@example.com",
		"message":  "I would like to discuss a project with your team.",
	}

	for _, field := range []string{"fullName", "email", "message"} {
		t.Run(field, func(t *testing.T) {
			env := newTestEnv(t)

			payload := map[string]any{}
			for k, v := range base {
				if k != field {
					payload[k] = v
				}
			}

			rec := env.do(t, "POST", "/api/contact", payload, "")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 without %s, got %d", field, rec.Code)
			}

			body := decode(t, rec)
			details := body["details"].(map[string]any)
			if _, ok := details[field]; !ok {
				t.Errorf("expected a detail message for %s, got %v", field, details)
			}

			var count int64
			env.db.Model(&models.Contact{}).Count(&count)
			if count != 0 {
				t.Errorf("no document should be persisted, found %d", count)
			}
		})
	}
}

func TestCreateContact_MessageTooShort(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "POST", "/api/contact", map[string]any{
		"fullName": "Jo",
		"email":    "jo@x.com",
		"message":  "short",
	}, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a 5-char message, got %d", rec.Code)
	}
}

func TestGetContacts_ReturnsMostRecent(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 3; i++ {
		mustCreate(t, env.db, &models.Contact{
			Reference: uuid.NewString(),
			FullName:  fmt.Sprintf("Contact %d", i),
			Email:     fmt.Sprintf("c%d@example.com", i),
			Message:   "A long enough message body.",
			Source:    "Contact Page",
			Status:    models.ContactStatusNew,
		})
	}

	token := env.adminToken(t, auth.RoleAdmin)
	rec := env.do(t, "GET", "/api/contacts", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decode(t, rec)
	if got := body["count"].(float64); got != 3 {
		t.Errorf("expected count 3, got %v", got)
	}
}

func TestAdminListContacts_Pagination(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 5; i++ {
		source := "Contact Page"
		if i%2 == 0 {
			source = "Landing Page"
		}
		mustCreate(t, env.db, &models.Contact{
			Reference: uuid.NewString(),
			FullName:  fmt.Sprintf("Contact %d", i),
			Email:     fmt.Sprintf("c%d@example.com", i),
			Message:   "A long enough message body.",
			Source:    source,
			Status:    models.ContactStatusNew,
		})
	}

	token := env.adminToken(t, auth.RoleAdmin)

	rec := env.do(t, "GET", "/api/admin/contacts?page=1&limit=2", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decode(t, rec)
	pagination := body["pagination"].(map[string]any)
	if pagination["total"].(float64) != 5 {
		t.Errorf("expected total 5, got %v", pagination["total"])
	}
	if pagination["pages"].(float64) != 3 {
		t.Errorf("expected pages=ceil(5/2)=3, got %v", pagination["pages"])
	}
	if n := len(body["data"].([]any)); n != 2 {
		t.Errorf("expected 2 rows on page 1, got %d", n)
	}

	rec = env.do(t, "GET", "/api/admin/contacts?source=Landing+Page", nil, token)
	body = decode(t, rec)
	if got := body["pagination"].(map[string]any)["total"].(float64); got != 3 {
		t.Errorf("expected 3 landing-page contacts, got %v", got)
	}

	rec = env.do(t, "GET", "/api/admin/contacts?page=0", nil, token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for page=0, got %d", rec.Code)
	}
}

func TestDeleteContact(t *testing.T) {
	env := newTestEnv(t)
	contact := mustCreate(t, env.db, &models.Contact{
		Reference: uuid.NewString(),
		FullName:  "To Delete",
		Email:     "delete@example.com",
		Message:   "A long enough message body.",
		Source:    "Contact Page",
		Status:    models.ContactStatusNew,
	})

	token := env.adminToken(t, auth.RoleAdmin)

	rec := env.do(t, "DELETE", "/api/contacts", nil, token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without id, got %d", rec.Code)
	}

	rec = env.do(t, "DELETE", "/api/contacts?id=9999", nil, token)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", rec.Code)
	}

	rec = env.do(t, "DELETE", fmt.Sprintf("/api/contacts?id=%d", contact.ID), nil, token)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 on delete, got %d", rec.Code)
	}

	var count int64
	env.db.Model(&models.Contact{}).Count(&count)
	if count != 0 {
		t.Errorf("contact should be gone, found %d", count)
	}
}

func TestExportContacts_RoleGate(t *testing.T) {
	env := newTestEnv(t)
	mustCreate(t, env.db, &models.Contact{
		Reference: uuid.NewString(),
		FullName:  "Export Me",
		Email:     "export@example.com",
		Message:   "A long enough message body.",
		Source:    "Contact Page",
		Status:    models.ContactStatusNew,
	})

	rec := env.do(t, "GET", "/api/admin/contacts/export", nil, env.adminToken(t, auth.RoleAdmin))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for Admin, got %d", rec.Code)
	}

	rec = env.do(t, "GET", "/api/admin/contacts/export", nil, env.adminToken(t, auth.RoleSuperAdmin))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for SuperAdmin, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected CSV content type, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "export@example.com") {
		t.Error("expected exported contact in CSV body")
	}
}

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eduhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

func TestGetDashboard(t *testing.T) {
	t.Parallel()
	s := setupTestServer(t)

	admin := models.User{FullName: "Admin One", Email: "admin@eduhub.kr", Password: "x", Role: models.PlatformRoleAdmin}
	s.db.Create(&admin)
	plain := models.User{FullName: "Plain User", Email: "user@eduhub.kr", Password: "x", Role: models.PlatformRoleUser}
	s.db.Create(&plain)

	s.db.Create(&models.Academy{Name: "Seoul Coding Academy"})
	s.db.Create(&models.Inquiry{AcademyName: "A", FullName: "B", Email: "a@b.kr", Phone: "1", Status: models.InquiryStatusPending})
	s.db.Create(&models.Inquiry{AcademyName: "C", FullName: "D", Email: "c@d.kr", Phone: "2", Status: models.InquiryStatusApproved})

	fetchAs := func(t *testing.T, userID uint) map[string]interface{} {
		t.Helper()
		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("userID", userID)
			return c.Next()
		})
		app.Get("/dashboard", s.GetDashboard)

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		var body map[string]interface{}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return body
	}

	t.Run("admin sees inquiry totals", func(t *testing.T) {
		body := fetchAs(t, admin.ID)
		if body["role"] != "admin" {
			t.Errorf("expected admin role, got %v", body["role"])
		}
		if body["academies"] != float64(1) {
			t.Errorf("expected 1 academy, got %v", body["academies"])
		}
		inquiries, ok := body["inquiries"].(map[string]interface{})
		if !ok {
			t.Fatal("expected inquiries section for admin")
		}
		if inquiries["pending"] != float64(1) || inquiries["approved"] != float64(1) {
			t.Errorf("unexpected inquiry counts: %v", inquiries)
		}
	})

	t.Run("regular user gets no moderation totals", func(t *testing.T) {
		body := fetchAs(t, plain.ID)
		if body["role"] != "user" {
			t.Errorf("expected user role, got %v", body["role"])
		}
		if _, ok := body["inquiries"]; ok {
			t.Error("inquiry totals leaked to a regular user")
		}
	})
}

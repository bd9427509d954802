package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"eduhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// mountAdminInquiryRoutes wires the admin inquiry handlers behind a stub auth
// middleware that injects the given user ID.
func mountAdminInquiryRoutes(s *Server, actingUserID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if actingUserID != 0 {
			c.Locals("userID", actingUserID)
		}
		return c.Next()
	})
	app.Get("/admin/inquiries", s.GetAdminInquiries)
	app.Get("/admin/inquiries/:id", s.GetAdminInquiry)
	app.Patch("/admin/inquiries/:id/status", s.UpdateInquiryStatus)
	return app
}

func seedAdminAndInquiries(t *testing.T, s *Server) (models.User, []models.Inquiry) {
	t.Helper()
	admin := models.User{FullName: "Admin One", Email: "admin@eduhub.kr", Password: "x", Role: models.PlatformRoleAdmin}
	if err := s.db.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	inquiries := []models.Inquiry{
		{AcademyName: "Seoul Coding Academy", FullName: "Kim Minji", Email: "minji@seoulcoding.kr", Phone: "010-1111-1111", Status: models.InquiryStatusPending},
		{AcademyName: "Busan Math Lab", FullName: "Park Junho", Email: "junho@mathlab.kr", Phone: "010-2222-2222", Status: models.InquiryStatusOnHold},
		{AcademyName: "Daejeon Science School", FullName: "Choi Haneul", Email: "haneul@dsci.kr", Phone: "010-3333-3333", Status: models.InquiryStatusRejected},
	}
	for i := range inquiries {
		if err := s.db.Create(&inquiries[i]).Error; err != nil {
			t.Fatalf("seed inquiry: %v", err)
		}
	}
	return admin, inquiries
}

func patchStatus(t *testing.T, app *fiber.App, id uint, status, comment string) *http.Response {
	t.Helper()
	body, _ := json.Marshal(fiber.Map{"status": status, "admin_comment": comment})
	req := httptest.NewRequest(http.MethodPatch,
		fmt.Sprintf("/admin/inquiries/%d/status", id), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestGetAdminInquiries(t *testing.T) {
	t.Parallel()
	s := setupTestServer(t)
	admin, _ := seedAdminAndInquiries(t, s)
	app := mountAdminInquiryRoutes(s, admin.ID)

	type listResponse struct {
		Items []models.Inquiry `json:"items"`
		Total int64            `json:"total"`
	}

	fetch := func(t *testing.T, path string, wantStatus int) listResponse {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != wantStatus {
			t.Fatalf("expected %d, got %d", wantStatus, resp.StatusCode)
		}
		var body listResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return body
	}

	t.Run("unfiltered returns all", func(t *testing.T) {
		body := fetch(t, "/admin/inquiries", http.StatusOK)
		if body.Total != 3 {
			t.Errorf("expected total 3, got %d", body.Total)
		}
	})

	t.Run("status set filter", func(t *testing.T) {
		body := fetch(t, "/admin/inquiries?status=pending,on_hold", http.StatusOK)
		if body.Total != 2 {
			t.Errorf("expected total 2, got %d", body.Total)
		}
		for _, item := range body.Items {
			if item.Status == models.InquiryStatusRejected {
				t.Errorf("rejected inquiry leaked through filter")
			}
		}
	})

	t.Run("unknown status filter rejected", func(t *testing.T) {
		fetch(t, "/admin/inquiries?status=archived", http.StatusBadRequest)
	})

	t.Run("search is case-insensitive across columns", func(t *testing.T) {
		body := fetch(t, "/admin/inquiries?search=MATHLAB", http.StatusOK)
		if body.Total != 1 {
			t.Fatalf("expected total 1, got %d", body.Total)
		}
		if body.Items[0].AcademyName != "Busan Math Lab" {
			t.Errorf("unexpected match: %s", body.Items[0].AcademyName)
		}
	})

	t.Run("sort by academy_name asc", func(t *testing.T) {
		body := fetch(t, "/admin/inquiries?sort_by=academy_name&order=asc", http.StatusOK)
		if len(body.Items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(body.Items))
		}
		if body.Items[0].AcademyName != "Busan Math Lab" {
			t.Errorf("expected Busan Math Lab first, got %s", body.Items[0].AcademyName)
		}
	})

	t.Run("pagination reports full total", func(t *testing.T) {
		body := fetch(t, "/admin/inquiries?limit=2&offset=0", http.StatusOK)
		if len(body.Items) != 2 || body.Total != 3 {
			t.Errorf("expected 2 items with total 3, got %d items total %d", len(body.Items), body.Total)
		}
	})
}

func TestGetAdminInquiry(t *testing.T) {
	t.Parallel()
	s := setupTestServer(t)
	admin, inquiries := seedAdminAndInquiries(t, s)
	app := mountAdminInquiryRoutes(s, admin.ID)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			fmt.Sprintf("/admin/inquiries/%d", inquiries[0].ID), nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}
	})

	t.Run("missing inquiry", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/inquiries/9999", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404, got %d", resp.StatusCode)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/inquiries/abc", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
	})
}

func TestUpdateInquiryStatus(t *testing.T) {
	t.Parallel()
	s := setupTestServer(t)
	admin, inquiries := seedAdminAndInquiries(t, s)
	app := mountAdminInquiryRoutes(s, admin.ID)

	t.Run("approval provisions academy", func(t *testing.T) {
		resp := patchStatus(t, app, inquiries[0].ID, "approved", "Verified business registration.")
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		var inquiry models.Inquiry
		if err := json.NewDecoder(resp.Body).Decode(&inquiry); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if inquiry.Status != models.InquiryStatusApproved {
			t.Errorf("expected approved, got %s", inquiry.Status)
		}
		if inquiry.AcademyID == nil {
			t.Fatal("expected academy_id on approved inquiry")
		}

		var academy models.Academy
		if err := s.db.First(&academy, *inquiry.AcademyID).Error; err != nil {
			t.Fatalf("load academy: %v", err)
		}
		if academy.Name != inquiry.AcademyName {
			t.Errorf("academy name %q does not match inquiry %q", academy.Name, inquiry.AcademyName)
		}
	})

	t.Run("approved is terminal", func(t *testing.T) {
		resp := patchStatus(t, app, inquiries[0].ID, "rejected", "Changed our mind.")
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("expected 409, got %d", resp.StatusCode)
		}
	})

	t.Run("non-terminal statuses move freely", func(t *testing.T) {
		for _, status := range []string{"rejected", "on_hold", "pending"} {
			resp := patchStatus(t, app, inquiries[1].ID, status, "")
			if resp.StatusCode != http.StatusOK {
				t.Errorf("transition to %s: expected 200, got %d", status, resp.StatusCode)
			}
			_ = resp.Body.Close()
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		resp := patchStatus(t, app, inquiries[1].ID, "archived", "")
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("missing inquiry", func(t *testing.T) {
		resp := patchStatus(t, app, 9999, "approved", "")
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404, got %d", resp.StatusCode)
		}
	})

	t.Run("unauthenticated outranks not found", func(t *testing.T) {
		anon := mountAdminInquiryRoutes(s, 0)
		resp := patchStatus(t, anon, 9999, "approved", "")
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", resp.StatusCode)
		}
	})
}

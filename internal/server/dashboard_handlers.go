package server

import (
	"eduhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard handles GET /api/v1/dashboard
// The payload is shaped by the caller's role: admins see moderation totals,
// everyone sees the platform-wide academy count.
// @Summary Role-shaped landing dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} object{role=string,academies=int,inquiries=object}
// @Router /dashboard [get]
func (s *Server) GetDashboard(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	role, err := s.roleByUserID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewStoreError(err))
	}

	_, academyTotal, err := s.academyRepo.List(c.Context(), 1, 0)
	if err != nil {
		return s.respondServiceError(c, err)
	}

	payload := fiber.Map{
		"role":      role,
		"academies": academyTotal,
	}

	if role == models.PlatformRoleAdmin || role == models.PlatformRoleManager {
		counts, err := s.inquiryService.CountByStatus(c.Context())
		if err != nil {
			return s.respondServiceError(c, err)
		}

		inquiries := fiber.Map{
			"pending":  counts[models.InquiryStatusPending],
			"approved": counts[models.InquiryStatusApproved],
			"rejected": counts[models.InquiryStatusRejected],
			"on_hold":  counts[models.InquiryStatusOnHold],
		}
		payload["inquiries"] = inquiries
	}

	return c.JSON(payload)
}

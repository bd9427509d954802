package server

import (
	"strings"

	"eduhub/internal/models"
	"eduhub/internal/repository"
	"eduhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAdminInquiries handles GET /api/v1/admin/inquiries
// @Summary List inquiries (admin)
// @Description Filter by status set, search across academy name, contact name and email, sort by any column
// @Tags admin
// @Produce json
// @Param status query string false "Comma-separated status filter (pending,approved,rejected,on_hold)"
// @Param search query string false "Case-insensitive substring search"
// @Param sort_by query string false "Sort column" default(created_at)
// @Param order query string false "asc or desc" default(desc)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} object{items=[]models.Inquiry,total=int,limit=int,offset=int}
// @Failure 400 {object} object{error=string}
// @Router /admin/inquiries [get]
func (s *Server) GetAdminInquiries(c *fiber.Ctx) error {
	statuses, err := parseStatusFilter(c.Query("status"))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	pagination := parsePagination(c, 20)
	filter := repository.InquiryFilter{
		Statuses:  statuses,
		Search:    c.Query("search"),
		SortField: c.Query("sort_by"),
		SortOrder: c.Query("order"),
		Limit:     pagination.Limit,
		Offset:    pagination.Offset,
	}

	listing, err := s.inquiryService.ListInquiries(c.Context(), filter)
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"items":  listing.Items,
		"total":  listing.Total,
		"limit":  pagination.Limit,
		"offset": pagination.Offset,
	})
}

// GetAdminInquiry handles GET /api/v1/admin/inquiries/:id
// @Summary Get a single inquiry (admin)
// @Tags admin
// @Produce json
// @Param id path int true "Inquiry ID"
// @Success 200 {object} models.Inquiry
// @Failure 404 {object} object{error=string}
// @Router /admin/inquiries/{id} [get]
func (s *Server) GetAdminInquiry(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	inquiry, err := s.inquiryService.GetInquiry(c.Context(), id)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(inquiry)
}

// UpdateInquiryStatus handles PATCH /api/v1/admin/inquiries/:id/status
// @Summary Transition an inquiry's status (admin)
// @Description Approval provisions the academy atomically; approved inquiries cannot be transitioned again
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Inquiry ID"
// @Param request body object{status=string,admin_comment=string} true "Requested transition"
// @Success 200 {object} models.Inquiry
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /admin/inquiries/{id}/status [patch]
func (s *Server) UpdateInquiryStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Status       string `json:"status"`
		AdminComment string `json:"admin_comment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	actingAdminID, _ := c.Locals("userID").(uint)

	inquiry, err := s.inquiryService.ApplyTransition(c.Context(), service.TransitionInput{
		InquiryID:       id,
		RequestedStatus: models.InquiryStatus(req.Status),
		AdminComment:    req.AdminComment,
		ActingAdminID:   actingAdminID,
	})
	if err != nil {
		return s.respondServiceError(c, err)
	}

	s.publishBroadcastEvent(transitionEventType(inquiry.Status), inquirySummary(inquiry))

	return c.JSON(inquiry)
}

// parseStatusFilter splits a comma-separated status list and rejects values
// outside the known lifecycle states. An empty string means no filtering.
func parseStatusFilter(raw string) ([]models.InquiryStatus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var statuses []models.InquiryStatus
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if !models.ValidInquiryStatus(part) {
			return nil, models.NewValidationError("Unknown status filter: " + part)
		}
		statuses = append(statuses, models.InquiryStatus(part))
	}
	return statuses, nil
}

package server

import (
	"errors"

	"eduhub/internal/models"
	"eduhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SubmitInquiry handles POST /api/v1/inquiries
// @Summary Submit an academy-introduction inquiry
// @Description Public form submission; the inquiry starts in pending status
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body object{academy_name=string,full_name=string,email=string,phone=string,content=string} true "Inquiry form"
// @Success 201 {object} models.Inquiry
// @Failure 400 {object} object{error=string}
// @Router /inquiries [post]
func (s *Server) SubmitInquiry(c *fiber.Ctx) error {
	var req struct {
		AcademyName string `json:"academy_name"`
		FullName    string `json:"full_name"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		Content     string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	inquiry, err := s.inquiryService.SubmitInquiry(c.Context(), service.SubmitInquiryInput{
		AcademyName: req.AcademyName,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Content:     req.Content,
	})
	if err != nil {
		return s.respondServiceError(c, err)
	}

	// Admin dashboards listen for new submissions in real time.
	s.publishBroadcastEvent(EventInquirySubmitted, inquirySummary(inquiry))

	return c.Status(fiber.StatusCreated).JSON(inquiry)
}

// respondServiceError maps a service-layer error onto an HTTP status by its
// error code and writes the JSON error response.
func (s *Server) respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case models.CodeValidation:
		status = fiber.StatusBadRequest
	case models.CodeUnauthorized:
		status = fiber.StatusUnauthorized
	case models.CodeNotFound:
		status = fiber.StatusNotFound
	case models.CodeTerminalState:
		status = fiber.StatusConflict
	case models.CodeProvisioningFailed, models.CodeStoreError, models.CodeInternal:
		status = fiber.StatusInternalServerError
	}
	return models.RespondWithError(c, status, appErr)
}

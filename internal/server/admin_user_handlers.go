package server

import (
	"eduhub/internal/models"
	"eduhub/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// GetAdminUsers handles GET /api/v1/admin/users
// @Summary List user accounts (admin)
// @Tags admin
// @Produce json
// @Param role query string false "Role filter (admin, manager, user)"
// @Param search query string false "Case-insensitive substring search over name and email"
// @Param sort_by query string false "Sort column" default(created_at)
// @Param order query string false "asc or desc" default(desc)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} object{items=[]models.User,total=int,limit=int,offset=int}
// @Failure 400 {object} object{error=string}
// @Router /admin/users [get]
func (s *Server) GetAdminUsers(c *fiber.Ctx) error {
	pagination := parsePagination(c, 20)
	filter := repository.UserFilter{
		Role:      c.Query("role"),
		Search:    c.Query("search"),
		SortField: c.Query("sort_by"),
		SortOrder: c.Query("order"),
		Limit:     pagination.Limit,
		Offset:    pagination.Offset,
	}

	users, total, err := s.userService.ListUsers(c.Context(), filter)
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"items":  users,
		"total":  total,
		"limit":  pagination.Limit,
		"offset": pagination.Offset,
	})
}

// UpdateUserRole handles PATCH /api/v1/admin/users/:id/role
// @Summary Change a user's platform role (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body object{role=string} true "New role"
// @Success 200 {object} models.User
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /admin/users/{id}/role [patch]
func (s *Server) UpdateUserRole(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	actingAdminID, _ := c.Locals("userID").(uint)

	user, err := s.userService.SetRole(c.Context(), actingAdminID, id, req.Role)
	if err != nil {
		return s.respondServiceError(c, err)
	}

	// Tell the affected user so open sessions can react to the role change.
	s.publishUserEvent(user.ID, EventUserRoleChanged, map[string]interface{}{
		"id":   user.ID,
		"role": user.Role,
	})

	return c.JSON(user)
}

// GetAdminAcademies handles GET /api/v1/admin/academies
// @Summary List provisioned academies (admin)
// @Tags admin
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} object{items=[]models.Academy,total=int,limit=int,offset=int}
// @Router /admin/academies [get]
func (s *Server) GetAdminAcademies(c *fiber.Ctx) error {
	pagination := parsePagination(c, 20)

	academies, total, err := s.academyRepo.List(c.Context(), pagination.Limit, pagination.Offset)
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"items":  academies,
		"total":  total,
		"limit":  pagination.Limit,
		"offset": pagination.Offset,
	})
}

// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"fmt"
	"log"
	"time"

	"eduhub/internal/middleware"
	"eduhub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const wsTicketTTL = 30 * time.Second

// IssueWSTicket handles POST /api/v1/ws/ticket
// It mints a short-lived, single-use ticket so browser WebSocket clients never
// put a long-lived JWT in a URL.
// @Summary Issue a single-use WebSocket ticket
// @Tags websocket
// @Produce json
// @Success 200 {object} object{ticket=string,expires_in=int}
// @Failure 503 {object} object{error=string}
// @Router /ws/ticket [post]
func (s *Server) IssueWSTicket(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if s.redis == nil {
		return models.RespondWithError(c, fiber.StatusServiceUnavailable,
			models.NewInternalError(fmt.Errorf("ticket store unavailable")))
	}

	ticket := uuid.New().String()
	key := fmt.Sprintf("ws_ticket:%s", ticket)
	if err := s.redis.Set(c.Context(), key,
		fmt.Sprintf("%d", userID), wsTicketTTL).Err(); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"ticket":     ticket,
		"expires_in": int(wsTicketTTL.Seconds()),
	})
}

// AdminEventsHandler streams platform events to connected admin dashboards
// over GET /api/v1/admin/ws/events. Auth and the admin check are enforced by
// the surrounding route middleware; the admin_events flag allows a gradual
// rollout of the live stream.
func (s *Server) AdminEventsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return models.RespondWithError(c, fiber.StatusUpgradeRequired,
				models.NewValidationError("WebSocket upgrade required"))
		}

		userID := c.Locals("userID").(uint)
		if s.featureFlags != nil {
			if _, configured := s.featureFlags.Raw()["admin_events"]; configured &&
				!s.featureFlags.Enabled("admin_events", userID) {
				return models.RespondWithError(c, fiber.StatusForbidden,
					models.NewUnauthorizedError("Event stream not enabled for this account"))
			}
		}

		return websocket.New(func(conn *websocket.Conn) {
			middleware.ActiveWebSockets.Inc()
			defer middleware.ActiveWebSockets.Dec()

			userID := conn.Locals("userID").(uint)

			if s.hub == nil {
				_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"event stream unavailable"}`))
				_ = conn.Close()
				return
			}

			client, err := s.hub.Register(userID, conn)
			if err != nil {
				log.Printf("WebSocket events: failed to register admin %d: %v", userID, err)
				_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"`+err.Error()+`"}`))
				_ = conn.Close()
				return
			}

			log.Printf("WebSocket: admin %d connected to event stream", userID)

			// Write pump runs in a goroutine; the read pump blocks here so
			// disconnects unregister the client promptly.
			go client.WritePump()
			client.ReadPump()
		})(c)
	}
}

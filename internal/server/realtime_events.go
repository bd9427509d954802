package server

import (
	"context"
	"encoding/json"
	"log"

	"eduhub/internal/models"
)

// Event type constants prevent typos in event names.
const (
	EventInquirySubmitted = "inquiry_submitted"
	EventInquiryApproved  = "inquiry_approved"
	EventInquiryRejected  = "inquiry_rejected"
	EventInquiryOnHold    = "inquiry_on_hold"
	EventInquiryReopened  = "inquiry_reopened"
	EventUserRoleChanged  = "user_role_changed"
)

// transitionEventType maps a resulting inquiry status to its event name.
func transitionEventType(status models.InquiryStatus) string {
	switch status {
	case models.InquiryStatusApproved:
		return EventInquiryApproved
	case models.InquiryStatusRejected:
		return EventInquiryRejected
	case models.InquiryStatusOnHold:
		return EventInquiryOnHold
	default:
		return EventInquiryReopened
	}
}

func (s *Server) publishUserEvent(userID uint, eventType string, payload map[string]interface{}) {
	event := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", eventType, err)
		return
	}
	message := string(eventJSON)
	if s.hub != nil {
		s.hub.Broadcast(userID, message)
	}
	if s.notifier != nil {
		if err := s.notifier.PublishUser(context.Background(), userID, message); err != nil {
			log.Printf("failed to publish %s event to user %d: %v", eventType, userID, err)
		}
	}
}

func (s *Server) publishBroadcastEvent(eventType string, payload map[string]interface{}) {
	event := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", eventType, err)
		return
	}
	message := string(eventJSON)
	if s.hub != nil {
		s.hub.BroadcastAll(message)
	}
	if s.notifier != nil {
		if err := s.notifier.PublishBroadcast(context.Background(), message); err != nil {
			log.Printf("failed to publish %s broadcast event: %v", eventType, err)
		}
	}
}

func inquirySummary(inquiry *models.Inquiry) map[string]interface{} {
	return map[string]interface{}{
		"id":           inquiry.ID,
		"academy_name": inquiry.AcademyName,
		"status":       inquiry.Status,
	}
}
